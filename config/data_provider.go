/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"io"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DataType is a format in which configuration may be described.
type DataType string

// Supported data formats.
const (
	DataTypeYAML DataType = "yaml"
	DataTypeJSON DataType = "json"
)

// DataProvider provides configuration data from different sources (files, readers, environment variables).
type DataProvider interface {
	UseEnvVars(prefix string)

	Set(key string, value interface{})
	SetDefault(key string, value interface{})

	SetFromFile(path string, dataType DataType) error
	SetFromReader(reader io.Reader, dataType DataType) error

	IsSet(key string) bool

	Get(key string) interface{}
	GetBool(key string) (bool, error)
	GetInt(key string) (int, error)
	GetString(key string) (string, error)
	GetStringFromSet(key string, set []string, ignoreCase bool) (string, error)
	GetDuration(key string) (time.Duration, error)
	GetByteSize(key string) (ByteSize, error)

	UnmarshalKey(key string, rawVal interface{}, opts ...DecoderConfigOption) error

	WrapKeyErr(key string, err error) error
}

// DecoderConfigOption can be passed to UnmarshalKey to configure mapstructure.DecoderConfig options.
type DecoderConfigOption func(*mapstructure.DecoderConfig)
