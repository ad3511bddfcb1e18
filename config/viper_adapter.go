/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ViperAdapter is a DataProvider implementation that uses viper library under the hood.
type ViperAdapter struct {
	viper *viper.Viper
}

var _ DataProvider = (*ViperAdapter)(nil)

// NewViperAdapter creates a new ViperAdapter.
func NewViperAdapter() *ViperAdapter {
	return &ViperAdapter{viper.New()}
}

// UseEnvVars enables reading configuration parameters from environment variables.
// E.g., if prefix is "app", the "log.rateLimit.minInterval" key may be set via APP_LOG_RATELIMIT_MININTERVAL.
func (va *ViperAdapter) UseEnvVars(prefix string) {
	va.viper.AutomaticEnv()
	va.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	va.viper.SetEnvPrefix(prefix)
}

// Set sets the value for the key in the override register.
func (va *ViperAdapter) Set(key string, value interface{}) {
	va.viper.Set(key, value)
}

// SetDefault sets the default value for the key.
// It's used only when no value is provided via config or environment.
func (va *ViperAdapter) SetDefault(key string, value interface{}) {
	va.viper.SetDefault(key, value)
}

// SetFromFile reads configuration data from file.
func (va *ViperAdapter) SetFromFile(path string, dataType DataType) error {
	va.viper.SetConfigType(string(dataType))
	va.viper.SetConfigFile(path)
	return va.viper.ReadInConfig()
}

// SetFromReader reads configuration data from reader.
func (va *ViperAdapter) SetFromReader(reader io.Reader, dataType DataType) error {
	va.viper.SetConfigType(string(dataType))
	return va.viper.ReadConfig(reader)
}

// IsSet checks whether the key has been set in any of the data locations. Key is case-insensitive.
func (va *ViperAdapter) IsSet(key string) bool {
	return va.viper.IsSet(key)
}

// Get retrieves any value by the key.
func (va *ViperAdapter) Get(key string) interface{} {
	return va.viper.Get(key)
}

// GetBool tries to retrieve the value associated with the key as a bool.
func (va *ViperAdapter) GetBool(key string) (bool, error) {
	res, err := cast.ToBoolE(va.Get(key))
	return res, WrapKeyErrIfNeeded(key, err)
}

// GetInt tries to retrieve the value associated with the key as an integer.
func (va *ViperAdapter) GetInt(key string) (int, error) {
	res, err := cast.ToIntE(va.Get(key))
	return res, WrapKeyErrIfNeeded(key, err)
}

// GetString tries to retrieve the value associated with the key as a string.
func (va *ViperAdapter) GetString(key string) (string, error) {
	res, err := cast.ToStringE(va.Get(key))
	return res, WrapKeyErrIfNeeded(key, err)
}

// GetStringFromSet tries to retrieve the value associated with the key as a string from the specified set.
func (va *ViperAdapter) GetStringFromSet(key string, set []string, ignoreCase bool) (string, error) {
	str, err := va.GetString(key)
	if err != nil {
		return "", err
	}
	for _, s := range set {
		if str == s || (ignoreCase && strings.EqualFold(str, s)) {
			return str, nil
		}
	}
	return "", WrapKeyErr(key, fmt.Errorf("unknown value %q, should be one of %v", str, set))
}

// GetDuration tries to retrieve the value associated with the key as a duration.
// Both human-readable strings ("1m30s") and integers (nanoseconds) are supported.
func (va *ViperAdapter) GetDuration(key string) (time.Duration, error) {
	val := va.Get(key)
	if val == nil {
		return 0, nil
	}
	res, err := cast.ToDurationE(val)
	return res, WrapKeyErrIfNeeded(key, err)
}

// GetByteSize tries to retrieve the value associated with the key as a size in bytes.
// Both human-readable strings ("250M") and integers are supported.
func (va *ViperAdapter) GetByteSize(key string) (ByteSize, error) {
	val := va.Get(key)
	switch v := val.(type) {
	case nil:
		return 0, nil
	case ByteSize:
		return v, nil
	case string:
		res, err := parseByteSize(v)
		return res, WrapKeyErrIfNeeded(key, err)
	case float32, float64:
		return ByteSize(cast.ToUint64(v)), nil
	}
	num, err := cast.ToInt64E(val)
	if err != nil {
		return 0, WrapKeyErr(key, err)
	}
	if num < 0 {
		return 0, WrapKeyErr(key, fmt.Errorf("negative value is not allowed: %d", num))
	}
	return ByteSize(num), nil
}

// UnmarshalKey takes a single key and unmarshals it into a struct.
func (va *ViperAdapter) UnmarshalKey(key string, rawVal interface{}, opts ...DecoderConfigOption) error {
	options := make([]viper.DecoderConfigOption, len(opts))
	for i, opt := range opts {
		options[i] = viper.DecoderConfigOption(opt)
	}
	return WrapKeyErrIfNeeded(key, va.viper.UnmarshalKey(key, rawVal, options...))
}

// WrapKeyErr wraps error adding information about a key where this error occurs.
func (va *ViperAdapter) WrapKeyErr(key string, err error) error {
	return WrapKeyErr(key, err)
}
