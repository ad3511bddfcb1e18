/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package gate

import (
	"fmt"
	"time"

	"github.com/acronis/go-limitrate/config"
)

const cfgDefaultKeyPrefix = "rateLimit"

const (
	cfgKeyMinInterval = "minInterval"
	cfgKeyMaxKeys     = "maxKeys"
)

// DefaultMaxKeys is the default maximum number of keys tracked by a KeyedGate.
const DefaultMaxKeys = 1000

// Config represents a set of configuration parameters for a KeyedGate.
// Configuration can be loaded in different formats (YAML, JSON) using config.Loader, viper,
// or with json.Unmarshal/yaml.Unmarshal functions directly.
type Config struct {
	// MinInterval is a minimum interval between two permitted executions for the same key.
	// Zero means that every execution is permitted.
	MinInterval config.TimeDuration `mapstructure:"minInterval" yaml:"minInterval" json:"minInterval"`

	// MaxKeys is a maximum number of keys with tracked state.
	// When it's exceeded, the least recently used key is forgotten.
	MaxKeys int `mapstructure:"maxKeys" yaml:"maxKeys" json:"maxKeys"`

	keyPrefix string
}

var _ config.Config = (*Config)(nil)
var _ config.KeyPrefixProvider = (*Config)(nil)

// ConfigOption is a type for functional options for the Config.
type ConfigOption func(*configOptions)

type configOptions struct {
	keyPrefix string
}

// WithKeyPrefix returns a ConfigOption that sets a key prefix for parsing configuration parameters.
// This prefix will be used by config.Loader.
func WithKeyPrefix(keyPrefix string) ConfigOption {
	return func(o *configOptions) {
		o.keyPrefix = keyPrefix
	}
}

// NewConfig creates a new instance of the Config.
func NewConfig(options ...ConfigOption) *Config {
	opts := configOptions{keyPrefix: cfgDefaultKeyPrefix}
	for _, opt := range options {
		opt(&opts)
	}
	return &Config{keyPrefix: opts.keyPrefix}
}

// NewDefaultConfig creates a new instance of the Config with default values.
func NewDefaultConfig(options ...ConfigOption) *Config {
	cfg := NewConfig(options...)
	cfg.MaxKeys = DefaultMaxKeys
	return cfg
}

// KeyPrefix returns a key prefix with which all configuration parameters should be presented.
// Implements config.KeyPrefixProvider interface.
func (c *Config) KeyPrefix() string {
	return c.keyPrefix
}

// SetProviderDefaults sets default configuration values in config.DataProvider.
// Implements config.Config interface.
func (c *Config) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyMinInterval, time.Duration(0).String())
	dp.SetDefault(cfgKeyMaxKeys, DefaultMaxKeys)
}

// Set sets configuration values from config.DataProvider.
// Implements config.Config interface.
func (c *Config) Set(dp config.DataProvider) error {
	minInterval, err := dp.GetDuration(cfgKeyMinInterval)
	if err != nil {
		return err
	}
	if minInterval < 0 {
		return dp.WrapKeyErr(cfgKeyMinInterval, fmt.Errorf("should be >= 0"))
	}
	c.MinInterval = config.TimeDuration(minInterval)

	if c.MaxKeys, err = dp.GetInt(cfgKeyMaxKeys); err != nil {
		return err
	}
	if c.MaxKeys <= 0 {
		return dp.WrapKeyErr(cfgKeyMaxKeys, fmt.Errorf("should be > 0"))
	}
	return nil
}
