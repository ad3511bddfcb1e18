/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/acronis/go-limitrate/config"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name        string
		cfgData     string
		expectedCfg func() *Config
	}{
		{
			name:        "default values",
			cfgData:     `{}`,
			expectedCfg: func() *Config { return NewDefaultConfig() },
		},
		{
			name: "custom values",
			cfgData: `
log:
  level: WARN
  format: text
  output: file
  nocolor: true
  file:
    path: my-service.log
    rotation:
      compress: true
      maxSize: 100M
      maxBackups: 42
      maxAgeDays: 7
  addCaller: true
  rateLimit:
    minInterval: 5s
    maxKeys: 300
`,
			expectedCfg: func() *Config {
				cfg := NewDefaultConfig()
				cfg.Level = LevelWarn
				cfg.Format = FormatText
				cfg.Output = OutputFile
				cfg.NoColor = true
				cfg.File.Path = "my-service.log"
				cfg.File.Rotation.Compress = true
				cfg.File.Rotation.MaxSize = 100 * 1024 * 1024
				cfg.File.Rotation.MaxBackups = 42
				cfg.File.Rotation.MaxAgeDays = 7
				cfg.AddCaller = true
				cfg.RateLimit.MinInterval = config.TimeDuration(5 * time.Second)
				cfg.RateLimit.MaxKeys = 300
				return cfg
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			err := config.NewLoader(config.NewViperAdapter()).LoadFromReader(
				bytes.NewBufferString(tt.cfgData), config.DataTypeYAML, cfg)
			require.NoError(t, err)
			requireConfigsEqual(t, tt.expectedCfg(), cfg)
		})
	}
}

func TestConfigWithKeyPrefix(t *testing.T) {
	cfgData := `
app:
  logging:
    level: debug
    rateLimit:
      minInterval: 1m
`
	cfg := NewConfig(WithKeyPrefix("app.logging"))
	err := config.NewLoader(config.NewViperAdapter()).LoadFromReader(
		bytes.NewBufferString(cfgData), config.DataTypeYAML, cfg)
	require.NoError(t, err)
	require.Equal(t, LevelDebug, cfg.Level)
	require.Equal(t, config.TimeDuration(time.Minute), cfg.RateLimit.MinInterval)
}

func TestConfigWithEnvVars(t *testing.T) {
	t.Setenv("SVC_LOG_RATELIMIT_MININTERVAL", "15s")
	t.Setenv("SVC_LOG_LEVEL", "error")

	cfg := NewConfig()
	err := config.NewDefaultLoader("svc").LoadFromReader(bytes.NewBufferString(`{}`), config.DataTypeYAML, cfg)
	require.NoError(t, err)
	require.Equal(t, LevelError, cfg.Level)
	require.Equal(t, config.TimeDuration(15*time.Second), cfg.RateLimit.MinInterval)
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfgData string
		wantErr string
	}{
		{
			name:    "unknown level",
			cfgData: "log:\n  level: verbose\n",
			wantErr: `log.level: unknown value "verbose", should be one of [error warn info debug]`,
		},
		{
			name:    "unknown format",
			cfgData: "log:\n  format: xml\n",
			wantErr: `log.format: unknown value "xml", should be one of [json text]`,
		},
		{
			name:    "file output without path",
			cfgData: "log:\n  output: file\n",
			wantErr: `log.file.path: cannot be empty when "file" output is used`,
		},
		{
			name:    "too small max size",
			cfgData: "log:\n  file:\n    rotation:\n      maxSize: 1K\n",
			wantErr: "log.file.rotation.maxSize: should be >= 1M",
		},
		{
			name:    "zero max backups",
			cfgData: "log:\n  file:\n    rotation:\n      maxBackups: 0\n",
			wantErr: "log.file.rotation.maxBackups: should be >= 1",
		},
		{
			name:    "negative max age",
			cfgData: "log:\n  file:\n    rotation:\n      maxAgeDays: -1\n",
			wantErr: "log.file.rotation.maxAgeDays: should be >= 0",
		},
		{
			name:    "negative rate limit interval",
			cfgData: "log:\n  rateLimit:\n    minInterval: -3s\n",
			wantErr: "log.rateLimit.minInterval: should be >= 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			err := config.NewLoader(config.NewViperAdapter()).LoadFromReader(
				bytes.NewBufferString(tt.cfgData), config.DataTypeYAML, cfg)
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func requireConfigsEqual(t *testing.T, want, got *Config) {
	t.Helper()
	require.Equal(t, want.Level, got.Level)
	require.Equal(t, want.Format, got.Format)
	require.Equal(t, want.Output, got.Output)
	require.Equal(t, want.NoColor, got.NoColor)
	require.Equal(t, want.File, got.File)
	require.Equal(t, want.AddCaller, got.AddCaller)
	require.Equal(t, want.RateLimit.MinInterval, got.RateLimit.MinInterval)
	require.Equal(t, want.RateLimit.MaxKeys, got.RateLimit.MaxKeys)
}
