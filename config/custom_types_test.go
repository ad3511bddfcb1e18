/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTimeDuration(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		yaml    string
		want    TimeDuration
		wantErr bool
	}{
		{name: "human-readable", json: `"1m30s"`, yaml: "1m30s", want: TimeDuration(90 * time.Second)},
		{name: "nanoseconds", json: `1000`, yaml: "1000", want: TimeDuration(1000)},
		{name: "zero", json: `"0s"`, yaml: "0", want: 0},
		{name: "negative integer", json: `-5`, yaml: "-5", wantErr: true},
		{name: "negative string", json: `"-1s"`, yaml: "-1s", wantErr: true},
		{name: "invalid", json: `"soon"`, yaml: "soon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromJSON TimeDuration
			err := json.Unmarshal([]byte(tt.json), &fromJSON)
			var fromYAML TimeDuration
			yamlErr := yaml.Unmarshal([]byte(tt.yaml), &fromYAML)
			if tt.wantErr {
				require.Error(t, err)
				require.Error(t, yamlErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, yamlErr)
			require.Equal(t, tt.want, fromJSON)
			require.Equal(t, tt.want, fromYAML)
		})
	}

	out, err := json.Marshal(TimeDuration(1500 * time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, `"1.5s"`, string(out))
}

func TestByteSize(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    ByteSize
		wantErr bool
	}{
		{name: "integer", text: "1024", want: 1024},
		{name: "megabytes", text: "250M", want: 250 * 1024 * 1024},
		{name: "k8s suffix", text: "1Gi", want: 1024 * 1024 * 1024},
		{name: "negative", text: "-1", wantErr: true},
		{name: "invalid", text: "many", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b ByteSize
			err := b.UnmarshalText([]byte(tt.text))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, b)
		})
	}

	var cfg struct {
		MaxSize ByteSize `yaml:"maxSize"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("maxSize: 10M"), &cfg))
	require.Equal(t, ByteSize(10*1024*1024), cfg.MaxSize)

	out, err := json.Marshal(cfg.MaxSize)
	require.NoError(t, err)
	require.Equal(t, `"10M"`, string(out))
}
