/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package libinfo

import (
	"debug/buildinfo"
	"runtime/debug"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestExtractLibVersion(t *testing.T) {
	tests := []struct {
		name        string
		buildInfo   *buildinfo.BuildInfo
		expectedVer string
	}{
		{
			name:        "module found",
			buildInfo:   &buildinfo.BuildInfo{Deps: []*debug.Module{{Path: moduleName, Version: "v1.2.3"}}},
			expectedVer: "v1.2.3",
		},
		{
			name:        "module found, major version suffix",
			buildInfo:   &buildinfo.BuildInfo{Deps: []*debug.Module{{Path: moduleName + "/v2", Version: "v2.0.1"}}},
			expectedVer: "v2.0.1",
		},
		{
			name:        "similar module path",
			buildInfo:   &buildinfo.BuildInfo{Deps: []*debug.Module{{Path: moduleName + "/vx", Version: "v1.0.0"}}},
			expectedVer: "",
		},
		{
			name:        "module not found",
			buildInfo:   &buildinfo.BuildInfo{Deps: []*debug.Module{{Path: "github.com/other/module", Version: "v1.0.0"}}},
			expectedVer: "",
		},
		{
			name:        "nil build info",
			expectedVer: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expectedVer, extractLibVersion(tt.buildInfo, moduleName))
		})
	}
}

func TestAddPrometheusLibVersionLabel(t *testing.T) {
	labels := prometheus.Labels{"service": "test"}
	got := AddPrometheusLibVersionLabel(labels)
	require.Equal(t, "test", got["service"])
	require.Equal(t, GetLibVersion(), got[PrometheusLibVersionLabel])
	require.NotEmpty(t, got[PrometheusLibVersionLabel])
	require.Len(t, labels, 1, "passed labels should not be modified")
}
