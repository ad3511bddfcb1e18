/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

// Package libinfo exposes information about the library itself (e.g., its version for metric labels).
package libinfo

import (
	"debug/buildinfo"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const moduleName = "github.com/acronis/go-limitrate"

// PrometheusLibVersionLabel is a name of the const label that holds the library version.
const PrometheusLibVersionLabel = "go_limitrate_version"

const unknownVersion = "v0.0.0"

var (
	libVersion     string
	libVersionOnce sync.Once
)

// AddPrometheusLibVersionLabel returns a copy of labels extended with the library version label.
func AddPrometheusLibVersionLabel(labels prometheus.Labels) prometheus.Labels {
	res := make(prometheus.Labels, len(labels)+1)
	for k, v := range labels {
		res[k] = v
	}
	res[PrometheusLibVersionLabel] = GetLibVersion()
	return res
}

// GetLibVersion returns the version of the library module the binary was built with.
func GetLibVersion() string {
	libVersionOnce.Do(func() {
		if bi, ok := debug.ReadBuildInfo(); ok {
			libVersion = extractLibVersion(bi, moduleName)
		}
		if libVersion == "" {
			libVersion = unknownVersion
		}
	})
	return libVersion
}

// extractLibVersion looks for modName or its major version suffixed form ("modName/vN") in dependencies.
func extractLibVersion(bi *buildinfo.BuildInfo, modName string) string {
	if bi == nil {
		return ""
	}
	for _, dep := range bi.Deps {
		if dep.Path == modName || isMajorVersionPath(dep.Path, modName) {
			return dep.Version
		}
	}
	return ""
}

func isMajorVersionPath(path, modName string) bool {
	suffix, ok := strings.CutPrefix(path, modName+"/v")
	if !ok || suffix == "" {
		return false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
