/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

// Package testutil contains helpers for testing code that exposes Prometheus metrics.
package testutil

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

// AssertCounterValue asserts that passed collector exposes a single counter with the specified value.
func AssertCounterValue(t assert.TestingT, counter prometheus.Collector, want int) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	m, ok := gatherSingleMetric(t, counter)
	if !ok || !assert.NotNil(t, m.GetCounter(), "metric is not a counter") {
		return false
	}
	return assert.Equal(t, want, int(m.GetCounter().GetValue()))
}

// RequireCounterValue calls AssertCounterValue and fails test immediately in case of error.
func RequireCounterValue(t require.TestingT, counter prometheus.Collector, want int) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if AssertCounterValue(t, counter, want) {
		return
	}
	t.FailNow()
}

// AssertGaugeValue asserts that passed collector exposes a single gauge with the specified value.
func AssertGaugeValue(t assert.TestingT, gauge prometheus.Collector, want int) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	m, ok := gatherSingleMetric(t, gauge)
	if !ok || !assert.NotNil(t, m.GetGauge(), "metric is not a gauge") {
		return false
	}
	return assert.Equal(t, want, int(m.GetGauge().GetValue()))
}

func gatherSingleMetric(t assert.TestingT, c prometheus.Collector) (*dto.Metric, bool) {
	reg := prometheus.NewPedanticRegistry()
	if !assert.NoError(t, reg.Register(c)) {
		return nil, false
	}
	families, err := reg.Gather()
	if !assert.NoError(t, err) {
		return nil, false
	}
	if !assert.Len(t, families, 1) || !assert.Len(t, families[0].GetMetric(), 1) {
		return nil, false
	}
	return families[0].GetMetric()[0], true
}
