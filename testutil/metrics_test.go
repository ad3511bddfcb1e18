/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package testutil

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestAssertCounterValue(t *testing.T) {
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_counter", Help: "Test counter."})
	counter.Add(3)
	RequireCounterValue(t, counter, 3)

	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counter_vec", Help: "Test counter."}, nil)
	counterVec.With(nil).Inc()
	RequireCounterValue(t, counterVec, 1)
}

func TestAssertGaugeValue(t *testing.T) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_gauge", Help: "Test gauge."})
	gauge.Set(42)
	if !AssertGaugeValue(t, gauge, 42) {
		t.FailNow()
	}
}
