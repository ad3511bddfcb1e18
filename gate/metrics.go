/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package gate

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/acronis/go-limitrate/internal/libinfo"
)

// MetricsCollector represents a collector of metrics about gate decisions.
type MetricsCollector interface {
	// IncPermitted increments the total number of permitted executions.
	IncPermitted()

	// IncSuppressed increments the total number of suppressed calls.
	IncSuppressed()

	// SetKeysAmount sets the current number of keys tracked by a KeyedGate.
	SetKeysAmount(int)

	// AddKeysEvictions increments the total number of keys evicted from a KeyedGate.
	AddKeysEvictions(int)
}

// PrometheusMetricsOpts represents options for PrometheusMetrics.
type PrometheusMetricsOpts struct {
	// Namespace is a namespace for metrics. It will be prepended to all metric names.
	Namespace string

	// ConstLabels is a set of labels that will be applied to all metrics.
	ConstLabels prometheus.Labels

	// CurriedLabelNames is a list of label names that will be curried with the provided labels.
	// If it's not empty, PrometheusMetrics.MustCurryWith must be called with the same labels
	// before the collector is used.
	CurriedLabelNames []string
}

// PrometheusMetrics represents Prometheus metrics for gates.
type PrometheusMetrics struct {
	PermittedTotal     *prometheus.CounterVec
	SuppressedTotal    *prometheus.CounterVec
	KeysAmount         *prometheus.GaugeVec
	KeysEvictionsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics creates a new instance of PrometheusMetrics with default options.
func NewPrometheusMetrics() *PrometheusMetrics {
	return NewPrometheusMetricsWithOpts(PrometheusMetricsOpts{})
}

// NewPrometheusMetricsWithOpts creates a new instance of PrometheusMetrics with the provided options.
func NewPrometheusMetricsWithOpts(opts PrometheusMetricsOpts) *PrometheusMetrics {
	constLabels := libinfo.AddPrometheusLibVersionLabel(opts.ConstLabels)
	return &PrometheusMetrics{
		PermittedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "gate_executions_permitted_total",
			Help:        "Number of executions permitted by the gate.",
			ConstLabels: constLabels,
		}, opts.CurriedLabelNames),
		SuppressedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "gate_executions_suppressed_total",
			Help:        "Number of calls suppressed by the gate because the minimum interval has not elapsed.",
			ConstLabels: constLabels,
		}, opts.CurriedLabelNames),
		KeysAmount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   opts.Namespace,
			Name:        "gate_keys_amount",
			Help:        "Number of keys tracked by the keyed gate.",
			ConstLabels: constLabels,
		}, opts.CurriedLabelNames),
		KeysEvictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "gate_keys_evictions_total",
			Help:        "Number of keys evicted from the keyed gate.",
			ConstLabels: constLabels,
		}, opts.CurriedLabelNames),
	}
}

// MustCurryWith curries the metrics collector with the provided labels.
func (pm *PrometheusMetrics) MustCurryWith(labels prometheus.Labels) *PrometheusMetrics {
	return &PrometheusMetrics{
		PermittedTotal:     pm.PermittedTotal.MustCurryWith(labels),
		SuppressedTotal:    pm.SuppressedTotal.MustCurryWith(labels),
		KeysAmount:         pm.KeysAmount.MustCurryWith(labels),
		KeysEvictionsTotal: pm.KeysEvictionsTotal.MustCurryWith(labels),
	}
}

// MustRegister does registration of metrics collector in Prometheus and panics if any error occurs.
func (pm *PrometheusMetrics) MustRegister() {
	prometheus.MustRegister(
		pm.PermittedTotal,
		pm.SuppressedTotal,
		pm.KeysAmount,
		pm.KeysEvictionsTotal,
	)
}

// Unregister cancels registration of metrics collector in Prometheus.
func (pm *PrometheusMetrics) Unregister() {
	prometheus.Unregister(pm.PermittedTotal)
	prometheus.Unregister(pm.SuppressedTotal)
	prometheus.Unregister(pm.KeysAmount)
	prometheus.Unregister(pm.KeysEvictionsTotal)
}

// IncPermitted increments the total number of permitted executions.
func (pm *PrometheusMetrics) IncPermitted() {
	pm.PermittedTotal.With(nil).Inc()
}

// IncSuppressed increments the total number of suppressed calls.
func (pm *PrometheusMetrics) IncSuppressed() {
	pm.SuppressedTotal.With(nil).Inc()
}

// SetKeysAmount sets the current number of keys tracked by a KeyedGate.
func (pm *PrometheusMetrics) SetKeysAmount(amount int) {
	pm.KeysAmount.With(nil).Set(float64(amount))
}

// AddKeysEvictions increments the total number of keys evicted from a KeyedGate.
func (pm *PrometheusMetrics) AddKeysEvictions(n int) {
	pm.KeysEvictionsTotal.With(nil).Add(float64(n))
}

type disabledMetrics struct{}

func (disabledMetrics) IncPermitted()        {}
func (disabledMetrics) IncSuppressed()       {}
func (disabledMetrics) SetKeysAmount(int)    {}
func (disabledMetrics) AddKeysEvictions(int) {}

var disabledMetricsCollector MetricsCollector = disabledMetrics{}
