/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package gate

import "time"

// GateOpts represents options for Gate and SharedGate.
type GateOpts struct {
	// Clock is a source of the current instant. SystemClock is used if nil.
	Clock Clock

	// MetricsCollector is used to count permitted and suppressed executions.
	// Metrics are disabled if nil.
	MetricsCollector MetricsCollector
}

// Gate tracks the instant of the last permitted execution of one logical operation.
//
// The zero value is ready to use: it has no recorded execution and uses SystemClock.
// Gate is not safe for concurrent use, it's supposed to be owned by a single goroutine.
// Use SharedGate when the same gate is accessed from several goroutines.
type Gate struct {
	clock            Clock
	metricsCollector MetricsCollector
	lastExecution    time.Time
	armed            bool
}

// New creates a new Gate with default options.
func New() *Gate {
	return NewWithOpts(GateOpts{})
}

// NewWithOpts creates a new Gate with the provided options.
func NewWithOpts(opts GateOpts) *Gate {
	return &Gate{clock: opts.Clock, metricsCollector: opts.MetricsCollector}
}

// Allow reports whether an execution is permitted now and, if so, records the current instant
// as the last execution. The execution is permitted if there were no executions before
// or if at least minInterval has elapsed since the last one. Negative minInterval is treated as zero.
func (g *Gate) Allow(minInterval time.Duration) bool {
	minInterval = normalizeInterval(minInterval)
	now := g.getClock().Now()
	if g.armed && minInterval > 0 && now.Sub(g.lastExecution) < minInterval {
		g.getMetricsCollector().IncSuppressed()
		return false
	}
	if !g.armed || now.After(g.lastExecution) {
		g.lastExecution = now
	}
	g.armed = true
	g.getMetricsCollector().IncPermitted()
	return true
}

// Do calls fn if the execution is permitted (see Allow) and reports whether it was called.
func (g *Gate) Do(minInterval time.Duration, fn func()) bool {
	if !g.Allow(minInterval) {
		return false
	}
	fn()
	return true
}

// DoE calls fn if the execution is permitted (see Allow).
// The error returned by fn is passed through as is. Failed execution is not rolled back
// and the next call will be rate-limited as usual.
func (g *Gate) DoE(minInterval time.Duration, fn func() error) (executed bool, err error) {
	if !g.Allow(minInterval) {
		return false, nil
	}
	return true, fn()
}

// LastExecution returns the instant of the last permitted execution.
// The second value is false if there were no permitted executions yet.
func (g *Gate) LastExecution() (time.Time, bool) {
	return g.lastExecution, g.armed
}

// Reset forgets the last permitted execution, so the next call will be permitted.
func (g *Gate) Reset() {
	g.lastExecution = time.Time{}
	g.armed = false
}

func (g *Gate) getClock() Clock {
	if g.clock == nil {
		return defaultClock
	}
	return g.clock
}

func (g *Gate) getMetricsCollector() MetricsCollector {
	if g.metricsCollector == nil {
		return disabledMetricsCollector
	}
	return g.metricsCollector
}

// MaybeExecute calls action if the execution is permitted by the gate (see Gate.Allow).
// It returns the action result and true, or the zero value and false if the call was suppressed.
func MaybeExecute[T any](g *Gate, minInterval time.Duration, action func() T) (result T, executed bool) {
	if !g.Allow(minInterval) {
		return result, false
	}
	return action(), true
}
