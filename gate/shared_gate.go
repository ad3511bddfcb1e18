/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package gate

import (
	"math"
	"time"

	"go.uber.org/atomic"
)

const noExecution = math.MinInt64

// SharedGate is a Gate that is safe for concurrent use.
// Only one of the goroutines that call it within the same interval is permitted.
//
// SharedGate must be created with NewSharedGate or NewSharedGateWithOpts.
type SharedGate struct {
	clock            Clock
	metricsCollector MetricsCollector

	// base is an instant captured at construction. lastExecution is stored as an offset from it,
	// so the monotonic clock reading is used for all comparisons.
	base          time.Time
	lastExecution atomic.Int64
}

// NewSharedGate creates a new SharedGate with default options.
func NewSharedGate() *SharedGate {
	return NewSharedGateWithOpts(GateOpts{})
}

// NewSharedGateWithOpts creates a new SharedGate with the provided options.
func NewSharedGateWithOpts(opts GateOpts) *SharedGate {
	if opts.Clock == nil {
		opts.Clock = defaultClock
	}
	if opts.MetricsCollector == nil {
		opts.MetricsCollector = disabledMetricsCollector
	}
	g := &SharedGate{clock: opts.Clock, metricsCollector: opts.MetricsCollector, base: opts.Clock.Now()}
	g.lastExecution.Store(noExecution)
	return g
}

// Allow reports whether an execution is permitted now and, if so, records the current instant
// as the last execution. Semantics are the same as for Gate.Allow.
func (g *SharedGate) Allow(minInterval time.Duration) bool {
	minInterval = normalizeInterval(minInterval)
	now := int64(g.clock.Now().Sub(g.base))
	for {
		last := g.lastExecution.Load()
		if last != noExecution && minInterval > 0 && now-last < int64(minInterval) {
			g.metricsCollector.IncSuppressed()
			return false
		}
		if last != noExecution && now <= last {
			// Zero interval and the same or a later instant has already been recorded.
			g.metricsCollector.IncPermitted()
			return true
		}
		if g.lastExecution.CompareAndSwap(last, now) {
			g.metricsCollector.IncPermitted()
			return true
		}
	}
}

// Do calls fn if the execution is permitted (see Allow) and reports whether it was called.
func (g *SharedGate) Do(minInterval time.Duration, fn func()) bool {
	if !g.Allow(minInterval) {
		return false
	}
	fn()
	return true
}

// DoE calls fn if the execution is permitted (see Allow). The error returned by fn is passed through as is.
func (g *SharedGate) DoE(minInterval time.Duration, fn func() error) (executed bool, err error) {
	if !g.Allow(minInterval) {
		return false, nil
	}
	return true, fn()
}

// LastExecution returns the instant of the last permitted execution.
// The second value is false if there were no permitted executions yet.
func (g *SharedGate) LastExecution() (time.Time, bool) {
	last := g.lastExecution.Load()
	if last == noExecution {
		return time.Time{}, false
	}
	return g.base.Add(time.Duration(last)), true
}

// Reset forgets the last permitted execution, so the next call will be permitted.
func (g *SharedGate) Reset() {
	g.lastExecution.Store(noExecution)
}

// MaybeExecuteShared calls action if the execution is permitted by the shared gate (see SharedGate.Allow).
func MaybeExecuteShared[T any](g *SharedGate, minInterval time.Duration, action func() T) (result T, executed bool) {
	if !g.Allow(minInterval) {
		return result, false
	}
	return action(), true
}
