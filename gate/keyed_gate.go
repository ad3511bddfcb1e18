/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package gate

import (
	"fmt"
	"time"

	"github.com/acronis/go-limitrate/internal/lrucache"
)

// KeyedGateOpts represents options for KeyedGate.
type KeyedGateOpts struct {
	// Clock is a source of the current instant. SystemClock is used if nil.
	Clock Clock

	// MetricsCollector is used to count gate decisions and tracked keys.
	// Metrics are disabled if nil.
	MetricsCollector MetricsCollector
}

// KeyedGate rate-limits executions independently for each key with the same minimum interval.
// The key identifies a logical operation (e.g., an entity, a message, a remote peer).
//
// The number of tracked keys is limited. When the limit is exceeded, the least recently used
// key is forgotten, and the next call for it is permitted as if it were the first one.
// KeyedGate is safe for concurrent use.
type KeyedGate[K comparable] struct {
	minInterval      time.Duration
	gates            *lrucache.LRUCache[K, *SharedGate]
	gateOpts         GateOpts
	metricsCollector MetricsCollector
}

// NewKeyedGate creates a new KeyedGate with default options.
func NewKeyedGate[K comparable](minInterval time.Duration, maxKeys int) (*KeyedGate[K], error) {
	return NewKeyedGateWithOpts[K](minInterval, maxKeys, KeyedGateOpts{})
}

// NewKeyedGateFromConfig creates a new KeyedGate with parameters from the configuration.
func NewKeyedGateFromConfig[K comparable](cfg *Config, opts KeyedGateOpts) (*KeyedGate[K], error) {
	return NewKeyedGateWithOpts[K](time.Duration(cfg.MinInterval), cfg.MaxKeys, opts)
}

// NewKeyedGateWithOpts creates a new KeyedGate with the provided options.
func NewKeyedGateWithOpts[K comparable](minInterval time.Duration, maxKeys int, opts KeyedGateOpts) (*KeyedGate[K], error) {
	if minInterval < 0 {
		return nil, fmt.Errorf("min interval should not be negative, got %s", minInterval)
	}
	if maxKeys <= 0 {
		return nil, fmt.Errorf("max keys should be positive, got %d", maxKeys)
	}
	if opts.MetricsCollector == nil {
		opts.MetricsCollector = disabledMetricsCollector
	}
	gates, err := lrucache.New[K, *SharedGate](maxKeys, keysMetricsCollector{opts.MetricsCollector})
	if err != nil {
		return nil, fmt.Errorf("new LRU cache for gates: %w", err)
	}
	return &KeyedGate[K]{
		minInterval:      minInterval,
		gates:            gates,
		gateOpts:         GateOpts{Clock: opts.Clock, MetricsCollector: opts.MetricsCollector},
		metricsCollector: opts.MetricsCollector,
	}, nil
}

// MinInterval returns the minimum interval between two permitted executions for the same key.
func (kg *KeyedGate[K]) MinInterval() time.Duration {
	return kg.minInterval
}

// Allow reports whether an execution for the key is permitted now and, if so,
// records the current instant as the last execution for this key.
func (kg *KeyedGate[K]) Allow(key K) bool {
	g, _ := kg.gates.GetOrAdd(key, func() *SharedGate {
		return NewSharedGateWithOpts(kg.gateOpts)
	})
	return g.Allow(kg.minInterval)
}

// Do calls fn if the execution for the key is permitted (see Allow) and reports whether it was called.
func (kg *KeyedGate[K]) Do(key K, fn func()) bool {
	if !kg.Allow(key) {
		return false
	}
	fn()
	return true
}

// DoE calls fn if the execution for the key is permitted (see Allow). The error returned by fn is passed through as is.
func (kg *KeyedGate[K]) DoE(key K, fn func() error) (executed bool, err error) {
	if !kg.Allow(key) {
		return false, nil
	}
	return true, fn()
}

// LastExecution returns the instant of the last permitted execution for the key.
// The second value is false if the key is not tracked or there were no permitted executions for it.
func (kg *KeyedGate[K]) LastExecution(key K) (time.Time, bool) {
	g, ok := kg.gates.Get(key)
	if !ok {
		return time.Time{}, false
	}
	return g.LastExecution()
}

// Remove forgets the state for the key. It reports whether the key was tracked.
func (kg *KeyedGate[K]) Remove(key K) bool {
	return kg.gates.Remove(key)
}

// Purge forgets the state for all keys.
func (kg *KeyedGate[K]) Purge() {
	kg.gates.Purge()
}

// Len returns the number of tracked keys.
func (kg *KeyedGate[K]) Len() int {
	return kg.gates.Len()
}

// MaybeExecuteKeyed calls action if the execution for the key is permitted by the keyed gate (see KeyedGate.Allow).
func MaybeExecuteKeyed[K comparable, T any](kg *KeyedGate[K], key K, action func() T) (result T, executed bool) {
	if !kg.Allow(key) {
		return result, false
	}
	return action(), true
}

// keysMetricsCollector adapts MetricsCollector to the metrics of the underlying LRU cache.
type keysMetricsCollector struct {
	mc MetricsCollector
}

func (c keysMetricsCollector) SetAmount(n int) {
	c.mc.SetKeysAmount(n)
}

func (c keysMetricsCollector) AddEvictions(n int) {
	c.mc.AddKeysEvictions(n)
}
