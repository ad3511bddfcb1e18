/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package gate

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/acronis/go-limitrate/config"
	"github.com/acronis/go-limitrate/testutil"
)

func TestNewKeyedGate(t *testing.T) {
	_, err := NewKeyedGate[string](-time.Second, 10)
	require.EqualError(t, err, "min interval should not be negative, got -1s")

	_, err = NewKeyedGate[string](time.Second, 0)
	require.EqualError(t, err, "max keys should be positive, got 0")

	kg, err := NewKeyedGate[string](time.Second, 10)
	require.NoError(t, err)
	require.Equal(t, time.Second, kg.MinInterval())
	require.Equal(t, 0, kg.Len())
}

func TestNewKeyedGateFromConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MinInterval = config.TimeDuration(time.Minute)

	kg, err := NewKeyedGateFromConfig[int](cfg, KeyedGateOpts{})
	require.NoError(t, err)
	require.Equal(t, time.Minute, kg.MinInterval())

	_, err = NewKeyedGateFromConfig[int](NewConfig(), KeyedGateOpts{})
	require.Error(t, err, "zero max keys should be rejected")
}

func TestKeyedGate_KeysAreIndependent(t *testing.T) {
	clock := newFakeClock()
	kg, err := NewKeyedGateWithOpts[string](time.Second, 10, KeyedGateOpts{Clock: clock})
	require.NoError(t, err)

	require.True(t, kg.Allow("a"))
	require.True(t, kg.Allow("b"))
	require.False(t, kg.Allow("a"))
	require.False(t, kg.Allow("b"))

	clock.Advance(time.Second / 2)
	require.True(t, kg.Allow("c"))

	clock.Advance(time.Second / 2)
	require.True(t, kg.Allow("a"))
	require.True(t, kg.Allow("b"))
	require.False(t, kg.Allow("c"))
	require.Equal(t, 3, kg.Len())

	last, ok := kg.LastExecution("a")
	require.True(t, ok)
	require.True(t, last.Equal(clock.Now()))
	_, ok = kg.LastExecution("unknown")
	require.False(t, ok)
}

func TestKeyedGate_Eviction(t *testing.T) {
	metrics := NewPrometheusMetrics()
	kg, err := NewKeyedGateWithOpts[string](time.Hour, 2, KeyedGateOpts{Clock: newFakeClock(), MetricsCollector: metrics})
	require.NoError(t, err)

	require.True(t, kg.Allow("a"))
	require.True(t, kg.Allow("b"))
	require.True(t, kg.Allow("c")) // "a" is evicted.
	require.Equal(t, 2, kg.Len())

	require.True(t, kg.Allow("a"), "evicted key should start over")
	require.False(t, kg.Allow("c"))

	testutil.RequireCounterValue(t, metrics.PermittedTotal, 4)
	testutil.RequireCounterValue(t, metrics.SuppressedTotal, 1)
	testutil.RequireCounterValue(t, metrics.KeysEvictionsTotal, 2)
	require.True(t, testutil.AssertGaugeValue(t, metrics.KeysAmount, 2))
}

func TestKeyedGate_RemoveAndPurge(t *testing.T) {
	kg, err := NewKeyedGate[int](time.Hour, 100)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.True(t, kg.Allow(i))
	}
	require.True(t, kg.Remove(3))
	require.False(t, kg.Remove(3))
	require.True(t, kg.Allow(3))
	require.False(t, kg.Allow(4))

	kg.Purge()
	require.Equal(t, 0, kg.Len())
	require.True(t, kg.Allow(4))
}

func TestKeyedGate_DoAndMaybeExecute(t *testing.T) {
	kg, err := NewKeyedGate[string](time.Hour, 10)
	require.NoError(t, err)

	errFailed := errors.New("failed")
	executed, err := kg.DoE("job", func() error { return errFailed })
	require.True(t, executed)
	require.ErrorIs(t, err, errFailed)

	require.False(t, kg.Do("job", func() { t.Fatal("should not be called") }))

	res, executed := MaybeExecuteKeyed(kg, "other-job", func() string { return "ok" })
	require.True(t, executed)
	require.Equal(t, "ok", res)

	res, executed = MaybeExecuteKeyed(kg, "other-job", func() string { return "ok" })
	require.False(t, executed)
	require.Equal(t, "", res)
}

func TestKeyedGate_ConcurrentCallers(t *testing.T) {
	const keys = 10
	const goroutinesPerKey = 20

	kg, err := NewKeyedGateWithOpts[string](time.Hour, keys, KeyedGateOpts{Clock: newFakeClock()})
	require.NoError(t, err)

	executions := atomic.NewInt32(0)
	var wg sync.WaitGroup
	for k := 0; k < keys; k++ {
		key := fmt.Sprintf("key-%d", k)
		for i := 0; i < goroutinesPerKey; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				kg.Do(key, func() { executions.Inc() })
			}()
		}
	}
	wg.Wait()
	require.Equal(t, int32(keys), executions.Load())
}
