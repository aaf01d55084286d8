package query

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoller_RefreshesOnInterval(t *testing.T) {
	var calls atomic.Int32
	r := NewResource(NewCache(testLogger()), "airports", 10*time.Millisecond, func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	p := NewPoller(testLogger())
	p.Start(context.Background(), r)

	require.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	p.StopAll()
}

func TestPoller_StopEndsPolling(t *testing.T) {
	var calls atomic.Int32
	r := NewResource(NewCache(testLogger()), "bookings", 5*time.Millisecond, func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	p := NewPoller(testLogger())
	p.Start(context.Background(), r)

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)

	p.Stop(r.Key())
	n := calls.Load()
	time.Sleep(30 * time.Millisecond)
	// at most one tick could already have been in flight when Stop ran
	require.LessOrEqual(t, calls.Load(), n+1)
}

func TestPoller_StartSupersedesOldLoop(t *testing.T) {
	cache := NewCache(testLogger())
	var calls atomic.Int32
	r := NewResource(cache, "employees", 5*time.Millisecond, func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	p := NewPoller(testLogger())
	ctx := context.Background()
	p.Start(ctx, r)
	p.Start(ctx, r) // replaces, must not double-poll forever

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	p.StopAll()
}

func TestPoller_ContextCancelStopsLoop(t *testing.T) {
	var calls atomic.Int32
	r := NewResource(NewCache(testLogger()), "auditLogs", 5*time.Millisecond, func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	p := NewPoller(testLogger())
	p.Start(ctx, r)

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)
	cancel()

	n := calls.Load()
	time.Sleep(30 * time.Millisecond)
	require.LessOrEqual(t, calls.Load(), n+1)
}
