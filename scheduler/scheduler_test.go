package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func countingTask(counter *atomic.Int32) func(context.Context) {
	return func(context.Context) { counter.Add(1) }
}

func TestScheduler_RunsAtInterval(t *testing.T) {
	var runs atomic.Int32
	s := New(20*time.Millisecond, countingTask(&runs))

	s.Start(context.Background(), false)
	assert.True(t, s.IsRunning())

	time.Sleep(110 * time.Millisecond)
	s.Stop()
	assert.False(t, s.IsRunning())

	assert.GreaterOrEqual(t, runs.Load(), int32(3))

	// No further runs after Stop
	after := runs.Load()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_RunNow(t *testing.T) {
	var runs atomic.Int32
	s := New(time.Hour, countingTask(&runs))

	s.Start(context.Background(), true)
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() == 1 },
		time.Second, 5*time.Millisecond)
}

func TestScheduler_DeferredFirstRun(t *testing.T) {
	var runs atomic.Int32
	s := New(50*time.Millisecond, countingTask(&runs))

	s.Start(context.Background(), false)
	defer s.Stop()

	// Nothing runs before the first tick
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())

	assert.Eventually(t, func() bool { return runs.Load() >= 1 },
		time.Second, 5*time.Millisecond)
}

func TestScheduler_DoubleStartIsNoop(t *testing.T) {
	var runs atomic.Int32
	s := New(time.Hour, countingTask(&runs))

	s.Start(context.Background(), true)
	s.Start(context.Background(), true)
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() == 1 },
		time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_StopBeforeStart(t *testing.T) {
	s := New(time.Hour, func(context.Context) {})
	s.Stop()
	assert.False(t, s.IsRunning())
}

func TestScheduler_ParentContextStopsTicks(t *testing.T) {
	var runs atomic.Int32
	s := New(20*time.Millisecond, countingTask(&runs))

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx, false)

	time.Sleep(50 * time.Millisecond)
	cancel()

	time.Sleep(30 * time.Millisecond)
	after := runs.Load()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, after, runs.Load())

	s.Stop()
	assert.False(t, s.IsRunning())
}
