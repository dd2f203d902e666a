// Package scheduler runs the dashboard's background refresh: one task
// re-executed at a fixed interval until the controller stops it.
package scheduler

import (
	"context"
	"sync"
	"time"
)

// Scheduler re-runs a single task at a fixed interval. Runs do not
// overlap: the next tick fires only after the previous run returned.
type Scheduler struct {
	interval time.Duration
	task     func(context.Context)

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    sync.WaitGroup
}

// New creates a scheduler for task; nothing runs until Start
func New(interval time.Duration, task func(context.Context)) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
	}
}

// Start launches the periodic loop. When runNow is true the task runs
// once before the first tick (the dashboard performs its initial load
// itself and passes false). Starting an already running scheduler is a
// no-op.
func (s *Scheduler) Start(ctx context.Context, runNow bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true

	s.done.Add(1)
	go s.loop(ctx, runNow)
}

func (s *Scheduler) loop(ctx context.Context, runNow bool) {
	defer s.done.Done()

	if runNow {
		s.task(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.task(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Stop halts the loop and waits for an in-flight run to finish. Safe to
// call before Start or more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	s.done.Wait()
	s.running = false
}

// IsRunning reports whether the periodic loop is active
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
