package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/coursecupid-cli/internal/ports"
)

// Task runs fn once immediately and then on every tick. A tick that arrives
// while fn is still running is skipped, so runs never overlap.
type Task struct {
	clock    ports.Clock
	interval time.Duration
	fn       func(ctx context.Context)

	busy    atomic.Bool
	skipped atomic.Int64

	mu      sync.Mutex
	cancel  context.CancelFunc
	running sync.WaitGroup
}

func New(clock ports.Clock, interval time.Duration, fn func(ctx context.Context)) *Task {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Task{clock: clock, interval: interval, fn: fn}
}

// Start launches the loop. Calling Start on a started task is a no-op.
func (t *Task) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}

	ctx, t.cancel = context.WithCancel(ctx)
	ticker := t.clock.NewTicker(t.interval)

	t.running.Add(1)
	go func() {
		defer t.running.Done()
		defer ticker.Stop()

		t.dispatch(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				t.dispatch(ctx)
			}
		}
	}()
}

// Stop cancels the loop and any in-flight run, then waits for both to exit.
func (t *Task) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	t.running.Wait()
}

// Skipped counts ticks dropped because a run was still in flight.
func (t *Task) Skipped() int64 {
	return t.skipped.Load()
}

func (t *Task) dispatch(ctx context.Context) {
	if !t.busy.CompareAndSwap(false, true) {
		t.skipped.Add(1)
		return
	}

	t.running.Add(1)
	go func() {
		defer t.running.Done()
		defer t.busy.Store(false)
		if ctx.Err() != nil {
			return
		}
		t.fn(ctx)
	}()
}
