package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/coursecupid-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{ch: make(chan time.Time)}
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }

func (f *fakeTicker) tick(t *testing.T) {
	t.Helper()
	select {
	case f.ch <- time.Now():
	case <-time.After(time.Second):
		t.Fatal("ticker not consumed")
	}
}

func waitIdle(t *testing.T, task *Task) {
	t.Helper()
	require.Eventually(t, func() bool { return !task.busy.Load() }, time.Second, time.Millisecond)
}

func TestTaskRunsImmediatelyAndOnEveryTick(t *testing.T) {
	t.Parallel()

	ticker := newFakeTicker()
	clock := mocks.NewMockClock(t)
	clock.EXPECT().NewTicker(5 * time.Second).Return(ticker).Once()

	var runs atomic.Int64
	task := New(clock, 5*time.Second, func(context.Context) { runs.Add(1) })
	task.Start(context.Background())

	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, time.Millisecond)
	waitIdle(t, task)
	ticker.tick(t)
	require.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, time.Millisecond)
	waitIdle(t, task)
	ticker.tick(t)
	require.Eventually(t, func() bool { return runs.Load() == 3 }, time.Second, time.Millisecond)

	task.Stop()
	assert.True(t, ticker.stopped.Load())
	assert.Zero(t, task.Skipped())
}

func TestTaskSkipsTicksWhileRunInFlight(t *testing.T) {
	t.Parallel()

	ticker := newFakeTicker()
	clock := mocks.NewMockClock(t)
	clock.EXPECT().NewTicker(time.Second).Return(ticker).Once()

	release := make(chan struct{})
	var runs atomic.Int64
	task := New(clock, time.Second, func(context.Context) {
		runs.Add(1)
		<-release
	})
	task.Start(context.Background())

	ticker.tick(t)
	ticker.tick(t)
	require.Eventually(t, func() bool { return task.Skipped() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, int64(1), runs.Load())

	close(release)
	task.Stop()
	assert.Equal(t, int64(1), runs.Load())
}

func TestTaskStopCancelsInFlightRun(t *testing.T) {
	t.Parallel()

	ticker := newFakeTicker()
	clock := mocks.NewMockClock(t)
	clock.EXPECT().NewTicker(time.Second).Return(ticker).Once()

	started := make(chan struct{})
	var canceled atomic.Bool
	task := New(clock, time.Second, func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		canceled.Store(true)
	})
	task.Start(context.Background())

	<-started
	task.Stop()
	assert.True(t, canceled.Load())
}

func TestTaskStartTwiceIsNoop(t *testing.T) {
	t.Parallel()

	ticker := newFakeTicker()
	clock := mocks.NewMockClock(t)
	clock.EXPECT().NewTicker(time.Second).Return(ticker).Once()

	var runs atomic.Int64
	task := New(clock, time.Second, func(context.Context) { runs.Add(1) })
	task.Start(context.Background())
	task.Start(context.Background())

	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, time.Millisecond)
	task.Stop()
	task.Stop()
}

func TestTaskStopsWithParentContext(t *testing.T) {
	t.Parallel()

	ticker := newFakeTicker()
	clock := mocks.NewMockClock(t)
	clock.EXPECT().NewTicker(time.Second).Return(ticker).Once()

	ctx, cancel := context.WithCancel(context.Background())
	task := New(clock, time.Second, func(context.Context) {})
	task.Start(ctx)
	cancel()

	require.Eventually(t, ticker.stopped.Load, time.Second, time.Millisecond)
	task.Stop()
}
