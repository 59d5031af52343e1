package pacing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delay = 500 * time.Millisecond

func waitTimer(t *testing.T, clock *clockwork.FakeClock) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
}

func recv(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for result")
		return nil
	}
}

func TestPacer_RunsAfterDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := New(clock, delay, nil)
	defer p.Close()

	ran := make(chan struct{})
	res := p.Submit(context.Background(), func(context.Context) error {
		close(ran)
		return nil
	})

	waitTimer(t, clock)
	clock.Advance(delay - time.Millisecond)
	select {
	case <-ran:
		t.Fatal("ran before the delay elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(time.Millisecond)
	require.NoError(t, recv(t, res))
	<-ran
}

func TestPacer_DeliversError(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := New(clock, delay, nil)
	defer p.Close()

	boom := errors.New("boom")
	res := p.Submit(context.Background(), func(context.Context) error { return boom })

	waitTimer(t, clock)
	clock.Advance(delay)
	require.ErrorIs(t, recv(t, res), boom)
}

func TestPacer_OverlappingJobsRunInSubmissionOrder(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := New(clock, delay, nil)
	defer p.Close()

	var mu sync.Mutex
	var value string
	var order []string
	write := func(v string) func(context.Context) error {
		return func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			value = v
			order = append(order, v)
			return nil
		}
	}

	first := p.Submit(context.Background(), write("Mysuru"))
	waitTimer(t, clock)
	clock.Advance(100 * time.Millisecond)
	second := p.Submit(context.Background(), write("Pune"))

	clock.Advance(400 * time.Millisecond)
	require.NoError(t, recv(t, first))

	waitTimer(t, clock)
	clock.Advance(100 * time.Millisecond)
	require.NoError(t, recv(t, second))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Mysuru", "Pune"}, order)
	assert.Equal(t, "Pune", value, "last write wins")
}

func TestPacer_CancelledContextStillRunsJob(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := New(clock, delay, nil)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var jobErr error
	res := p.Submit(ctx, func(ctx context.Context) error {
		jobErr = ctx.Err()
		return nil
	})

	waitTimer(t, clock)
	cancel()
	clock.Advance(delay)
	require.NoError(t, recv(t, res))
	assert.NoError(t, jobErr, "job context ignores the caller's cancellation")
}

func TestPacer_DoAbandonsWaitButCloseAppliesSave(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := New(clock, delay, nil)

	var mu sync.Mutex
	applied := false
	ctx, cancel := context.WithCancel(context.Background())

	doErr := make(chan error, 1)
	go func() {
		doErr <- p.Do(ctx, func(context.Context) error {
			mu.Lock()
			applied = true
			mu.Unlock()
			return nil
		})
	}()

	waitTimer(t, clock)
	cancel()
	require.ErrorIs(t, recv(t, doErr), context.Canceled)

	p.Close()
	mu.Lock()
	defer mu.Unlock()
	assert.True(t, applied, "pending save is flushed on Close")
}

func TestPacer_ZeroDelayRunsImmediately(t *testing.T) {
	p := New(clockwork.NewFakeClock(), 0, nil)
	defer p.Close()

	err := p.Do(context.Background(), func(context.Context) error { return nil })
	require.NoError(t, err)
}

func TestPacer_CloseFlushesQueuedWork(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := New(clock, delay, nil)

	var mu sync.Mutex
	var ran []int
	var results []<-chan error
	for i := range 3 {
		results = append(results, p.Submit(context.Background(), func(context.Context) error {
			mu.Lock()
			ran = append(ran, i)
			mu.Unlock()
			return nil
		}))
	}

	p.Close()
	for _, r := range results {
		require.NoError(t, recv(t, r))
	}
	assert.Equal(t, []int{0, 1, 2}, ran)

	require.ErrorIs(t, recv(t, p.Submit(context.Background(), func(context.Context) error { return nil })), ErrClosed)
	p.Close()
}
