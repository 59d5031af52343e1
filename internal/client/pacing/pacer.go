// Package pacing runs operations after a fixed delay, one at a time, in the
// order they were submitted.
//
// The CLI uses it to give saves a short visible pause. Two saves submitted
// back to back both apply, in submission order, so the later one wins.
package pacing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/greenpath/internal/observability"
	"github.com/jonboulle/clockwork"
)

// ErrClosed is delivered for work submitted after Close.
var ErrClosed = errors.New("pacer closed")

type job struct {
	ctx    context.Context
	fn     func(ctx context.Context) error
	due    time.Time
	result chan error
}

// Pacer is a single-worker deferred executor.
type Pacer struct {
	clock   clockwork.Clock
	delay   time.Duration
	metrics *observability.Metrics

	jobs  chan job
	flush chan struct{}
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// New starts a Pacer whose jobs run delay after they are submitted.
// metrics may be nil.
func New(clock clockwork.Clock, delay time.Duration, metrics *observability.Metrics) *Pacer {
	p := &Pacer{
		clock:   clock,
		delay:   delay,
		metrics: metrics,
		jobs:    make(chan job, 64),
		flush:   make(chan struct{}),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// Submit queues fn and returns a channel that receives its result exactly
// once. Queued work is never dropped: fn runs with ctx's values but without
// its cancellation, so a save accepted before Ctrl-C still lands.
func (p *Pacer) Submit(ctx context.Context, fn func(ctx context.Context) error) <-chan error {
	result := make(chan error, 1)

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		result <- ErrClosed
		return result
	}

	p.jobs <- job{ctx: context.WithoutCancel(ctx), fn: fn, due: p.clock.Now().Add(p.delay), result: result}
	return result
}

// Do submits fn and waits for its result. Cancelling ctx abandons the wait,
// not the job.
func (p *Pacer) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	select {
	case err := <-p.Submit(ctx, fn):
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work, runs whatever is still queued without
// further delay and waits for the worker to exit.
func (p *Pacer) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.done
		return
	}
	p.closed = true
	close(p.flush)
	close(p.jobs)
	p.mu.Unlock()

	<-p.done
}

func (p *Pacer) run() {
	defer close(p.done)

	for j := range p.jobs {
		if wait := j.due.Sub(p.clock.Now()); wait > 0 {
			select {
			case <-p.clock.After(wait):
			case <-p.flush:
			}
		}

		j.result <- j.fn(j.ctx)
		p.metrics.ObservePaced()
	}
}
