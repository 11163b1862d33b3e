// Package eventqueue delivers analytics events to the backend from
// background workers. Delivery is fire-and-forget: a failed event is
// retried with exponential backoff and ultimately dropped with a log
// line; the caller's flow is never affected.
//
// Events are sharded by a stable hash of their key so delivery order is
// preserved per key while shards drain in parallel.
package eventqueue

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/quickcourt/client-go/internal/errs"
	"github.com/quickcourt/client-go/internal/types"
)

// ErrDispatcherClosed is returned by Submit after Stop.
var ErrDispatcherClosed = errors.New("eventqueue: dispatcher closed")

// QueueFullError reports back-pressure on a shard at enqueue time.
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("eventqueue: shard %d full (%d/%d)", e.Shard, e.Length, e.Capacity)
}

// Sender delivers one event to the backend.
type Sender func(ctx context.Context, ev types.SearchEvent) error

type queuedEvent struct {
	ctx context.Context
	ev  types.SearchEvent

	// barrier is non-nil for Flush markers; the worker closes it instead
	// of delivering anything.
	barrier chan struct{}
}

// Dispatcher runs shard workers that drain queued events through the
// Sender.
type Dispatcher struct {
	cfg    Config
	send   Sender
	queues []chan queuedEvent

	done   chan struct{}
	closed uint32

	wg sync.WaitGroup
}

// New constructs the dispatcher and starts its shard workers.
func New(cfg Config, send Sender) *Dispatcher {
	if cfg.Shards <= 0 {
		cfg.Shards = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.EnqueueTimeout <= 0 {
		cfg.EnqueueTimeout = 50 * time.Millisecond
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 250 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 5 * time.Second
	}

	d := &Dispatcher{
		cfg:    cfg,
		send:   send,
		queues: make([]chan queuedEvent, cfg.Shards),
		done:   make(chan struct{}),
	}
	for i := 0; i < cfg.Shards; i++ {
		ch := make(chan queuedEvent, cfg.QueueSize)
		d.queues[i] = ch
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
	return d
}

// Submit enqueues ev on the shard derived from key. It returns quickly:
// either the event is accepted, the dispatcher is closed, the shard stays
// full past EnqueueTimeout, or ctx is cancelled first.
func (d *Dispatcher) Submit(ctx context.Context, key string, ev types.SearchEvent) error {
	if atomic.LoadUint32(&d.closed) == 1 {
		return ErrDispatcherClosed
	}
	select {
	case <-d.done:
		return ErrDispatcherClosed
	default:
	}

	shard := d.shardFor(key)
	ch := d.queues[shard]

	timer := time.NewTimer(d.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case ch <- queuedEvent{ctx: ctx, ev: ev}:
		eventsSubmitted.WithLabelValues(shardLabel(shard)).Inc()
		return nil
	case <-d.done:
		return ErrDispatcherClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		eventsDropped.WithLabelValues(shardLabel(shard), "queue_full").Inc()
		return &QueueFullError{Shard: shard, Length: len(ch), Capacity: cap(ch)}
	}
}

// Flush blocks until every event previously submitted for key has been
// handled, by enqueueing a barrier marker and waiting for the worker to
// reach it. FIFO ordering per shard makes this a completion guarantee.
func (d *Dispatcher) Flush(ctx context.Context, key string) error {
	done := make(chan struct{})
	ch := d.queues[d.shardFor(key)]
	select {
	case ch <- queuedEvent{ctx: ctx, barrier: done}:
	case <-d.done:
		return ErrDispatcherClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop signals the workers to drain their queues and waits for them.
// Idempotent and safe for concurrent use.
func (d *Dispatcher) Stop() {
	if !atomic.CompareAndSwapUint32(&d.closed, 0, 1) {
		return
	}
	log.Debug().Int("shards", d.cfg.Shards).Msg("eventqueue: stopping, draining shards")
	close(d.done)
	d.wg.Wait()
	log.Debug().Msg("eventqueue: stopped, all queues drained")
}

// ------------------------- internals -------------------------

func (d *Dispatcher) runWorker(idx int, ch <-chan queuedEvent) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Int("shard", idx).Interface("panic", r).Msg("eventqueue: worker panic")
		}
	}()

	label := shardLabel(idx)

	for {
		select {
		case qe := <-ch:
			d.deliver(label, qe)
			queueDepth.WithLabelValues(label).Set(float64(len(ch)))

		case <-d.done:
			// Drain remaining events, preserving order, then exit.
			for {
				select {
				case qe := <-ch:
					d.deliver(label, qe)
				default:
					queueDepth.WithLabelValues(label).Set(0)
					return
				}
			}
		}
	}
}

// deliver runs the sender with exponential backoff for recoverable
// failures. Terminal failures are logged and dropped.
func (d *Dispatcher) deliver(label string, qe queuedEvent) {
	if qe.barrier != nil {
		close(qe.barrier)
		return
	}
	if err := qe.ctx.Err(); err != nil {
		eventsDropped.WithLabelValues(label, "ctx_cancelled").Inc()
		return
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = d.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = d.cfg.MaxInterval
	exp.Reset()

	var err error
	for attempt := 1; ; attempt++ {
		start := time.Now()
		err = d.send(qe.ctx, qe.ev)
		deliverDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

		if err == nil {
			return
		}
		if kind := errs.KindOf(err); !kind.Retryable() {
			break
		}
		if attempt >= d.cfg.MaxAttempts {
			break
		}
		select {
		case <-time.After(exp.NextBackOff()):
		case <-d.done:
			// Shutting down; one last immediate try happens on drain, not here.
			eventsDropped.WithLabelValues(label, "shutdown").Inc()
			return
		case <-qe.ctx.Done():
			eventsDropped.WithLabelValues(label, "ctx_cancelled").Inc()
			return
		}
	}

	eventsDropped.WithLabelValues(label, "delivery_failed").Inc()
	log.Debug().Err(err).Str("query", qe.ev.Query).Msg("eventqueue: dropping analytics event")
}

func (d *Dispatcher) shardFor(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % d.cfg.Shards
}
