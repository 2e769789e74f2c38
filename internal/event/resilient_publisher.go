package event

import (
	"context"
	"sync"
	"time"

	"github.com/orvane/Gemstore_Go/internal/logger"
)

// retryEntry tracks an event awaiting republication
type retryEntry struct {
	event     Event
	attempts  int
	lastError error
	nextRetry time.Time
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead letter queuing.
// Failed publishes are queued to a background worker that retries with exponential
// backoff; events that exhaust their retries are written to a dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher and starts its retry worker.
// The dead-letter file is opened eagerly so a bad path fails at startup rather than
// on first drop.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	if maxRetries <= 0 {
		maxRetries = RetryMaxAttempts
	}
	if retryDelay <= 0 {
		retryDelay = RetryInitialDelaySeconds * time.Second
	}

	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dlw,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry attempts to publish an event. If the first attempt fails the
// event is queued for background retry; the caller is never blocked on retries.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	p.enqueue(retryEntry{
		event:     event,
		attempts:  1,
		lastError: err,
		nextRetry: time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
	})
}

// Publish implements Bus by delegating to PublishWithRetry. It always returns
// nil: delivery failures are handled by the retry worker, not the caller.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		p.writeDeadLetter(entry)
	}
}

// retryWorker processes the retry queue until shutdown. Entries are retried
// with exponential backoff; a failed attempt re-queues the entry until its
// retry budget is exhausted.
func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			p.drainQueue()
			return
		case entry := <-p.retryQueue:
			if wait := time.Until(entry.nextRetry); wait > 0 {
				select {
				case <-time.After(wait):
				case <-p.shutdown:
					p.finalAttempt(entry)
					p.drainQueue()
					return
				}
			}

			err := p.bus.Publish(context.Background(), entry.event)
			if err == nil {
				logger.Info(LogMsgEventRetrySucceeded,
					"event_type", entry.event.Type,
					"attempt", entry.attempts)
				continue
			}

			entry.lastError = err
			if entry.attempts >= p.maxRetries {
				logger.Error(LogMsgEventRetryExhausted,
					"event_type", entry.event.Type,
					"attempts", entry.attempts)
				p.writeDeadLetter(entry)
				continue
			}

			logger.Warn(LogMsgEventRetryFailed,
				"event_type", entry.event.Type,
				"attempt", entry.attempts,
				"error", err)

			entry.attempts++
			entry.nextRetry = time.Now().Add(CalculateRetryDelay(p.retryDelay, entry.attempts))
			p.enqueue(entry)
		}
	}
}

// drainQueue gives every queued entry one final attempt during shutdown.
func (p *ResilientPublisher) drainQueue() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) finalAttempt(entry retryEntry) {
	if err := p.bus.Publish(context.Background(), entry.event); err != nil {
		entry.lastError = err
		p.writeDeadLetter(entry)
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastError); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err, "event_type", entry.event.Type)
	}
}

// Shutdown stops the retry worker, drains pending retries with one final
// attempt each, and closes the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	close(p.shutdown)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
	}

	return p.deadLetter.Close()
}
