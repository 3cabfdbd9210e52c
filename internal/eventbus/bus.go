package eventbus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/grachmannico95/codes-bot/pkg/retry"
)

// ErrEventDropped is returned by Publish when the event type's queue is full.
var ErrEventDropped = errors.New("event queue full, event dropped")

type EventBus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, consumer Consumer) error
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
	Stats() Stats
}

// Stats counts deliveries since the bus was created.
type Stats struct {
	Published int64 `json:"published"`
	Dropped   int64 `json:"dropped"`
	Processed int64 `json:"processed"`
	Failed    int64 `json:"failed"`
}

type eventBus struct {
	channels      map[EventType]chan Event
	consumers     map[EventType][]Consumer
	mu            sync.RWMutex
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
	logger        *logger.Logger
	channelBuffer int
	maxRetries    int
	retryDelay    time.Duration
	started       bool

	published atomic.Int64
	dropped   atomic.Int64
	processed atomic.Int64
	failed    atomic.Int64
}

type Config struct {
	ChannelBuffer int
	MaxRetries    int
	RetryDelay    time.Duration
}

func New(log *logger.Logger, cfg *Config) EventBus {
	if cfg == nil {
		cfg = &Config{
			ChannelBuffer: 1000,
			MaxRetries:    5,
		}
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}

	return &eventBus{
		channels:      make(map[EventType]chan Event),
		consumers:     make(map[EventType][]Consumer),
		logger:        log,
		channelBuffer: cfg.ChannelBuffer,
		maxRetries:    cfg.MaxRetries,
		retryDelay:    cfg.RetryDelay,
	}
}

// Subscribe registers consumer for eventType. Consumers added after Start
// get no workers.
func (eb *eventBus) Subscribe(eventType EventType, consumer Consumer) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.started {
		return errors.New("event bus already started")
	}

	if _, exists := eb.channels[eventType]; !exists {
		eb.channels[eventType] = make(chan Event, eb.channelBuffer)
	}

	eb.consumers[eventType] = append(eb.consumers[eventType], consumer)

	return nil
}

func (eb *eventBus) Start(ctx context.Context) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.started {
		return nil
	}

	eb.ctx, eb.cancel = context.WithCancel(ctx)

	for eventType, consumers := range eb.consumers {
		ch := eb.channels[eventType]

		for _, consumer := range consumers {
			workerCount := consumer.GetWorkerCount()
			eb.logger.Info(eb.ctx, "Starting workers",
				"event_type", eventType,
				"worker_count", workerCount,
			)

			for i := 0; i < workerCount; i++ {
				eb.wg.Add(1)
				go eb.worker(eb.ctx, ch, consumer, i)
			}
		}
	}

	eb.started = true
	eb.logger.Info(eb.ctx, "Event bus started")

	return nil
}

func (eb *eventBus) worker(ctx context.Context, ch <-chan Event, consumer Consumer, workerID int) {
	defer eb.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}

			eb.processEvent(ctx, event, consumer, workerID)
		}
	}
}

func (eb *eventBus) processEvent(ctx context.Context, event Event, consumer Consumer, workerID int) {
	eventCtx := ctx
	if event.ID != "" {
		eventCtx = logger.WithTraceID(ctx, event.ID)
	}

	attempts := 0
	err := retry.Do(eventCtx, func() error {
		attempts++
		return consumer.Consume(eventCtx, event)
	}, retry.WithMaxAttempts(eb.maxRetries), retry.WithBaseDelay(eb.retryDelay))

	if err != nil {
		eb.failed.Add(1)
		eb.logger.Error(eventCtx, "Failed to process event",
			"event_id", event.ID,
			"event_type", event.Type,
			"worker_id", workerID,
			"attempts", attempts,
			"permanent", retry.IsPermanent(err),
			"error", err,
		)
		return
	}

	eb.processed.Add(1)
	eb.logger.Debug(eventCtx, "Event processed",
		"event_id", event.ID,
		"event_type", event.Type,
		"worker_id", workerID,
		"attempts", attempts,
	)
}

// Publish enqueues event without blocking. An event type nobody subscribed
// to is discarded silently; a full queue returns ErrEventDropped.
func (eb *eventBus) Publish(ctx context.Context, event Event) error {
	eb.mu.RLock()
	ch, exists := eb.channels[event.Type]
	eb.mu.RUnlock()

	if !exists {
		eb.logger.Debug(ctx, "No subscribers for event type",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return nil
	}

	select {
	case ch <- event:
		eb.published.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		eb.dropped.Add(1)
		return ErrEventDropped
	}
}

func (eb *eventBus) Stats() Stats {
	return Stats{
		Published: eb.published.Load(),
		Dropped:   eb.dropped.Load(),
		Processed: eb.processed.Load(),
		Failed:    eb.failed.Load(),
	}
}

func (eb *eventBus) Shutdown(ctx context.Context) error {
	eb.logger.Info(ctx, "Shutting down event bus")

	if eb.cancel != nil {
		eb.cancel()
	}

	done := make(chan struct{})
	go func() {
		eb.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		eb.logger.Info(ctx, "Event bus shutdown complete",
			"stats", eb.Stats(),
		)
		return nil
	case <-ctx.Done():
		eb.logger.Warn(ctx, "Event bus shutdown timeout")
		return ctx.Err()
	}
}
