package eventbus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/grachmannico95/codes-bot/pkg/retry"
)

const DefaultBatchTimeout = 3 * time.Second

type batchState struct {
	count int
	gen   int
	timer *time.Timer
}

// BatchNotificationConsumer counts processed files per user and, once the
// user has been idle for the batch timeout, sends one summary message when
// more than one file was processed.
type BatchNotificationConsumer struct {
	notifier    Notifier
	logger      *logger.Logger
	timeout     time.Duration
	workerCount int

	mu     sync.Mutex
	states map[string]*batchState
}

func NewBatchNotificationConsumer(notifier Notifier, log *logger.Logger, timeout time.Duration, workerCount int) *BatchNotificationConsumer {
	if timeout <= 0 {
		timeout = DefaultBatchTimeout
	}
	if workerCount < 1 {
		workerCount = 1
	}

	return &BatchNotificationConsumer{
		notifier:    notifier,
		logger:      log,
		timeout:     timeout,
		workerCount: workerCount,
		states:      make(map[string]*batchState),
	}
}

func (c *BatchNotificationConsumer) Consume(ctx context.Context, event Event) error {
	payload, ok := event.Payload.(FileProcessedEvent)
	if !ok {
		c.logger.Error(ctx, "Invalid payload type for file processed event",
			"event_id", event.ID,
		)
		return retry.Permanent(fmt.Errorf("invalid payload type %T", event.Payload))
	}

	if payload.UserID == "" {
		c.logger.Debug(ctx, "Anonymous upload, not batching",
			"event_id", event.ID,
		)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	state, exists := c.states[payload.UserID]
	if !exists {
		state = &batchState{}
		c.states[payload.UserID] = state
	}

	state.count++
	state.gen++
	if state.timer != nil {
		state.timer.Stop()
	}

	gen := state.gen
	userID := payload.UserID
	state.timer = time.AfterFunc(c.timeout, func() {
		c.flush(userID, gen)
	})

	c.logger.Debug(ctx, "File counted for batch",
		"event_id", event.ID,
		"batch_count", state.count,
	)

	return nil
}

func (c *BatchNotificationConsumer) flush(userID string, gen int) {
	c.mu.Lock()
	state, exists := c.states[userID]
	if !exists || state.gen != gen {
		// A newer upload re-armed the timer.
		c.mu.Unlock()
		return
	}
	count := state.count
	delete(c.states, userID)
	c.mu.Unlock()

	if count < 2 {
		return
	}

	ctx := logger.WithUserID(context.Background(), userID)
	message := fmt.Sprintf("Обработка завершена. Обработано файлов: %d", count)
	if err := c.notifier.Notify(ctx, userID, message); err != nil {
		c.logger.Error(ctx, "Failed to send batch notification",
			"count", count,
			"error", err,
		)
	}
}

// Pending returns the number of users with an open batch.
func (c *BatchNotificationConsumer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.states)
}

// Close stops every pending timer without notifying.
func (c *BatchNotificationConsumer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for userID, state := range c.states {
		if state.timer != nil {
			state.timer.Stop()
		}
		delete(c.states, userID)
	}
}

func (c *BatchNotificationConsumer) GetWorkerCount() int {
	return c.workerCount
}
