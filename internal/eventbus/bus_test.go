package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/grachmannico95/codes-bot/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConsumer struct {
	mu        sync.Mutex
	events    []Event
	failures  int
	permanent bool
	calls     int
}

func (c *recordingConsumer) Consume(ctx context.Context, event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
	if c.permanent {
		return retry.Permanent(errors.New("bad event"))
	}
	if c.failures > 0 {
		c.failures--
		return errors.New("temporary failure")
	}
	c.events = append(c.events, event)
	return nil
}

func (c *recordingConsumer) GetWorkerCount() int {
	return 2
}

func (c *recordingConsumer) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func (c *recordingConsumer) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestEventBus_DeliversPublishedEvents(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 10, MaxRetries: 3, RetryDelay: time.Millisecond})
	consumer := &recordingConsumer{failures: 1}

	require.NoError(t, bus.Subscribe(EventTypeFileProcessed, consumer))
	require.NoError(t, bus.Start(context.Background()))
	defer bus.Shutdown(context.Background())

	for i := 0; i < 3; i++ {
		err := bus.Publish(context.Background(), Event{
			ID:      "evt",
			Type:    EventTypeFileProcessed,
			Payload: FileProcessedEvent{UserID: "42"},
		})
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool { return consumer.count() == 3 }, 2*time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return bus.Stats().Processed == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(3), bus.Stats().Published)
}

func TestEventBus_PermanentFailureIsNotRetried(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 10, MaxRetries: 5, RetryDelay: time.Millisecond})
	consumer := &recordingConsumer{permanent: true}

	require.NoError(t, bus.Subscribe(EventTypeFileProcessed, consumer))
	require.NoError(t, bus.Start(context.Background()))
	defer bus.Shutdown(context.Background())

	require.NoError(t, bus.Publish(context.Background(), Event{Type: EventTypeFileProcessed}))

	assert.Eventually(t, func() bool { return bus.Stats().Failed == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, consumer.callCount())
}

func TestEventBus_PublishWithoutSubscriberIsDiscarded(t *testing.T) {
	bus := New(logger.NewNop(), nil)

	err := bus.Publish(context.Background(), Event{Type: EventTypeFileProcessed})
	assert.NoError(t, err)
	assert.Equal(t, Stats{}, bus.Stats())
}

func TestEventBus_FullQueueDropsEvent(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 1, MaxRetries: 1})
	require.NoError(t, bus.Subscribe(EventTypeFileProcessed, &recordingConsumer{}))

	// Not started, so nothing drains the queue.
	require.NoError(t, bus.Publish(context.Background(), Event{Type: EventTypeFileProcessed}))
	err := bus.Publish(context.Background(), Event{Type: EventTypeFileProcessed})

	assert.ErrorIs(t, err, ErrEventDropped)
	assert.Equal(t, Stats{Published: 1, Dropped: 1}, bus.Stats())
}

func TestEventBus_SubscribeAfterStartFails(t *testing.T) {
	bus := New(logger.NewNop(), nil)
	require.NoError(t, bus.Start(context.Background()))
	defer bus.Shutdown(context.Background())

	assert.Error(t, bus.Subscribe(EventTypeFileProcessed, &recordingConsumer{}))
}

func TestEventBus_ShutdownStopsWorkers(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 1, MaxRetries: 1})
	require.NoError(t, bus.Subscribe(EventTypeFileProcessed, &recordingConsumer{}))
	require.NoError(t, bus.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, bus.Shutdown(ctx))
}
