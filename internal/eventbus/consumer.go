package eventbus

import "context"

// Consumer handles events of the types it is subscribed to. A returned
// error is retried with backoff unless wrapped with retry.Permanent.
type Consumer interface {
	Consume(ctx context.Context, event Event) error
	// GetWorkerCount is the number of goroutines the bus runs for this consumer.
	GetWorkerCount() int
}
