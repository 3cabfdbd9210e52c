package cache

import (
	"context"
	"time"
)

// Noop calls the producer on every Fetch. Useful in development, where the
// catalog file is edited between requests.
type Noop[T any] struct{}

func NewNoop[T any]() *Noop[T] {
	return &Noop[T]{}
}

func (n *Noop[T]) Fetch(ctx context.Context, key string, produce Producer[T], ttl time.Duration) (T, error) {
	return produce(ctx)
}

func (n *Noop[T]) Revalidate(key string) {}

func (n *Noop[T]) Name() string {
	return StrategyNone
}
