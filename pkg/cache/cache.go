// Package cache provides keyed, TTL-bounded memoization of expensive loads.
package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	StrategyMemory = "memory"
	StrategyNone   = "none"
)

// Producer computes the value for a key on a cache miss.
type Producer[T any] func(ctx context.Context) (T, error)

// Strategy is a memoized fetch keyed by string.
type Strategy[T any] interface {
	// Fetch returns the cached value for key while it is fresh, otherwise
	// calls produce. A zero or negative ttl is never fresh.
	Fetch(ctx context.Context, key string, produce Producer[T], ttl time.Duration) (T, error)
	// Revalidate evicts key so the next Fetch recomputes.
	Revalidate(key string)
	Name() string
}

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithClock replaces time.Now, used to drive expiry in tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New builds the strategy registered under name.
func New[T any](name string, opts ...Option) (Strategy[T], error) {
	switch name {
	case StrategyMemory, "":
		return NewMemory[T](opts...), nil
	case StrategyNone:
		return NewNoop[T](), nil
	default:
		return nil, fmt.Errorf("unknown cache strategy %q", name)
	}
}
