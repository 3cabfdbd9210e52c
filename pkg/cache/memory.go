package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[T any] struct {
	data      T
	timestamp time.Time
	ttl       time.Duration
}

func (e entry[T]) fresh(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.timestamp) < e.ttl
}

// Memory keeps values in process memory. Concurrent misses on the same key
// share a single producer call.
type Memory[T any] struct {
	mu          sync.RWMutex
	entries     map[string]entry[T]
	generations map[string]uint64
	group       singleflight.Group
	now         func() time.Time
}

func NewMemory[T any](opts ...Option) *Memory[T] {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	return &Memory[T]{
		entries:     make(map[string]entry[T]),
		generations: make(map[string]uint64),
		now:         o.now,
	}
}

func (m *Memory[T]) Fetch(ctx context.Context, key string, produce Producer[T], ttl time.Duration) (T, error) {
	if data, ok := m.lookup(key); ok {
		return data, nil
	}

	v, err, _ := m.group.Do(key, func() (interface{}, error) {
		// A flight that finished between lookup and Do has already stored it.
		if data, ok := m.lookup(key); ok {
			return data, nil
		}

		gen := m.generation(key)

		// Waiters share this call, so one caller's cancellation must not fail the rest.
		data, err := produce(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		if m.generations[key] == gen {
			m.entries[key] = entry[T]{data: data, timestamp: m.now(), ttl: ttl}
		}
		m.mu.Unlock()

		return data, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	data, _ := v.(T)
	return data, nil
}

// Revalidate drops the entry and the in-flight marker for key. A flight
// started before the call still returns to its waiters but is not stored.
func (m *Memory[T]) Revalidate(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.generations[key]++
	m.mu.Unlock()

	m.group.Forget(key)
}

func (m *Memory[T]) Clear() {
	m.mu.Lock()
	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	m.mu.Unlock()

	for _, key := range keys {
		m.Revalidate(key)
	}
}

type Stats struct {
	Size int
	Keys []string
}

func (m *Memory[T]) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return Stats{Size: len(keys), Keys: keys}
}

func (m *Memory[T]) Name() string {
	return StrategyMemory
}

func (m *Memory[T]) lookup(key string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok || !e.fresh(m.now()) {
		var zero T
		return zero, false
	}
	return e.data, true
}

func (m *Memory[T]) generation(key string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generations[key]
}
