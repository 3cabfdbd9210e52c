// Package catalog loads the article/barcode reference workbook and answers
// lookups against it.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/grachmannico95/codes-bot/pkg/cache"
	"github.com/grachmannico95/codes-bot/pkg/logger"
)

const (
	CacheKey   = "catalog"
	DefaultTTL = 8 * time.Hour
)

// Snapshot is one successful read of the catalog source.
type Snapshot struct {
	Entries  []domain.CatalogEntry
	LoadedAt time.Time

	// seq orders snapshots by the start of their source read.
	seq uint64
}

type Store struct {
	source    domain.CatalogSource
	index     domain.CatalogIndex
	cache     cache.Strategy[*Snapshot]
	ttl       time.Duration
	logger    *logger.Logger
	reads     atomic.Uint64

	mu        sync.Mutex
	published *Snapshot
}

func NewStore(
	source domain.CatalogSource,
	index domain.CatalogIndex,
	strategy cache.Strategy[*Snapshot],
	ttl time.Duration,
	log *logger.Logger,
) *Store {
	return &Store{
		source: source,
		index:  index,
		cache:  strategy,
		ttl:    ttl,
		logger: log,
	}
}

// Load makes sure the index reflects a fresh catalog snapshot. Within the
// cache TTL it does not touch the source.
func (s *Store) Load(ctx context.Context) error {
	snapshot, err := s.cache.Fetch(ctx, CacheKey, s.read, s.ttl)
	if err != nil {
		return err
	}

	s.publish(ctx, snapshot)
	return nil
}

// publish installs snapshot into the index unless the same or a newer read
// is already there. A load that started before a Revalidate can finish after
// the reload it raced with; its snapshot is dropped.
func (s *Store) publish(ctx context.Context, snapshot *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.published != nil && snapshot.seq <= s.published.seq {
		return
	}

	s.index.Replace(snapshot.Entries)
	s.published = snapshot
	s.logger.Info(ctx, "Catalog index published",
		"entries", len(snapshot.Entries),
		"loaded_at", snapshot.LoadedAt,
	)
}

func (s *Store) read(ctx context.Context) (*Snapshot, error) {
	s.logger.Info(ctx, "Reading catalog source")
	start := time.Now()
	seq := s.reads.Add(1)

	entries, err := s.source.ReadEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("read catalog: %w", domain.ErrCatalogEmpty)
	}

	s.logger.Info(ctx, "Catalog source read",
		"entries", len(entries),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Snapshot{Entries: entries, LoadedAt: time.Now(), seq: seq}, nil
}

// Revalidate drops the cached snapshot; the next Load rereads the source.
func (s *Store) Revalidate() {
	s.cache.Revalidate(CacheKey)
}

func (s *Store) Barcode(article string) (string, bool) {
	return s.index.Barcode(article)
}

func (s *Store) Article(barcode string) (string, bool) {
	return s.index.Article(barcode)
}

func (s *Store) Contains(article string) bool {
	return s.index.Contains(article)
}

func (s *Store) Entries() []domain.CatalogEntry {
	return s.index.Entries()
}

func (s *Store) Size() int {
	return s.index.Len()
}
