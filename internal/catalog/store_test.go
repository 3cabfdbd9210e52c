package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/grachmannico95/codes-bot/internal/storage"
	"github.com/grachmannico95/codes-bot/mocks"
	"github.com/grachmannico95/codes-bot/pkg/cache"
	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testEntries = []domain.CatalogEntry{
	{Article: "G0418", Barcode: "4601234567890"},
	{Article: "TEST01", Barcode: "4600000000001"},
}

func newStore(t *testing.T, source domain.CatalogSource, strategy cache.Strategy[*Snapshot]) *Store {
	t.Helper()
	return NewStore(source, storage.NewMemoryIndex(), strategy, time.Hour, logger.NewNop())
}

func TestStore_LoadAndLookup(t *testing.T) {
	source := mocks.NewMockCatalogSource(t)
	source.EXPECT().
		ReadEntries(mock.Anything).
		Return(testEntries, nil).
		Once()

	store := newStore(t, source, cache.NewMemory[*Snapshot]())

	require.NoError(t, store.Load(context.Background()))

	barcode, ok := store.Barcode("G0418")
	assert.True(t, ok)
	assert.Equal(t, "4601234567890", barcode)

	_, ok = store.Barcode("NONEXISTENT")
	assert.False(t, ok)

	article, ok := store.Article("4600000000001")
	assert.True(t, ok)
	assert.Equal(t, "TEST01", article)

	assert.True(t, store.Contains("TEST01"))
	assert.Equal(t, 2, store.Size())
	assert.Equal(t, testEntries, store.Entries())
}

func TestStore_LoadWithinTTLDoesNotRereadSource(t *testing.T) {
	source := mocks.NewMockCatalogSource(t)
	source.EXPECT().
		ReadEntries(mock.Anything).
		Return(testEntries, nil).
		Once()

	store := newStore(t, source, cache.NewMemory[*Snapshot]())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Load(ctx))
	}
}

func TestStore_ConcurrentColdLoadReadsSourceOnce(t *testing.T) {
	release := make(chan struct{})
	source := mocks.NewMockCatalogSource(t)
	source.EXPECT().
		ReadEntries(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]domain.CatalogEntry, error) {
			<-release
			return testEntries, nil
		}).
		Once()

	store := newStore(t, source, cache.NewMemory[*Snapshot]())
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Load(ctx)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 2, store.Size())
}

func TestStore_RevalidateRereadsSource(t *testing.T) {
	source := mocks.NewMockCatalogSource(t)
	source.EXPECT().
		ReadEntries(mock.Anything).
		Return(testEntries, nil).
		Once()
	source.EXPECT().
		ReadEntries(mock.Anything).
		Return([]domain.CatalogEntry{{Article: "NEW", Barcode: "1"}}, nil).
		Once()

	store := newStore(t, source, cache.NewMemory[*Snapshot]())
	ctx := context.Background()

	require.NoError(t, store.Load(ctx))
	store.Revalidate()
	require.NoError(t, store.Load(ctx))

	assert.False(t, store.Contains("G0418"))
	assert.True(t, store.Contains("NEW"))
}

func TestStore_EmptyCatalogFails(t *testing.T) {
	source := mocks.NewMockCatalogSource(t)
	source.EXPECT().
		ReadEntries(mock.Anything).
		Return(nil, nil).
		Once()

	store := newStore(t, source, cache.NewMemory[*Snapshot]())

	err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogEmpty)
	assert.Equal(t, 0, store.Size())
}

func TestStore_SourceErrorKeepsPreviousIndex(t *testing.T) {
	readErr := errors.New("permission denied")
	source := mocks.NewMockCatalogSource(t)
	source.EXPECT().
		ReadEntries(mock.Anything).
		Return(testEntries, nil).
		Once()
	source.EXPECT().
		ReadEntries(mock.Anything).
		Return(nil, readErr).
		Once()

	store := newStore(t, source, cache.NewNoop[*Snapshot]())
	ctx := context.Background()

	require.NoError(t, store.Load(ctx))

	err := store.Load(ctx)
	assert.ErrorIs(t, err, readErr)
	assert.True(t, store.Contains("G0418"))
}

func TestStore_NoopStrategyRereadsEveryLoad(t *testing.T) {
	source := mocks.NewMockCatalogSource(t)
	source.EXPECT().
		ReadEntries(mock.Anything).
		Return(testEntries, nil).
		Times(3)

	store := newStore(t, source, cache.NewNoop[*Snapshot]())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Load(ctx))
	}
}

func TestStore_LoadOverlappingRevalidateKeepsNewestIndex(t *testing.T) {
	oldEntries := []domain.CatalogEntry{{Article: "OLD", Barcode: "1"}}
	newEntries := []domain.CatalogEntry{{Article: "NEW", Barcode: "2"}}

	started := make(chan struct{})
	release := make(chan struct{})

	source := mocks.NewMockCatalogSource(t)
	source.EXPECT().
		ReadEntries(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]domain.CatalogEntry, error) {
			close(started)
			<-release
			return oldEntries, nil
		}).
		Once()
	source.EXPECT().
		ReadEntries(mock.Anything).
		Return(newEntries, nil).
		Once()

	store := newStore(t, source, cache.NewMemory[*Snapshot]())
	ctx := context.Background()

	slow := make(chan error, 1)
	go func() {
		slow <- store.Load(ctx)
	}()
	<-started

	store.Revalidate()
	require.NoError(t, store.Load(ctx))
	require.True(t, store.Contains("NEW"))

	close(release)
	require.NoError(t, <-slow)

	assert.True(t, store.Contains("NEW"))
	assert.False(t, store.Contains("OLD"))

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Load(ctx))
	}
	assert.True(t, store.Contains("NEW"))
	assert.Equal(t, 1, store.Size())
}
