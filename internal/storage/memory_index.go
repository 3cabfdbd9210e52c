package storage

import (
	"sort"
	"sync"

	"github.com/grachmannico95/codes-bot/internal/domain"
)

// MemoryIndex is the in-memory catalog index. The map is never mutated after
// publication; Replace builds a new one and swaps it in.
type MemoryIndex struct {
	barcodes map[string]string
	mu       sync.RWMutex
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		barcodes: make(map[string]string),
	}
}

func (s *MemoryIndex) Replace(entries []domain.CatalogEntry) {
	next := make(map[string]string, len(entries))
	for _, e := range entries {
		next[e.Article] = e.Barcode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.barcodes = next
}

func (s *MemoryIndex) Barcode(article string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	barcode, ok := s.barcodes[article]
	return barcode, ok
}

// Article is a linear scan; catalogs hold at most a few thousand rows.
// When several articles share a barcode the smallest article wins.
func (s *MemoryIndex) Article(barcode string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := ""
	for article, bc := range s.barcodes {
		if bc == barcode && (found == "" || article < found) {
			found = article
		}
	}

	return found, found != ""
}

func (s *MemoryIndex) Contains(article string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.barcodes[article]
	return ok
}

// Entries returns a snapshot sorted by article.
func (s *MemoryIndex) Entries() []domain.CatalogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.CatalogEntry, 0, len(s.barcodes))
	for article, barcode := range s.barcodes {
		entries = append(entries, domain.CatalogEntry{Article: article, Barcode: barcode})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Article < entries[j].Article
	})

	return entries
}

func (s *MemoryIndex) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.barcodes)
}
