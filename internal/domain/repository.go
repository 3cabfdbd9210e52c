package domain

import "context"

// CatalogSource reads every accepted catalog row from the backing workbook.
type CatalogSource interface {
	ReadEntries(ctx context.Context) ([]CatalogEntry, error)
}

// CatalogIndex is the in-memory article -> barcode mapping. Replace swaps the
// whole mapping at once; readers never observe a partially built index.
type CatalogIndex interface {
	Replace(entries []CatalogEntry)
	Barcode(article string) (string, bool)
	Article(barcode string) (string, bool)
	Contains(article string) bool
	Entries() []CatalogEntry
	Len() int
}
