package catalog

import "github.com/Irina-Na/ai-stylist/internal/domain"

// Store holds the immutable catalog snapshot, loaded once per process.
// Rows are de-duplicated and normalized by the loader; matching treats the
// snapshot as read-only for the lifetime of every request.
type Store struct {
	rows []domain.CatalogRow
}

// NewStore wraps an already-cleaned row slice
func NewStore(rows []domain.CatalogRow) *Store {
	return &Store{rows: rows}
}

// Rows returns the catalog snapshot. Callers must not mutate it.
func (s *Store) Rows() []domain.CatalogRow {
	return s.rows
}

// Size returns the number of rows in the snapshot
func (s *Store) Size() int {
	return len(s.rows)
}
