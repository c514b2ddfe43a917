package feedback

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

var csvHeader = []string{"id", "user_query", "selected_look", "comment", "created_at"}

// CSVStore is an append-only feedback store backed by a CSV file. It is
// caller-owned and passed explicitly to whoever needs it; nothing in the
// matching core knows it exists.
type CSVStore struct {
	path    string
	mutex   sync.Mutex
	entries []domain.FeedbackEntry
}

// Open loads existing feedback from path, creating the file with a header
// when it does not exist yet.
func Open(path string) (*CSVStore, error) {
	store := &CSVStore{path: path}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		if err := store.writeHeader(); err != nil {
			return nil, err
		}
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open feedback file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read feedback file: %w", err)
	}

	for i, record := range records {
		if i == 0 || len(record) < 5 {
			continue
		}
		createdAt, _ := time.Parse(time.RFC3339, record[4])
		store.entries = append(store.entries, domain.FeedbackEntry{
			ID:           record[0],
			UserQuery:    record[1],
			SelectedLook: record[2],
			Comment:      record[3],
			CreatedAt:    createdAt,
		})
	}

	return store, nil
}

// Append assigns the entry an id and timestamp when missing and persists it.
func (s *CSVStore) Append(ctx context.Context, entry domain.FeedbackEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open feedback file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		entry.ID,
		entry.UserQuery,
		entry.SelectedLook,
		entry.Comment,
		entry.CreatedAt.Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("write feedback record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush feedback record: %w", err)
	}

	s.entries = append(s.entries, entry)
	return nil
}

// All returns a copy of every stored entry
func (s *CSVStore) All(ctx context.Context) ([]domain.FeedbackEntry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make([]domain.FeedbackEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// writeHeader creates the file with the CSV header row.
func (s *CSVStore) writeHeader() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create feedback file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write feedback header: %w", err)
	}
	w.Flush()
	return w.Error()
}
