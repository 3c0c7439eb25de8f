package enrollment

import (
	"context"
	"sync"

	sharederrors "github.com/usersync/user-lifecycle/shared-libs/errors"
)

// MemoryRepository keeps records in process memory. Intended for local invoke runs and tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]Record)}
}

func (r *MemoryRepository) Put(_ context.Context, record Record) error {
	if record.UserID == "" {
		return sharederrors.Malformed("put record", ErrMissingUserID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.UserID] = record
	return nil
}

// Get returns the stored record for userID.
func (r *MemoryRepository) Get(userID string) (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[userID]
	return record, ok
}

// Len reports how many records are stored.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
