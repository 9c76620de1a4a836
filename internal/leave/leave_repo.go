package leave

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrRecordNotFound = errors.New("leave record not found")
	ErrDuplicateID    = errors.New("leave record id already exists")
)

// Repository is the record store behind the service. The in-memory
// implementation is the only one shipped; anything persistent has to keep
// the most-recent-first ordering of List.
//
//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	// List returns every record, most recent first.
	List(ctx context.Context) ([]LeaveRecord, error)
	FindByID(ctx context.Context, id string) (*LeaveRecord, error)
	// Create prepends r. It fails with ErrDuplicateID if r.ID is taken.
	Create(ctx context.Context, r *LeaveRecord) error
	// Delete removes the record with id and reports whether one existed.
	Delete(ctx context.Context, id string) (bool, error)
}

type memoryRepository struct {
	mu      sync.RWMutex
	records []LeaveRecord
}

// NewMemoryRepository returns a store holding seed in the given order.
func NewMemoryRepository(seed ...LeaveRecord) Repository {
	records := make([]LeaveRecord, len(seed))
	copy(records, seed)
	return &memoryRepository{records: records}
}

func (r *memoryRepository) List(ctx context.Context) ([]LeaveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]LeaveRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*LeaveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		rec := r.records[i]
		return &rec, nil
	}
	return nil, ErrRecordNotFound
}

func (r *memoryRepository) Create(ctx context.Context, rec *LeaveRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(rec.ID) >= 0 {
		return ErrDuplicateID
	}
	r.records = append([]LeaveRecord{*rec}, r.records...)
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.records = append(r.records[:i:i], r.records[i+1:]...)
	return true, nil
}

// indexOf must be called with mu held.
func (r *memoryRepository) indexOf(id string) int {
	for i := range r.records {
		if r.records[i].ID == id {
			return i
		}
	}
	return -1
}
