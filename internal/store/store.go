// Package store is an in-memory, thread-safe record of optimization
// results. It replaces ambient process-global state with an explicit
// dependency that callers construct and inject.
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/signalsfoundry/passplan/model"
)

// Status tracks what operators did with a stored result.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApplied   Status = "applied"
	StatusDismissed Status = "dismissed"
)

// Record wraps one optimization result with its review lifecycle.
type Record struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Status    Status
	Notes     string
	Result    *model.Result
}

// Store holds records keyed by UUID. The zero value is not usable; call
// NewStore.
type Store struct {
	mu      sync.RWMutex
	records map[string]Record
	now     func() time.Time
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]Record),
		now:     time.Now,
	}
}

// Put stores a result as a new pending record and returns it.
func (s *Store) Put(result *model.Result) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec := Record{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Status:    StatusPending,
		Result:    result,
	}
	s.records[rec.ID] = rec
	return rec
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	return rec, ok
}

// List returns all records ordered by creation time, oldest first.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// SetStatus transitions a record's lifecycle state and attaches optional
// reviewer notes.
func (s *Store) SetStatus(id string, status Status, notes string) error {
	switch status {
	case StatusPending, StatusApplied, StatusDismissed:
	default:
		return fmt.Errorf("unknown record status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return fmt.Errorf("record %q not found", id)
	}
	rec.Status = status
	if notes != "" {
		rec.Notes = notes
	}
	rec.UpdatedAt = s.now()
	s.records[id] = rec
	return nil
}

// Delete removes a record, reporting whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	return true
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
