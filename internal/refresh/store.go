// Package refresh owns the process-wide data snapshot and the polling cycle
// that replaces it.
package refresh

import (
	"sync"
	"time"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

// Snapshot is the immutable result of one successful refresh cycle. It is
// replaced wholesale and never mutated, so readers always see an internally
// consistent view.
type Snapshot struct {
	ReserveOrders []domain.ReserveOrder
	GPRecords     []domain.GPRecord
	Orders        []domain.CombinedOrder
	FetchedAt     time.Time
}

// Store holds the current snapshot plus the loading/error state. All state
// transitions happen under one lock, as a single replace.
type Store struct {
	mu        sync.RWMutex
	snap      *Snapshot
	status    domain.SnapshotStatus
	lastError string
}

func NewStore() *Store {
	return &Store{status: domain.StatusLoading}
}

// Replace installs a fresh snapshot and clears any previous error.
func (s *Store) Replace(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.status = domain.StatusReady
	s.lastError = ""
}

// Fail records a cycle failure. A previously installed snapshot stays in
// place (stale but available); before the first success there is simply no
// data.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = domain.StatusStaleError
	s.lastError = err.Error()
}

// Current returns the latest snapshot, or nil before the first successful
// cycle.
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Status returns the loading/error/last-updated tuple.
func (s *Store) Status() domain.StatusInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := domain.StatusInfo{
		Status:    s.status,
		HasData:   s.snap != nil,
		LastError: s.lastError,
	}
	if s.snap != nil {
		t := s.snap.FetchedAt
		info.LastUpdated = &t
	}
	return info
}
