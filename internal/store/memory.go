package store

import (
	"errors"
	"sync"
	"time"

	"github.com/Zachdehooge/temperature-heatmap/internal/fetcher"
	"github.com/Zachdehooge/temperature-heatmap/internal/generator"
)

var (
	// ErrNotFound is returned before the first successful render.
	ErrNotFound = errors.New("no heat map rendered yet")
)

// Render is one complete, successful render of the dataset.
type Render struct {
	Dataset    *fetcher.Dataset
	Chart      *generator.Chart
	Page       []byte
	SVG        []byte
	RenderedAt time.Time
}

// Status reports the outcome of the most recent refresh attempts.
type Status struct {
	LastSuccess         time.Time
	LastFailure         time.Time
	LastError           string
	ConsecutiveFailures int
}

// MemoryStore is a concurrency-safe holder of the latest render. A failed
// refresh never replaces a good render.
type MemoryStore struct {
	mu sync.RWMutex

	latest *Render
	status Status
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the latest render and clears the failure streak.
func (s *MemoryStore) Save(r Render) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = &r
	s.status.LastSuccess = r.RenderedAt
	s.status.ConsecutiveFailures = 0
}

// RecordFailure notes a failed refresh without touching the latest render.
func (s *MemoryStore) RecordFailure(at time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.LastFailure = at
	s.status.LastError = err.Error()
	s.status.ConsecutiveFailures++
}

// Latest returns the most recent successful render.
func (s *MemoryStore) Latest() (Render, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return Render{}, ErrNotFound
	}
	return *s.latest, nil
}

// Status returns the refresh status.
func (s *MemoryStore) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
