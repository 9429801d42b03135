// Package memory provides a mutex-guarded in-memory hrms.Store.
package memory

import (
	"context"
	"sync"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
)

// =============================================================================
// MEMORY STORE - Snapshot behind a RWMutex
// =============================================================================

type Store struct {
	mu    sync.RWMutex
	state hrms.Snapshot
}

// New returns a store holding a copy of initial.
func New(initial hrms.Snapshot) *Store {
	return &Store{state: initial.Clone()}
}

// Load returns a copy of the current state.
func (s *Store) Load(ctx context.Context) (hrms.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return hrms.Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), nil
}

// Update runs fn on a working copy and swaps it in when fn and Validate succeed.
// The write lock is held for the whole call, so updates are serialized.
func (s *Store) Update(ctx context.Context, fn func(*hrms.Snapshot) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.Clone()
	if err := fn(&working); err != nil {
		return err
	}
	if err := working.Validate(); err != nil {
		return err
	}
	s.state = working
	return nil
}

// Reset replaces the whole state.
func (s *Store) Reset(ctx context.Context, snap hrms.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := snap.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = snap.Clone()
	return nil
}

var _ hrms.Store = (*Store)(nil)
