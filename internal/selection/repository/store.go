// Package repository persists selection state per session id.
package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"station_lookup_backend/internal/selection/domain"
	"station_lookup_backend/platform/apperr"
)

// Store holds selection state by session id. Get and Delete return an apperr
// NotFound error for unknown or expired sessions. Save refreshes the TTL.
type Store interface {
	Get(ctx context.Context, id string) (*domain.State, error)
	Save(ctx context.Context, id string, st *domain.State) error
	Delete(ctx context.Context, id string) error
}

func sessionNotFound(op string) error {
	return apperr.NotFound("selection session not found").WithOp(op)
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemoryStore keeps sessions in process memory. Entries are stored encoded
// so callers never share state with the store.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.State, error) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	if ok && !s.now().Before(entry.expires) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, sessionNotFound("selection.MemoryStore.Get")
	}

	var st domain.State
	if err := json.Unmarshal(entry.data, &st); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "decode selection state", err)
	}
	return &st, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, st *domain.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "encode selection state", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)
	s.entries[id] = memoryEntry{data: data, expires: now.Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	delete(s.entries, id)
	if !ok || !s.now().Before(entry.expires) {
		return sessionNotFound("selection.MemoryStore.Delete")
	}
	return nil
}

// evictExpired drops expired entries. Callers must hold mu.
func (s *MemoryStore) evictExpired(now time.Time) {
	for id, entry := range s.entries {
		if !now.Before(entry.expires) {
			delete(s.entries, id)
		}
	}
}

var _ Store = (*MemoryStore)(nil)
