package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/dijkstep/config"
	"github.com/katalvlaran/dijkstep/core"
)

// ErrSessionNotFound is returned by stores and the Manager for unknown ids.
var ErrSessionNotFound = errors.New("session: not found")

// Record is the persisted state of one replay.
type Record struct {
	ID         uuid.UUID         `json:"id"`
	Definition config.Definition `json:"definition"`
	Start      int               `json:"start"`
	Cursor     int               `json:"cursor"`
	CreatedAt  time.Time         `json:"created_at"`
}

// clone copies the edge slice so stores never share it with callers.
func (r Record) clone() Record {
	if r.Definition.Edges != nil {
		r.Definition.Edges = append([]core.Edge(nil), r.Definition.Edges...)
	}
	return r
}

// Store persists records.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Load(ctx context.Context, id uuid.UUID) (Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]uuid.UUID, error)
}

// MemoryStore implements Store in memory. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[uuid.UUID]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[uuid.UUID]Record)}
}

// Save stores a copy of rec.
func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[rec.ID] = rec.clone()
	return nil
}

// Load returns a copy of the record for id.
func (s *MemoryStore) Load(_ context.Context, id uuid.UUID) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[id]
	if !ok {
		return Record{}, ErrSessionNotFound
	}
	return rec.clone(), nil
}

// Delete removes id. Unknown ids are not an error.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns all ids, oldest session first.
func (s *MemoryStore) List(_ context.Context) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]Record, 0, len(s.data))
	for _, rec := range s.data {
		recs = append(recs, rec)
	}
	slices.SortFunc(recs, func(a, b Record) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})

	ids := make([]uuid.UUID, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID
	}
	return ids, nil
}
