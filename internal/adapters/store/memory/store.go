// Package memory provides an in-process EntityStore. It keeps copies of
// every entity and maintains the secondary indexes incrementally.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EntityStore   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

type key struct {
	kind domain.Kind
	id   uint64
}

type indexKey struct {
	kind  domain.Kind
	index domain.Index
	value string
}

// Store is a concurrency-safe in-memory EntityStore.
type Store struct {
	mu      sync.RWMutex
	records map[key]domain.Entity
	indexes map[indexKey]map[uint64]struct{}
	claims  map[indexKey]uint64
	seq     map[domain.Kind]uint64
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		records: make(map[key]domain.Entity),
		indexes: make(map[indexKey]map[uint64]struct{}),
		claims:  make(map[indexKey]uint64),
		seq:     make(map[domain.Kind]uint64),
	}
}

// Get implements ports.EntityStore.
func (s *Store) Get(_ context.Context, kind domain.Kind, id uint64) (domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.records[key{kind: kind, id: id}]
	if !ok {
		return nil, fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	return e.Clone(), nil
}

// Put implements ports.EntityStore.
func (s *Store) Put(_ context.Context, e domain.Entity, expectedVersion uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{kind: e.Kind(), id: e.Meta().ID}
	current, exists := s.records[k]

	var version uint64
	if exists {
		version = current.Meta().Version
	}
	if version != expectedVersion {
		return fmt.Errorf("%s %d: %w: stored version %d, expected %d",
			k.kind, k.id, domain.ErrConflict, version, expectedVersion)
	}
	claims := domain.ClaimsOf(e)
	for idx, value := range claims {
		if holder, held := s.claims[indexKey{kind: k.kind, index: idx, value: value}]; held && holder != k.id {
			return fmt.Errorf("%s %d: %w: %s %q is claimed by %s %d",
				k.kind, k.id, domain.ErrAlreadyExists, idx, value, k.kind, holder)
		}
	}

	if exists {
		s.unindex(current)
		s.release(current)
	}
	for idx, value := range claims {
		s.claims[indexKey{kind: k.kind, index: idx, value: value}] = k.id
	}
	e.Meta().Version = expectedVersion + 1
	stored := e.Clone()
	s.records[k] = stored
	s.index(stored)
	if k.id > s.seq[k.kind] {
		s.seq[k.kind] = k.id
	}
	return nil
}

// NextID implements ports.EntityStore.
func (s *Store) NextID(_ context.Context, kind domain.Kind) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq[kind]++
	return s.seq[kind], nil
}

// ListByIndex implements ports.EntityStore.
func (s *Store) ListByIndex(_ context.Context, kind domain.Kind, index domain.Index, value string) ([]domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint64, 0, len(s.indexes[indexKey{kind: kind, index: index, value: value}]))
	for id := range s.indexes[indexKey{kind: kind, index: index, value: value}] {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]domain.Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.records[key{kind: kind, id: id}].Clone())
	}
	return out, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "entity-store" }

// HealthCheck implements ports.HealthChecker. The in-memory store is always
// available.
func (s *Store) HealthCheck(_ context.Context) error { return nil }

func (s *Store) index(e domain.Entity) {
	for idx, value := range e.Indexes() {
		if value == "" {
			continue
		}
		ik := indexKey{kind: e.Kind(), index: idx, value: value}
		set, ok := s.indexes[ik]
		if !ok {
			set = make(map[uint64]struct{})
			s.indexes[ik] = set
		}
		set[e.Meta().ID] = struct{}{}
	}
}

func (s *Store) release(e domain.Entity) {
	for idx, value := range domain.ClaimsOf(e) {
		ik := indexKey{kind: e.Kind(), index: idx, value: value}
		if s.claims[ik] == e.Meta().ID {
			delete(s.claims, ik)
		}
	}
}

func (s *Store) unindex(e domain.Entity) {
	for idx, value := range e.Indexes() {
		ik := indexKey{kind: e.Kind(), index: idx, value: value}
		if set, ok := s.indexes[ik]; ok {
			delete(set, e.Meta().ID)
			if len(set) == 0 {
				delete(s.indexes, ik)
			}
		}
	}
}
