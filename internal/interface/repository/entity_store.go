package repository

import (
	"errors"
	"sync"
)

var errIDOccupied = errors.New("identifier already occupied")

// entityStore is a keyed container for one entity type. Identifiers come from a
// counter that starts at 1 and only grows, so they are never reused.
// Records are cloned on the way in and on the way out; nothing outside the
// store holds memory a stored record points at.
type entityStore[T any] struct {
	mu      sync.RWMutex
	lastID  int64
	order   []int64
	records map[int64]T
	clone   func(T) T
}

func newEntityStore[T any](clone func(T) T) *entityStore[T] {
	return &entityStore[T]{
		records: make(map[int64]T),
		clone:   clone,
	}
}

// nextID issues an identifier greater than every one issued before
func (s *entityStore[T]) nextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	return s.lastID
}

// insert stores rec under id. It only fails when id is already taken.
func (s *entityStore[T]) insert(id int64, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; exists {
		return errIDOccupied
	}
	if id > s.lastID {
		s.lastID = id
	}
	s.records[id] = s.clone(rec)
	s.order = append(s.order, id)
	return nil
}

// create assigns the next identifier, lets build produce the record and stores it
func (s *entityStore[T]) create(build func(id int64) T) (*T, error) {
	id := s.nextID()
	rec := build(id)
	if err := s.insert(id, rec); err != nil {
		return nil, err
	}
	out := s.clone(rec)
	return &out, nil
}

func (s *entityStore[T]) get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return rec, false
	}
	return s.clone(rec), true
}

// update replaces the record with merge(old) in one critical section
func (s *entityStore[T]) update(id int64, merge func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		var zero T
		return zero, false
	}
	rec = merge(s.clone(rec))
	s.records[id] = rec
	return s.clone(rec), true
}

// list returns every record in insertion order
func (s *entityStore[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.clone(s.records[id]))
	}
	return out
}

// filter returns the records matching pred, preserving insertion order
func (s *entityStore[T]) filter(pred func(T) bool) []T {
	out := []T{}
	for _, rec := range s.list() {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// find returns the first record matching pred
func (s *entityStore[T]) find(pred func(T) bool) (T, bool) {
	for _, rec := range s.list() {
		if pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

func (s *entityStore[T]) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
