package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store used by tests and for running the server
// without Firebase credentials.
type MemStore struct {
	mu   sync.Mutex
	cols map[string]map[string]map[string]any
}

func NewMemStore() *MemStore {
	return &MemStore{cols: make(map[string]map[string]map[string]any)}
}

func (s *MemStore) col(path string) map[string]map[string]any {
	c, ok := s.cols[path]
	if !ok {
		c = make(map[string]map[string]any)
		s.cols[path] = c
	}
	return c
}

func (s *MemStore) List(_ context.Context, path string, q Query) ([]Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []Doc
	for id, data := range s.col(path) {
		docs = append(docs, Doc{ID: id, Data: copyMap(data)})
	}
	if q.OrderBy != "" {
		sort.Slice(docs, func(i, j int) bool {
			less := lessValue(docs[i].Data[q.OrderBy], docs[j].Data[q.OrderBy])
			if q.Desc {
				return !less && !equalValue(docs[i].Data[q.OrderBy], docs[j].Data[q.OrderBy])
			}
			return less
		})
	}
	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func (s *MemStore) Get(_ context.Context, path, id string) (*Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.col(path)[id]
	if !ok {
		return nil, nil
	}
	return &Doc{ID: id, Data: copyMap(data)}, nil
}

func (s *MemStore) Create(_ context.Context, path string, data map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.col(path)[id] = copyMap(data)
	return id, nil
}

func (s *MemStore) Set(_ context.Context, path, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.col(path)[id]
	if !ok {
		existing = make(map[string]any)
		s.col(path)[id] = existing
	}
	for k, v := range data {
		existing[k] = v
	}
	return nil
}

func (s *MemStore) Delete(_ context.Context, path, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.col(path), id)
	return nil
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return av < bv
	case float64:
		bv, _ := b.(float64)
		return av < bv
	case int:
		bv, _ := b.(int)
		return av < bv
	}
	return false
}

func equalValue(a, b any) bool {
	return !lessValue(a, b) && !lessValue(b, a)
}
