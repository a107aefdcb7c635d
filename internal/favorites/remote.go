package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/repository"
)

// addedAtLayout is fixed-width so the stored strings compare the same way
// the instants do. RFC3339Nano trims trailing zeros, which breaks
// lexicographic ordering across fractional seconds.
const addedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// remoteStore keeps one snapshot document per favorited bhajan under
// users/{uid}/favorites/{bhajan_id}. The document is a denormalized copy of
// the bhajan plus an addedAt timestamp, not a reference.
type remoteStore struct {
	store repository.Store
	path  string

	now func() time.Time
}

func newRemote(store repository.Store, uid string) *remoteStore {
	return &remoteStore{
		store: store,
		path:  "users/" + uid + "/favorites",
		now:   time.Now,
	}
}

func (s *remoteStore) IsFavorite(ctx context.Context, bhajanID string) (bool, error) {
	if s.store == nil {
		return false, nil
	}
	doc, err := s.store.Get(ctx, s.path, bhajanID)
	if err != nil {
		return false, err
	}
	return doc != nil, nil
}

func (s *remoteStore) List(ctx context.Context) ([]domain.Bhajan, error) {
	if s.store == nil {
		return []domain.Bhajan{}, nil
	}
	docs, err := s.store.List(ctx, s.path, repository.Query{OrderBy: "addedAt", Desc: true})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Bhajan, 0, len(docs))
	for _, d := range docs {
		b, err := decodeSnapshot(d)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *remoteStore) Toggle(ctx context.Context, b domain.Bhajan) (bool, error) {
	if s.store == nil {
		return false, domain.ErrNotInitialized
	}
	doc, err := s.store.Get(ctx, s.path, b.ID)
	if err != nil {
		return false, err
	}
	if doc != nil {
		if err := s.store.Delete(ctx, s.path, b.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	snap, err := encodeSnapshot(b)
	if err != nil {
		return false, err
	}
	snap["addedAt"] = s.now().UTC().Format(addedAtLayout)
	if err := s.store.Set(ctx, s.path, b.ID, snap); err != nil {
		return false, err
	}
	return true, nil
}

// ClearAll issues one independent delete per favorite, concurrently. There
// is no batch: a failure leaves an arbitrary subset removed, and only a
// subsequent List shows what survived.
func (s *remoteStore) ClearAll(ctx context.Context) error {
	items, err := s.List(ctx)
	if err != nil {
		return err
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, b := range items {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := s.store.Delete(ctx, s.path, id); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(b.ID)
	}
	wg.Wait()
	return firstErr
}

func encodeSnapshot(b domain.Bhajan) (map[string]any, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encode favorite: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode favorite: %w", err)
	}
	delete(m, "id")
	return m, nil
}

func decodeSnapshot(d repository.Doc) (domain.Bhajan, error) {
	var b domain.Bhajan
	m := make(map[string]any, len(d.Data)+1)
	for k, v := range d.Data {
		m[k] = v
	}
	m["id"] = d.ID
	delete(m, "addedAt")
	raw, err := json.Marshal(m)
	if err != nil {
		return b, fmt.Errorf("encode favorite %s: %w", d.ID, err)
	}
	if err := json.Unmarshal(raw, &b); err != nil {
		return b, fmt.Errorf("decode favorite %s: %w", d.ID, err)
	}
	return b, nil
}
