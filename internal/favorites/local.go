package favorites

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
)

const localKeyPrefix = "favorites:" // favorites:{session_id} -> JSON array

// localStore keeps an anonymous session's favorites as one JSON array under
// a single key, mirroring the browser's local-storage record. Every
// operation reads the whole array; membership is linear search by id.
type localStore struct {
	rdb *redis.Client
	key string
}

func newLocal(rdb *redis.Client, sessionID string) *localStore {
	return &localStore{rdb: rdb, key: localKeyPrefix + sessionID}
}

func (s *localStore) load(ctx context.Context) ([]domain.Bhajan, error) {
	raw, err := s.rdb.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return []domain.Bhajan{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	var items []domain.Bhajan
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	return items, nil
}

func (s *localStore) save(ctx context.Context, items []domain.Bhajan) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, b, 0).Err(); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

func (s *localStore) IsFavorite(ctx context.Context, bhajanID string) (bool, error) {
	items, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	for _, b := range items {
		if b.ID == bhajanID {
			return true, nil
		}
	}
	return false, nil
}

func (s *localStore) List(ctx context.Context) ([]domain.Bhajan, error) {
	return s.load(ctx)
}

func (s *localStore) Toggle(ctx context.Context, b domain.Bhajan) (bool, error) {
	items, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	for i, e := range items {
		if e.ID == b.ID {
			items = append(items[:i], items[i+1:]...)
			return false, s.save(ctx, items)
		}
	}
	items = append(items, b)
	return true, s.save(ctx, items)
}

// ClearAll replaces the whole array in one write.
func (s *localStore) ClearAll(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}
