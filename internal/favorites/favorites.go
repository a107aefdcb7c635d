// Package favorites manages a user's favorite bhajans. Anonymous sessions
// keep a single serialized array in the key-value store; authenticated users
// keep one snapshot document per favorite under their user document. The two
// sets are disjoint: locally stored favorites are not migrated when the user
// signs in.
package favorites

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/repository"
)

// Favorites is the favorite-set contract shared by both storage modes.
type Favorites interface {
	IsFavorite(ctx context.Context, bhajanID string) (bool, error)
	// List returns full snapshots; authenticated sets come back most
	// recently added first, anonymous sets in insertion order.
	List(ctx context.Context) ([]domain.Bhajan, error)
	// Toggle removes the bhajan when present and adds a full snapshot when
	// absent, reporting the resulting membership.
	Toggle(ctx context.Context, b domain.Bhajan) (bool, error)
	ClearAll(ctx context.Context) error
}

// Identity selects the storage mode. UID wins when both are set.
type Identity struct {
	UID       string
	SessionID string
}

// ForIdentity returns the favorite set for the given identity: remote
// (document store) when authenticated, local (key-value store) otherwise.
func ForIdentity(id Identity, store repository.Store, rdb *redis.Client) Favorites {
	if id.UID != "" {
		return newRemote(store, id.UID)
	}
	return newLocal(rdb, id.SessionID)
}
