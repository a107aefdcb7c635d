package users

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/repository"
)

const usersCol = "users"

// Repo manages the per-user application documents. The user document is
// keyed by the Firebase UID; Role lives here, not as an auth claim.
type Repo struct {
	store repository.Store
	now   func() time.Time
}

func NewRepo(store repository.Store) *Repo {
	return &Repo{store: store, now: time.Now}
}

// EnsureUser creates the user document with the default non-privileged role
// on first sign-in and merges the auth profile fields on every subsequent
// one. It returns the stored user, including the effective role.
func (r *Repo) EnsureUser(ctx context.Context, u domain.User) (domain.User, error) {
	if u.UID == "" {
		return domain.User{}, fmt.Errorf("firebase uid required")
	}
	if r.store == nil {
		// No backend: hand back the auth identity with the default role so
		// the session still works.
		u.Role = domain.RoleUser
		return u, nil
	}

	doc, err := r.store.Get(ctx, usersCol, u.UID)
	if err != nil {
		return domain.User{}, err
	}

	if doc == nil {
		u.Role = domain.RoleUser
		data, err := encodeUser(u)
		if err != nil {
			return domain.User{}, err
		}
		delete(data, "updatedAt")
		data["createdAt"] = r.now().UTC().Format(time.RFC3339)
		if err := r.store.Set(ctx, usersCol, u.UID, data); err != nil {
			return domain.User{}, err
		}
		return u, nil
	}

	stored, err := decodeUser(*doc)
	if err != nil {
		return domain.User{}, err
	}

	// Refresh profile fields from the identity provider; role is ours.
	data := map[string]any{
		"uid":       u.UID,
		"updatedAt": r.now().UTC().Format(time.RFC3339),
	}
	if u.Email != "" {
		data["email"] = u.Email
		stored.Email = u.Email
	}
	if u.DisplayName != "" {
		data["displayName"] = u.DisplayName
		stored.DisplayName = u.DisplayName
	}
	if u.PhotoURL != "" {
		data["photoURL"] = u.PhotoURL
		stored.PhotoURL = u.PhotoURL
	}
	if err := r.store.Set(ctx, usersCol, u.UID, data); err != nil {
		return domain.User{}, err
	}
	if stored.Role == "" {
		stored.Role = domain.RoleUser
	}
	return stored, nil
}

// Role returns the stored role for a uid, defaulting to the non-privileged
// role when the document or field is missing.
func (r *Repo) Role(ctx context.Context, uid string) (string, error) {
	if r.store == nil {
		return domain.RoleUser, nil
	}
	doc, err := r.store.Get(ctx, usersCol, uid)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return domain.RoleUser, nil
	}
	u, err := decodeUser(*doc)
	if err != nil {
		return "", err
	}
	if u.Role == "" {
		return domain.RoleUser, nil
	}
	return u.Role, nil
}

// List returns all user documents ordered by email.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	if r.store == nil {
		return []domain.User{}, nil
	}
	docs, err := r.store.List(ctx, usersCol, repository.Query{OrderBy: "email"})
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		u, err := decodeUser(d)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// UpdateRole merge-writes a new role onto the user document.
func (r *Repo) UpdateRole(ctx context.Context, uid, role string) error {
	if r.store == nil {
		return domain.ErrNotInitialized
	}
	return r.store.Set(ctx, usersCol, uid, map[string]any{
		"role":      role,
		"updatedAt": r.now().UTC().Format(time.RFC3339),
	})
}

func encodeUser(u domain.User) (map[string]any, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	delete(m, "id")
	return m, nil
}

func decodeUser(d repository.Doc) (domain.User, error) {
	var u domain.User
	m := make(map[string]any, len(d.Data)+1)
	for k, v := range d.Data {
		m[k] = v
	}
	m["id"] = d.ID
	b, err := json.Marshal(m)
	if err != nil {
		return u, fmt.Errorf("encode user %s: %w", d.ID, err)
	}
	if err := json.Unmarshal(b, &u); err != nil {
		return u, fmt.Errorf("decode user %s: %w", d.ID, err)
	}
	return u, nil
}
