package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
)

const (
	bhajansCol     = "bhajans"
	eventsCol      = "events"
	saintsCol      = "saints"
	bhajanTypesCol = "bhajan_types"
	categoriesCol  = "categories"
	labelsCol      = "labels"
	membersCol     = "members"
	settingsCol    = "settings"

	settingsDocID = "app_settings"
)

// Repository is the typed read/write facade over the document store. Each
// collection is cached whole in memory after its first list; the cache has
// no TTL and is invalidated only by writes to the same collection. A nil
// store degrades reads to empty results and fails writes with
// ErrNotInitialized.
type Repository struct {
	store Store

	mu    sync.Mutex
	cache map[string]any

	now func() time.Time
}

func New(store Store) *Repository {
	return &Repository{
		store: store,
		cache: make(map[string]any),
		now:   time.Now,
	}
}

// Store exposes the underlying document store for collaborators that manage
// their own collections (favorites, users).
func (r *Repository) Store() Store { return r.store }

func (r *Repository) invalidate(col string) {
	r.mu.Lock()
	delete(r.cache, col)
	r.mu.Unlock()
}

func (r *Repository) cached(col string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.cache[col]
	return v, ok
}

func (r *Repository) fill(col string, v any) {
	r.mu.Lock()
	r.cache[col] = v
	r.mu.Unlock()
}

// listCached returns the cached collection if present, otherwise fetches the
// full collection, populates the cache and returns it. Concurrent first
// listings may each issue a fetch; both write consistent results.
func listCached[T any](ctx context.Context, r *Repository, col string, q Query) ([]T, error) {
	if v, ok := r.cached(col); ok {
		return v.([]T), nil
	}
	if r.store == nil {
		return []T{}, nil
	}
	docs, err := r.store.List(ctx, col, q)
	if err != nil {
		return nil, err
	}
	items, err := fromDocs[T](docs)
	if err != nil {
		return nil, err
	}
	r.fill(col, items)
	return items, nil
}

func (r *Repository) create(ctx context.Context, col string, v any) (string, error) {
	if r.store == nil {
		return "", domain.ErrNotInitialized
	}
	m, err := toMap(v)
	if err != nil {
		return "", err
	}
	delete(m, "updatedAt")
	m["createdAt"] = r.now().UTC().Format(time.RFC3339)
	id, err := r.store.Create(ctx, col, m)
	if err != nil {
		return "", err
	}
	r.invalidate(col)
	return id, nil
}

func (r *Repository) update(ctx context.Context, col, id string, v any) error {
	if r.store == nil {
		return domain.ErrNotInitialized
	}
	m, err := toMap(v)
	if err != nil {
		return err
	}
	delete(m, "createdAt")
	m["updatedAt"] = r.now().UTC().Format(time.RFC3339)
	if err := r.store.Set(ctx, col, id, m); err != nil {
		return err
	}
	r.invalidate(col)
	return nil
}

func (r *Repository) delete(ctx context.Context, col, id string) error {
	if r.store == nil {
		return domain.ErrNotInitialized
	}
	if err := r.store.Delete(ctx, col, id); err != nil {
		return err
	}
	r.invalidate(col)
	return nil
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Bhajans

func (r *Repository) Bhajans(ctx context.Context) ([]domain.Bhajan, error) {
	return listCached[domain.Bhajan](ctx, r, bhajansCol, Query{OrderBy: "title"})
}

func (r *Repository) BhajanByID(ctx context.Context, id string) (*domain.Bhajan, error) {
	if v, ok := r.cached(bhajansCol); ok {
		for _, b := range v.([]domain.Bhajan) {
			if b.ID == id {
				return &b, nil
			}
		}
	}
	if r.store == nil {
		return nil, nil
	}
	doc, err := r.store.Get(ctx, bhajansCol, id)
	if err != nil || doc == nil {
		return nil, err
	}
	b, err := fromDoc[domain.Bhajan](*doc)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) AddBhajan(ctx context.Context, b domain.Bhajan) (string, error) {
	existing, err := r.Bhajans(ctx)
	if err != nil {
		return "", err
	}
	for _, e := range existing {
		if sameName(e.Title, b.Title) {
			return "", &domain.DuplicateError{Kind: "bhajan", Existing: e.Title, Message: "हे भजन आधीच अस्तित्वात आहे"}
		}
	}
	return r.create(ctx, bhajansCol, b)
}

func (r *Repository) UpdateBhajan(ctx context.Context, id string, b domain.Bhajan) error {
	return r.update(ctx, bhajansCol, id, b)
}

func (r *Repository) DeleteBhajan(ctx context.Context, id string) error {
	return r.delete(ctx, bhajansCol, id)
}

// BhajansByCategory filters the already-fetched collection in memory rather
// than issuing a second backend query.
func (r *Repository) BhajansByCategory(ctx context.Context, category string) ([]domain.Bhajan, error) {
	all, err := r.Bhajans(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Bhajan{}
	for _, b := range all {
		if strings.EqualFold(b.Category, category) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *Repository) BhajansBySant(ctx context.Context, sant string) ([]domain.Bhajan, error) {
	all, err := r.Bhajans(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Bhajan{}
	for _, b := range all {
		if strings.EqualFold(b.Sant, sant) {
			out = append(out, b)
		}
	}
	return out, nil
}

// Saints

func (r *Repository) Saints(ctx context.Context) ([]domain.Sant, error) {
	return listCached[domain.Sant](ctx, r, saintsCol, Query{OrderBy: "name"})
}

func (r *Repository) AddSant(ctx context.Context, s domain.Sant) (string, error) {
	existing, err := r.Saints(ctx)
	if err != nil {
		return "", err
	}
	for _, e := range existing {
		if sameName(e.Name, s.Name) {
			return "", &domain.DuplicateError{Kind: "sant", Existing: e.Name, Message: "हा संत आधीच अस्तित्वात आहे"}
		}
	}
	return r.create(ctx, saintsCol, s)
}

func (r *Repository) UpdateSant(ctx context.Context, id string, s domain.Sant) error {
	return r.update(ctx, saintsCol, id, s)
}

func (r *Repository) DeleteSant(ctx context.Context, id string) error {
	return r.delete(ctx, saintsCol, id)
}

// Bhajan types and their categories

func (r *Repository) BhajanTypes(ctx context.Context) ([]domain.BhajanType, error) {
	return listCached[domain.BhajanType](ctx, r, bhajanTypesCol, Query{OrderBy: "name"})
}

func (r *Repository) AddBhajanType(ctx context.Context, t domain.BhajanType) (string, error) {
	existing, err := r.BhajanTypes(ctx)
	if err != nil {
		return "", err
	}
	for _, e := range existing {
		if sameName(e.Name, t.Name) {
			return "", &domain.DuplicateError{Kind: "bhajan_type", Existing: e.Name, Message: "हा प्रकार आधीच अस्तित्वात आहे"}
		}
	}
	return r.create(ctx, bhajanTypesCol, t)
}

func (r *Repository) UpdateBhajanType(ctx context.Context, id string, t domain.BhajanType) error {
	return r.update(ctx, bhajanTypesCol, id, t)
}

func (r *Repository) DeleteBhajanType(ctx context.Context, id string) error {
	return r.delete(ctx, bhajanTypesCol, id)
}

func (r *Repository) Categories(ctx context.Context) ([]domain.Category, error) {
	return listCached[domain.Category](ctx, r, categoriesCol, Query{OrderBy: "name"})
}

// AddCategory rejects duplicates only within the same parent bhajan type;
// the same category name may exist under two different types.
func (r *Repository) AddCategory(ctx context.Context, c domain.Category) (string, error) {
	existing, err := r.Categories(ctx)
	if err != nil {
		return "", err
	}
	for _, e := range existing {
		if sameName(e.Name, c.Name) && e.BhajanTypeID == c.BhajanTypeID {
			return "", &domain.DuplicateError{Kind: "category", Existing: e.Name, Message: "ही श्रेणी आधीच अस्तित्वात आहे"}
		}
	}
	return r.create(ctx, categoriesCol, c)
}

func (r *Repository) UpdateCategory(ctx context.Context, id string, c domain.Category) error {
	return r.update(ctx, categoriesCol, id, c)
}

func (r *Repository) DeleteCategory(ctx context.Context, id string) error {
	return r.delete(ctx, categoriesCol, id)
}

// Labels

func (r *Repository) Labels(ctx context.Context) ([]domain.Label, error) {
	return listCached[domain.Label](ctx, r, labelsCol, Query{OrderBy: "name"})
}

func (r *Repository) AddLabel(ctx context.Context, l domain.Label) (string, error) {
	existing, err := r.Labels(ctx)
	if err != nil {
		return "", err
	}
	for _, e := range existing {
		if sameName(e.Name, l.Name) {
			return "", &domain.DuplicateError{Kind: "label", Existing: e.Name, Message: "हे लेबल आधीच अस्तित्वात आहे"}
		}
	}
	return r.create(ctx, labelsCol, l)
}

func (r *Repository) UpdateLabel(ctx context.Context, id string, l domain.Label) error {
	return r.update(ctx, labelsCol, id, l)
}

func (r *Repository) DeleteLabel(ctx context.Context, id string) error {
	return r.delete(ctx, labelsCol, id)
}

// Events

// UpcomingEvents returns the next three events by date and caches them; the
// home page is the only consumer.
func (r *Repository) UpcomingEvents(ctx context.Context) ([]domain.Event, error) {
	return listCached[domain.Event](ctx, r, eventsCol, Query{OrderBy: "date", Limit: 3})
}

// AllEvents is the admin listing, newest first. It bypasses the cache so the
// admin always sees fresh data.
func (r *Repository) AllEvents(ctx context.Context) ([]domain.Event, error) {
	if r.store == nil {
		return []domain.Event{}, nil
	}
	docs, err := r.store.List(ctx, eventsCol, Query{OrderBy: "date", Desc: true})
	if err != nil {
		return nil, err
	}
	return fromDocs[domain.Event](docs)
}

func (r *Repository) EventByID(ctx context.Context, id string) (*domain.Event, error) {
	if r.store == nil {
		return nil, nil
	}
	doc, err := r.store.Get(ctx, eventsCol, id)
	if err != nil || doc == nil {
		return nil, err
	}
	e, err := fromDoc[domain.Event](*doc)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// AddEvent rejects a duplicate only when both title and date match; the same
// event title may recur on another date.
func (r *Repository) AddEvent(ctx context.Context, ev domain.Event) (string, error) {
	existing, err := r.AllEvents(ctx)
	if err != nil {
		return "", err
	}
	for _, e := range existing {
		if sameName(e.Title, ev.Title) && e.Date == ev.Date {
			return "", &domain.DuplicateError{
				Kind:     "event",
				Existing: e.Title + " (" + e.Date + ")",
				Message:  "हा कार्यक्रम या तारखेला आधीच अस्तित्वात आहे",
			}
		}
	}
	return r.create(ctx, eventsCol, ev)
}

func (r *Repository) UpdateEvent(ctx context.Context, id string, ev domain.Event) error {
	return r.update(ctx, eventsCol, id, ev)
}

func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	return r.delete(ctx, eventsCol, id)
}

// Members

func (r *Repository) Members(ctx context.Context) ([]domain.Member, error) {
	return listCached[domain.Member](ctx, r, membersCol, Query{OrderBy: "order"})
}

func (r *Repository) AddMember(ctx context.Context, m domain.Member) (string, error) {
	existing, err := r.Members(ctx)
	if err != nil {
		return "", err
	}
	for _, e := range existing {
		if sameName(e.Name, m.Name) {
			return "", &domain.DuplicateError{Kind: "member", Existing: e.Name, Message: "हा सदस्य आधीच अस्तित्वात आहे"}
		}
	}
	return r.create(ctx, membersCol, m)
}

func (r *Repository) UpdateMember(ctx context.Context, id string, m domain.Member) error {
	return r.update(ctx, membersCol, id, m)
}

func (r *Repository) DeleteMember(ctx context.Context, id string) error {
	return r.delete(ctx, membersCol, id)
}

// ReorderMembers rewrites the order field to match orderedIDs, writing only
// the members whose position actually changed. The writes are independent:
// a failure partway through leaves a partially reordered list that only a
// reload reveals.
func (r *Repository) ReorderMembers(ctx context.Context, orderedIDs []string) error {
	if r.store == nil {
		return domain.ErrNotInitialized
	}
	members, err := r.Members(ctx)
	if err != nil {
		return err
	}
	current := make(map[string]int, len(members))
	for _, m := range members {
		current[m.ID] = m.Order
	}

	ts := r.now().UTC().Format(time.RFC3339)
	changed := false
	for i, id := range orderedIDs {
		want := i + 1
		if have, ok := current[id]; !ok || have == want {
			continue
		}
		if err := r.store.Set(ctx, membersCol, id, map[string]any{
			"order":     want,
			"updatedAt": ts,
		}); err != nil {
			r.invalidate(membersCol)
			return err
		}
		changed = true
	}
	if changed {
		r.invalidate(membersCol)
	}
	return nil
}

// App settings

// Settings returns the singleton settings document, falling back to the
// built-in defaults when the store is unconfigured or the collection is
// still empty.
func (r *Repository) Settings(ctx context.Context) (domain.AppSettings, error) {
	if v, ok := r.cached(settingsCol); ok {
		return v.(domain.AppSettings), nil
	}
	if r.store == nil {
		return domain.DefaultSettings(), nil
	}
	docs, err := r.store.List(ctx, settingsCol, Query{})
	if err != nil {
		return domain.AppSettings{}, err
	}
	var s domain.AppSettings
	if len(docs) == 0 {
		s = domain.DefaultSettings()
	} else {
		s, err = fromDoc[domain.AppSettings](docs[0])
		if err != nil {
			return domain.AppSettings{}, err
		}
	}
	r.fill(settingsCol, s)
	return s, nil
}

// UpdateSettings merge-writes onto the fixed settings document, creating it
// on first save.
func (r *Repository) UpdateSettings(ctx context.Context, s domain.AppSettings) error {
	return r.update(ctx, settingsCol, settingsDocID, s)
}
