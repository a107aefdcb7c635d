package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreStore implements Store on top of a Firestore client.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) List(ctx context.Context, path string, q Query) ([]Doc, error) {
	col := s.client.Collection(path)
	fq := col.Query
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Desc {
			dir = firestore.Desc
		}
		fq = fq.OrderBy(q.OrderBy, dir)
	}
	if q.Limit > 0 {
		fq = fq.Limit(q.Limit)
	}

	it := fq.Documents(ctx)
	defer it.Stop()

	var docs []Doc
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", path, err)
		}
		docs = append(docs, Doc{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *FirestoreStore) Get(ctx context.Context, path, id string) (*Doc, error) {
	snap, err := s.client.Collection(path).Doc(id).Get(ctx)
	if snap != nil && !snap.Exists() {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", path, id, err)
	}
	return &Doc{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *FirestoreStore) Create(ctx context.Context, path string, data map[string]any) (string, error) {
	ref, _, err := s.client.Collection(path).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("create in %s: %w", path, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Set(ctx context.Context, path, id string, data map[string]any) error {
	if _, err := s.client.Collection(path).Doc(id).Set(ctx, data, firestore.MergeAll); err != nil {
		return fmt.Errorf("set %s/%s: %w", path, id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, path, id string) error {
	if _, err := s.client.Collection(path).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", path, id, err)
	}
	return nil
}
