package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

// Doc is one schemaless document as the store returns it.
type Doc struct {
	ID   string
	Data map[string]any
}

// Query shapes a full-collection read.
type Query struct {
	OrderBy string
	Desc    bool
	Limit   int
}

// Store is the document-store surface the repositories are written against.
// Paths are slash-separated collection paths ("bhajans",
// "users/<uid>/favorites"). Get reports a missing document as (nil, nil).
type Store interface {
	List(ctx context.Context, path string, q Query) ([]Doc, error)
	Get(ctx context.Context, path, id string) (*Doc, error)
	Create(ctx context.Context, path string, data map[string]any) (string, error)
	// Set merge-writes data onto the document, creating it if absent.
	Set(ctx context.Context, path, id string, data map[string]any) error
	Delete(ctx context.Context, path, id string) error
}

// toMap converts a typed entity to the schemaless shape the store accepts.
// The id field never travels inside the document body.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	delete(m, "id")
	return m, nil
}

// fromDoc decodes a store document into a typed entity, stamping the id
// into the "id" field.
func fromDoc[T any](d Doc) (T, error) {
	var v T
	m := make(map[string]any, len(d.Data)+1)
	for k, val := range d.Data {
		m[k] = val
	}
	m["id"] = d.ID
	b, err := json.Marshal(m)
	if err != nil {
		return v, fmt.Errorf("encode document %s: %w", d.ID, err)
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("decode document %s: %w", d.ID, err)
	}
	return v, nil
}

func fromDocs[T any](docs []Doc) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := fromDoc[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
