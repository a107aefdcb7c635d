// Package storage uploads images (saint portraits, member photos, branding
// icons) to the blob store and hands back public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	fbstorage "firebase.google.com/go/v4/storage"
	"github.com/google/uuid"
)

type ImageStore struct {
	client *fbstorage.Client
	bucket string
}

func NewImageStore(client *fbstorage.Client, bucket string) *ImageStore {
	return &ImageStore{client: client, bucket: bucket}
}

// Upload writes the file under dir with a fresh unique name and returns the
// public download URL. The bucket is expected to allow public reads for the
// image prefixes.
func (s *ImageStore) Upload(ctx context.Context, dir, filename, contentType string, r io.Reader) (string, error) {
	if s == nil || s.client == nil {
		return "", fmt.Errorf("storage not initialized")
	}

	bucket, err := s.client.Bucket(s.bucket)
	if err != nil {
		return "", fmt.Errorf("open bucket: %w", err)
	}

	object := path.Join(dir, uuid.New().String()+path.Ext(filename))
	w := bucket.Object(object).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("upload %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", object, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, object), nil
}
