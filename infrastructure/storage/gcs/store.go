package gcs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/domain"
)

// Store implements the ObjectStore port on a single Cloud Storage bucket
type Store struct {
	client *storage.Client
	bucket string
	logger *zap.Logger
}

// NewStore creates a new Store bound to the given bucket
func NewStore(client *storage.Client, bucket string, logger *zap.Logger) ports.ObjectStore {
	return &Store{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Save writes content under the given name with a content type and caller
// metadata, and returns the object's gs:// locator.
func (s *Store) Save(ctx context.Context, name, content, contentType string, metadata map[string]string) (domain.StoredObject, error) {
	obj := s.client.Bucket(s.bucket).Object(name)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = metadata
	if _, err := w.Write([]byte(content)); err != nil {
		w.Close()
		return domain.StoredObject{}, fmt.Errorf("failed to write object %q: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return domain.StoredObject{}, fmt.Errorf("failed to finalize object %q: %w", name, err)
	}

	s.logger.Debug("Object uploaded",
		zap.String("bucket", s.bucket),
		zap.String("name", name),
		zap.Int("bytes", len(content)),
	)

	return domain.StoredObject{
		FileName:    name,
		URI:         fmt.Sprintf("gs://%s/%s", s.bucket, name),
		Size:        int64(len(content)),
		ContentType: contentType,
		UploadedAt:  time.Now().UTC(),
	}, nil
}

// Exists reports whether an object with the given name is present.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.Bucket(s.bucket).Object(name).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat object %q: %w", name, err)
	}
	return true, nil
}

// List returns up to limit objects from the bucket.
func (s *Store) List(ctx context.Context, limit int) ([]domain.StorageObject, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, nil)

	objects := []domain.StorageObject{}
	for len(objects) < limit {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %q: %w", s.bucket, err)
		}
		objects = append(objects, domain.StorageObject{
			Name:        attrs.Name,
			Size:        attrs.Size,
			ContentType: attrs.ContentType,
			Created:     attrs.Created,
			Updated:     attrs.Updated,
		})
	}
	return objects, nil
}

// Ping verifies the bucket is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.client.Bucket(s.bucket).Attrs(ctx); err != nil {
		return fmt.Errorf("bucket %q unreachable: %w", s.bucket, err)
	}
	return nil
}
