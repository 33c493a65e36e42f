// Package storage implements the media object store on gocloud.dev blob buckets.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local development driver
	_ "gocloud.dev/blob/gcsblob"  // production driver
	"gocloud.dev/gcerrors"

	"pairup/config"
	"pairup/internal/domain/lifecycle"
	"pairup/internal/domain/service"
	"pairup/internal/errors"

	"go.uber.org/fx"
)

// BucketParams defines the required parameters
type BucketParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured blob bucket and closes it on shutdown.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

// objectStorage is a concrete implementation of the ObjectStorage interface.
type objectStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewObjectStorage is the constructor for objectStorage.
func NewObjectStorage(bucket *blob.Bucket, cfg *config.Config) service.ObjectStorage {
	baseURL := ""
	if cfg.Storage != nil {
		baseURL = strings.TrimRight(cfg.Storage.PublicBaseURL, "/")
	}

	return &objectStorage{
		bucket:        bucket,
		publicBaseURL: baseURL,
	}
}

// Upload writes the object under key and returns its public URL.
func (s *objectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write object")
	}

	return s.PublicURL(key), nil
}

// Delete removes a stored object. Deleting a missing object is not an error,
// which keeps compensating deletes idempotent.
func (s *objectStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete object")
	}

	return nil
}

// PublicURL resolves the public URL for a stored key.
func (s *objectStorage) PublicURL(key string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}
