package service

import "context"

// ObjectStorage stores uploaded media and resolves public URLs for it.
type ObjectStorage interface {
	// Upload writes the object under key and returns its public URL.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes a stored object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// PublicURL resolves the public URL for an already stored key.
	PublicURL(key string) string
}
