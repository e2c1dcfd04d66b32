package service

import "context"

// BlobStore defines the interface for binary object storage (payment
// screenshots, media). Upload failures are fatal to the operation that
// requested them; the store never partially records an object.
type BlobStore interface {
	// Upload stores the bytes under the given name and returns the public URL
	// of the stored object.
	Upload(ctx context.Context, data []byte, name string) (string, error)
}
