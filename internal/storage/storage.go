// Package storage provides the blob-storage capability backing media uploads.
package storage

import (
	"context"
	"io"
)

// BlobStore is the capability the upload workflow consumes: put a blob under
// a key, and resolve the public URL a browser can fetch it from. There is
// deliberately no delete; the upload workflow never compensates a partial
// failure, so orphaned blobs are an accepted outcome.
type BlobStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	PublicURL(key string) string
}
