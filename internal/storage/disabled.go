package storage

import (
	"context"
	"errors"
	"io"
)

// ErrStorageDisabled is returned when no blob storage is configured
var ErrStorageDisabled = errors.New("blob storage is not configured")

// Disabled is the BlobStore used when no storage backend is configured.
// Link items still work; file uploads fail cleanly at step one.
type Disabled struct{}

// Upload always fails with ErrStorageDisabled
func (Disabled) Upload(_ context.Context, _ string, _ io.Reader, _ string) error {
	return ErrStorageDisabled
}

// PublicURL returns an empty string; nothing is ever stored
func (Disabled) PublicURL(_ string) string {
	return ""
}
