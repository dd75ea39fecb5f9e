package providers

import (
	"context"
	"io"
)

// StorageProvider stores uploaded files and returns their public URLs, so the
// backing store can change without touching route logic.
type StorageProvider interface {
	// Store writes content under name and returns the public URL.
	Store(ctx context.Context, name string, content io.Reader) (string, error)
}
