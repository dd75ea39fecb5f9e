package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

// LocalAdapter stores uploaded files on the local filesystem and serves them
// back under a public path mirroring the storage layout.
type LocalAdapter struct {
	dir          string
	publicPrefix string
}

// NewLocalAdapter creates the storage directory if needed and returns an
// adapter rooted at dir. Stored files are addressed as publicPrefix/<name>.
func NewLocalAdapter(dir, publicPrefix string) (providers.StorageProvider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalAdapter{
		dir:          dir,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}, nil
}

// Store writes content under name and returns the public URL.
func (a *LocalAdapter) Store(ctx context.Context, name string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Uploaded names are generated server-side, but never trust them with
	// path separators anyway.
	name = filepath.Base(name)

	path := filepath.Join(a.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", apperrors.NewInternalError("failed to create upload file", err)
	}

	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(path)
		return "", apperrors.NewInternalError("failed to write upload file", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", apperrors.NewInternalError("failed to flush upload file", err)
	}

	return a.publicPrefix + "/" + name, nil
}
