package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studynest/studyspaces-backend/internal/adapters/storage"
)

func TestLocalAdapter_Store(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "reviews")
	adapter, err := storage.NewLocalAdapter(dir, "https://api.example.edu/uploads/reviews")
	require.NoError(t, err)

	url, err := adapter.Store(context.Background(), "photo.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.edu/uploads/reviews/photo.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocalAdapter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	_, err := storage.NewLocalAdapter(dir, "")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalAdapter_StripsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	adapter, err := storage.NewLocalAdapter(dir, "")
	require.NoError(t, err)

	_, err = adapter.Store(context.Background(), "../../etc/evil.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "evil.jpg"))
	assert.NoError(t, err)
}
