package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studynest/studyspaces-backend/internal/api/handlers"
)

type recordingStorage struct {
	stored []string
}

func (s *recordingStorage) Store(ctx context.Context, name string, contents io.Reader) (string, error) {
	s.stored = append(s.stored, name)
	return "https://api.example.edu/uploads/reviews/" + name, nil
}

func multipartRequest(t *testing.T, files map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, contents := range files {
		part, err := writer.CreateFormFile("photos", name)
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader(contents))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/reviews/upload-photos", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadHandler_UploadPhotos(t *testing.T) {
	storage := &recordingStorage{}
	handler := handlers.NewUploadHandler(storage, nil)

	req := multipartRequest(t, map[string]string{
		"desk.jpg": "jpeg-bytes",
		"view.png": "png-bytes",
	})
	rr := httptest.NewRecorder()

	handler.UploadPhotos(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got map[string][]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got["photoUrls"], 2)
	for _, url := range got["photoUrls"] {
		assert.True(t, strings.HasPrefix(url, "https://api.example.edu/uploads/reviews/"))
	}

	// Stored names are generated, keeping only the original extension.
	require.Len(t, storage.stored, 2)
	for _, name := range storage.stored {
		assert.NotContains(t, name, "desk")
		assert.NotContains(t, name, "view")
	}
}

func TestUploadHandler_UploadPhotos_NoFiles(t *testing.T) {
	handler := handlers.NewUploadHandler(&recordingStorage{}, nil)

	req := multipartRequest(t, nil)
	rr := httptest.NewRecorder()

	handler.UploadPhotos(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadHandler_UploadPhotos_NonImageRejectsBatch(t *testing.T) {
	storage := &recordingStorage{}
	handler := handlers.NewUploadHandler(storage, nil)

	req := multipartRequest(t, map[string]string{
		"desk.jpg":  "jpeg-bytes",
		"notes.txt": "plain text",
	})
	rr := httptest.NewRecorder()

	handler.UploadPhotos(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, storage.stored)
}

func TestUploadHandler_UploadPhotos_TooManyFiles(t *testing.T) {
	storage := &recordingStorage{}
	handler := handlers.NewUploadHandler(storage, nil)

	files := map[string]string{}
	for i := 0; i < 10; i++ {
		files["photo-"+strings.Repeat("x", i+1)+".jpg"] = "bytes"
	}
	req := multipartRequest(t, files)
	rr := httptest.NewRecorder()

	handler.UploadPhotos(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, storage.stored)
}
