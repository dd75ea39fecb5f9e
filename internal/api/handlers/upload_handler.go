package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/observability"
)

const (
	maxUploadFiles    = 9
	maxUploadBytes    = 5 << 20 // 5MB per file
	uploadMemoryLimit = 32 << 20
)

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadHandler stores review photos and hands back their public URLs.
type UploadHandler struct {
	storage providers.StorageProvider
	metrics *observability.Metrics
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(storage providers.StorageProvider, metrics *observability.Metrics) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		metrics: metrics,
	}
}

// UploadPhotos handles POST /api/reviews/upload-photos. All files are
// validated before any is written: one bad file rejects the whole batch.
func (h *UploadHandler) UploadPhotos(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart payload")
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		h.metrics.RecordUploadRejected()
		respondWithError(w, http.StatusBadRequest, "no files uploaded")
		return
	}
	if len(files) > maxUploadFiles {
		h.metrics.RecordUploadRejected()
		respondWithError(w, http.StatusBadRequest,
			fmt.Sprintf("at most %d photos per upload", maxUploadFiles))
		return
	}

	for _, header := range files {
		if reason := validatePhoto(header); reason != "" {
			h.metrics.RecordUploadRejected()
			respondWithError(w, http.StatusBadRequest, reason)
			return
		}
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		url, err := h.storePhoto(r, header)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to store photo")
			return
		}
		urls = append(urls, url)
	}

	h.metrics.RecordUploadsStored(len(urls))
	respondWithJSON(w, http.StatusOK, map[string][]string{"photoUrls": urls})
}

func validatePhoto(header *multipart.FileHeader) string {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPhotoExtensions[ext] {
		return fmt.Sprintf("unsupported file type: %s", header.Filename)
	}
	if header.Size > maxUploadBytes {
		return fmt.Sprintf("file too large: %s", header.Filename)
	}
	return ""
}

func (h *UploadHandler) storePhoto(r *http.Request, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	return h.storage.Store(r.Context(), name, file)
}
