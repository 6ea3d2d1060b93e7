package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saamcabins/cms-backend/internal/uploads"
	"github.com/saamcabins/cms-backend/pkg/logger"
	"github.com/saamcabins/cms-backend/pkg/metrics"
)

// UploadHandler accepts multipart image uploads from the admin panel and
// hands the bytes to the configured storage backend. The returned URL is what
// the admin UI writes into cabin/gallery/settings records.
type UploadHandler struct {
	storage uploads.Storage
	backend string
	maxSize int64
}

func NewUploadHandler(storage uploads.Storage, backend string, maxSizeMB int) *UploadHandler {
	return &UploadHandler{storage: storage, backend: backend, maxSize: int64(maxSizeMB) << 20}
}

// Register routes under /api/admin
func (h *UploadHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	if h.maxSize > 0 && fh.Size > h.maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}
	folder := c.PostForm("folder")
	if folder == "" {
		folder = "uploads"
	}

	f, err := fh.Open()
	if err != nil {
		uploadError(c, h.backend, "open upload", err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		uploadError(c, h.backend, "read upload", err)
		return
	}

	filename := uploads.UniqueFilename(fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	url, err := h.storage.Save(c.Request.Context(), folder, filename, data, contentType)
	if err != nil {
		uploadError(c, h.backend, "store upload", err)
		return
	}

	metrics.Uploads.WithLabelValues(h.backend).Inc()
	c.JSON(http.StatusOK, gin.H{"url": url, "filename": filename})
}

func uploadError(c *gin.Context, backend, op string, err error) {
	metrics.UploadErrors.WithLabelValues(backend).Inc()
	logger.Errorf("upload: %s failed: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
}
