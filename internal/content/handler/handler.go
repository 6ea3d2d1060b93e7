package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saamcabins/cms-backend/internal/content"
	"github.com/saamcabins/cms-backend/internal/content/repository"
	"github.com/saamcabins/cms-backend/internal/content/service"
	"github.com/saamcabins/cms-backend/pkg/logger"
	"github.com/saamcabins/cms-backend/pkg/metrics"
)

// contentRequest is the dispatch envelope for POST /api/admin/content. When
// action is set the request is one of the explicit CRUD/singleton operations;
// otherwise the body is treated as a legacy full-document replace.
type contentRequest struct {
	Action   string          `json:"action"`
	Type     string          `json:"type"`
	ID       string          `json:"id"`
	Data     json.RawMessage `json:"data"`
	Settings json.RawMessage `json:"settings"`
	AboutUs  json.RawMessage `json:"aboutUs"`
}

// RegisterContentRoutes registers the admin content API.
func RegisterContentRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/api/admin/content", func(c *gin.Context) {
		doc, err := svc.GetAll(c.Request.Context())
		if err != nil {
			metrics.StoreErrors.WithLabelValues("content").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read content"})
			return
		}
		c.JSON(http.StatusOK, doc)
	})

	r.POST("/api/admin/content", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}
		var req contentRequest
		if err := json.Unmarshal(body, &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
			return
		}

		ctx := c.Request.Context()
		switch req.Action {
		case "":
			// Legacy full-document replace: the file becomes exactly the posted
			// object, so omitted collections are dropped.
			var doc content.Document
			if err := json.Unmarshal(body, &doc); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
				return
			}
			logger.Warnf("content: full-document replace (cabins=%d amenities=%d gallery=%d)",
				len(doc.Cabins), len(doc.Amenities), len(doc.Gallery))
			err = svc.Replace(ctx, &doc)
		case "create":
			err = svc.Create(ctx, req.Type, req.Data)
		case "update":
			err = svc.Update(ctx, req.Type, req.ID, req.Data)
		case "delete":
			err = svc.Delete(ctx, req.Type, req.ID)
		case "updateSettings":
			err = svc.UpdateSettings(ctx, req.Settings)
		case "updateAboutUs":
			err = svc.UpdateAboutUs(ctx, req.AboutUs)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
			return
		}

		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, repository.ErrUnknownType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
		case errors.Is(err, repository.ErrInvalidData):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			metrics.StoreErrors.WithLabelValues("content").Inc()
			logger.Errorf("content: %s failed: %v", req.Action, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save data"})
		}
	})
}
