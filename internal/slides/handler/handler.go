package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saamcabins/cms-backend/internal/slides/repository"
	"github.com/saamcabins/cms-backend/internal/slides/service"
	"github.com/saamcabins/cms-backend/pkg/logger"
	"github.com/saamcabins/cms-backend/pkg/metrics"
)

// RegisterSlideRoutes registers the hero-slider API. List responses always
// wrap the array as {"slides": [...]} even though the file stores a bare
// array; the admin UI depends on the wrapped shape.
func RegisterSlideRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/api/slider", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			storageError(c, "read slides", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"slides": list})
	})

	r.POST("/api/slider", func(c *gin.Context) {
		var in service.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			storageError(c, "create slide", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"slide": created})
	})

	r.PUT("/api/slider", func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slide ID required"})
			return
		}
		var in service.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
				return
			}
			storageError(c, "update slide", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"slide": updated})
	})

	r.DELETE("/api/slider", func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slide ID required"})
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
				return
			}
			storageError(c, "delete slide", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	r.POST("/api/slider/reorder", func(c *gin.Context) {
		var req struct {
			ID        string `json:"id"`
			Direction string `json:"direction"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.ID == "" || req.Direction == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID and direction required"})
			return
		}
		if err := svc.Reorder(c.Request.Context(), req.ID, req.Direction); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
				return
			}
			storageError(c, "reorder slides", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}

func storageError(c *gin.Context, op string, err error) {
	metrics.StoreErrors.WithLabelValues("slides").Inc()
	logger.Errorf("slides: %s failed: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + op})
}
