package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saamcabins/cms-backend/internal/config"
	"github.com/saamcabins/cms-backend/pkg/logger"
)

// AuthHandler implements the admin panel's shared-password check. There is no
// session or token issuance; the admin UI keeps its own logged-in flag and
// this endpoint only answers yes/no.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Register routes under /api/admin
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/auth", h.Login)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Authentication failed"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Admin.Password)) == 1 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Authentication successful"})
		return
	}

	logger.Warnf("auth: failed admin login from %s", c.ClientIP())
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
}
