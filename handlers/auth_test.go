package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/saamcabins/cms-backend/internal/config"
)

func newAuthRouter() *gin.Engine {
	cfg := &config.Config{}
	cfg.Admin.Password = "s3cret"
	g := gin.New()
	NewAuthHandler(cfg).Register(g.Group("/api/admin"))
	return g
}

func postAuth(g *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func TestAuth_CorrectPassword(t *testing.T) {
	w := postAuth(newAuthRouter(), `{"password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"message":"Authentication successful"}`, w.Body.String())
}

func TestAuth_WrongPassword(t *testing.T) {
	w := postAuth(newAuthRouter(), `{"password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"success":false,"message":"Invalid password"}`, w.Body.String())
}

func TestAuth_EmptyPasswordRejected(t *testing.T) {
	w := postAuth(newAuthRouter(), `{}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedBody(t *testing.T) {
	w := postAuth(newAuthRouter(), `{oops`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
