package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/saamcabins/cms-backend/internal/content"
	"github.com/saamcabins/cms-backend/internal/content/repository"
	"github.com/saamcabins/cms-backend/internal/content/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	g := gin.New()
	svc := service.New(repository.NewFileStore(filepath.Join(t.TempDir(), "content.json")))
	RegisterContentRoutes(g, svc)
	return g
}

func post(t *testing.T, g *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/content", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func getContent(t *testing.T, g *gin.Engine) content.Document {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/content", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var doc content.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	return doc
}

func TestContentHandler_GetDefaultsToEmptyCollections(t *testing.T) {
	g := newTestRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/content", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.JSONEq(t, `[]`, string(raw["cabins"]))
	require.JSONEq(t, `[]`, string(raw["amenities"]))
	require.JSONEq(t, `[]`, string(raw["gallery"]))
}

func TestContentHandler_CreateThenGet(t *testing.T) {
	g := newTestRouter(t)
	w := post(t, g, `{"action":"create","type":"amenity","data":{"id":"amenity-1","name":"WiFi","category":"Basic"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	doc := getContent(t, g)
	require.Len(t, doc.Amenities, 1)
	require.Equal(t, "WiFi", doc.Amenities[0].Name)
	require.Equal(t, "Basic", doc.Amenities[0].Category)
}

func TestContentHandler_UpdateMissingIDIs404(t *testing.T) {
	g := newTestRouter(t)
	w := post(t, g, `{"action":"update","type":"cabin","id":"cabin-404","data":{"price":100}}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestContentHandler_DeleteMissingIDIsOK(t *testing.T) {
	g := newTestRouter(t)
	w := post(t, g, `{"action":"delete","type":"cabin","id":"cabin-404"}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestContentHandler_UnknownActionIs400(t *testing.T) {
	g := newTestRouter(t)
	w := post(t, g, `{"action":"upsert","type":"cabin","data":{}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentHandler_UnknownTypeIs400(t *testing.T) {
	g := newTestRouter(t)
	w := post(t, g, `{"action":"create","type":"booking","data":{}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentHandler_FullReplace(t *testing.T) {
	g := newTestRouter(t)
	require.Equal(t, http.StatusOK, post(t, g, `{"action":"create","type":"amenity","data":{"id":"amenity-1","name":"WiFi"}}`).Code)

	// legacy full replace: posting only cabins drops the amenity
	w := post(t, g, `{"cabins":[{"id":"cabin-1","name":"Office Cabin"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	doc := getContent(t, g)
	require.Len(t, doc.Cabins, 1)
	require.Empty(t, doc.Amenities)
}

func TestContentHandler_UpdateSettings(t *testing.T) {
	g := newTestRouter(t)
	w := post(t, g, `{"action":"updateSettings","settings":{"siteName":"SAAM Cabins","theme":{"primaryColor":"#1a365d","secondaryColor":"#2d3748","accentColor":"#ed8936"}}}`)
	require.Equal(t, http.StatusOK, w.Code)

	doc := getContent(t, g)
	require.NotNil(t, doc.SiteSettings)
	require.Equal(t, "SAAM Cabins", doc.SiteSettings.SiteName)
	require.NotNil(t, doc.SiteSettings.Theme)
	require.Equal(t, "#ed8936", doc.SiteSettings.Theme.AccentColor)
}

func TestContentHandler_UpdateAboutUs(t *testing.T) {
	g := newTestRouter(t)
	w := post(t, g, `{"action":"updateAboutUs","aboutUs":{"content":"About SAAM","image":"/images/about/a.jpg"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	doc := getContent(t, g)
	require.NotNil(t, doc.AboutUs)
	require.Equal(t, "About SAAM", doc.AboutUs.Content)
}

func TestContentHandler_InvalidBodyIs400(t *testing.T) {
	g := newTestRouter(t)
	w := post(t, g, `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
