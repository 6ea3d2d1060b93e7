package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the admin API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>saamcabins-cms — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document covering the admin/content surface.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "saamcabins-cms", "version": "v0.1.0" },
  "paths": {
    "/api/admin/content": {
      "get": { "summary": "Full content document (cabins, amenities, gallery, settings)", "responses": { "200": { "description": "content document" } } },
      "post": {
        "summary": "Content mutation: CRUD action, singleton update, or legacy full replace",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"action":{"type":"string","enum":["create","update","delete","updateSettings","updateAboutUs"]},"type":{"type":"string","enum":["cabin","amenity","gallery"]},"id":{"type":"string"},"data":{"type":"object"},"settings":{"type":"object"},"aboutUs":{"type":"object"}}}}}},
        "responses": { "200": { "description": "success" }, "400": { "description": "invalid action/type/body" }, "404": { "description": "id not found" } }
      }
    },
    "/api/slider": {
      "get": { "summary": "List hero slides", "responses": { "200": { "description": "{slides: [...]}" } } },
      "post": { "summary": "Create slide (order appended)", "responses": { "200": { "description": "{slide}" } } },
      "put": { "summary": "Update slide by ?id=", "responses": { "200": { "description": "{slide}" }, "404": { "description": "unknown id" } } },
      "delete": { "summary": "Delete slide by ?id= and renumber", "responses": { "200": { "description": "success" }, "404": { "description": "unknown id" } } }
    },
    "/api/slider/reorder": {
      "post": { "summary": "Move a slide up or down one position", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"id":{"type":"string"},"direction":{"type":"string","enum":["up","down"]}}}}}}, "responses": { "200": { "description": "success" }, "404": { "description": "unknown id" } } }
    },
    "/api/admin/upload": {
      "post": { "summary": "Multipart image upload (file, optional folder)", "responses": { "200": { "description": "{url, filename}" }, "400": { "description": "missing file" } } }
    },
    "/api/admin/auth": {
      "post": { "summary": "Shared-password admin check", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"password":{"type":"string"}}}}}}, "responses": { "200": { "description": "authenticated" }, "401": { "description": "invalid password" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
