package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the service.
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
    <title>pixelperfect-backend — Swagger</title>
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

// Minimal OpenAPI document describing the content and contact endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "pixelperfect-backend", "version": "v0.1.0" },
  "paths": {
    "/api/clients-responses": {
      "get": { "summary": "Up to 3 client testimonials", "responses": { "200": { "description": "success envelope with data array" }, "500": { "description": "store failure" } } }
    },
    "/api/success-stories": {
      "get": { "summary": "Up to 3 success stories", "responses": { "200": { "description": "success envelope with data array" }, "500": { "description": "store failure" } } }
    },
    "/api/frequently-asked-questions": {
      "get": { "summary": "Up to 4 FAQ entries", "responses": { "200": { "description": "success envelope with data array" }, "500": { "description": "store failure" } } }
    },
    "/api/message": {
      "post": {
        "summary": "Submit a contact form message",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"firstName":{"type":"string"},"lastName":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"company":{"type":"string"},"budget":{"type":"string"},"message":{"type":"string"},"regarding":{"type":"string"}}}}, "application/x-www-form-urlencoded": { "schema": {"type":"object"} } } },
        "responses": { "201": { "description": "stored; id returned" }, "400": { "description": "required fields are missing" }, "500": { "description": "store failure" } }
      }
    },
    "/api/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "server is running" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
