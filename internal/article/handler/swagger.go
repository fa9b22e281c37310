package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the blog API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(r *gin.Engine) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>blog-api — Swagger</title>
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

// Minimal OpenAPI document describing the article endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "blog-api", "version": "v0.1.0" },
  "paths": {
    "/api/create-article": {
      "post": {
        "summary": "Create an article",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title","content"],"properties":{"title":{"type":"string","minLength":2},"content":{"type":"string"}}}}}},
        "responses": { "200": { "description": "article created" }, "400": { "description": "validation failed" } }
      }
    },
    "/api/articles/{recents}": {
      "get": {
        "summary": "List articles, most recent first (pass any value for recents to limit to 2)",
        "parameters": [ { "name": "recents", "in": "path", "required": false, "schema": {"type":"string"} } ],
        "responses": { "200": { "description": "articles returned" }, "404": { "description": "no articles" } }
      }
    },
    "/api/article/{id}": {
      "get": { "summary": "Fetch one article", "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ], "responses": { "200": { "description": "article returned" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update an article (full payload required)", "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ], "responses": { "200": { "description": "article updated" }, "400": { "description": "validation failed" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete an article", "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ], "responses": { "200": { "description": "deleted snapshot returned" }, "404": { "description": "not found" } } }
    },
    "/api/upload-image/{id}": {
      "post": { "summary": "Attach an uploaded image (multipart field 'image'; png/jpg/jpeg/gif)", "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ], "responses": { "200": { "description": "image attached" }, "400": { "description": "invalid image type" }, "404": { "description": "missing file or article" } } }
    },
    "/api/image/{file}": {
      "get": { "summary": "Resolve a stored file name to its retrieval URL", "parameters": [ { "name": "file", "in": "path", "required": true, "schema": {"type":"string"} } ], "responses": { "200": { "description": "URL returned" } } }
    },
    "/api/searcher/{search}": {
      "get": { "summary": "Substring search over title and content", "parameters": [ { "name": "search", "in": "path", "required": true, "schema": {"type":"string"} } ], "responses": { "200": { "description": "matches returned" }, "404": { "description": "no matches" } } }
    }
  }
}`
