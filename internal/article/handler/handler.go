package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jvdeveloper/blog-api/internal/article"
	"github.com/jvdeveloper/blog-api/internal/article/service"
	"github.com/jvdeveloper/blog-api/internal/media"
	"github.com/jvdeveloper/blog-api/pkg/logger"
	"github.com/jvdeveloper/blog-api/pkg/metrics"
)

// maxImageBytes caps the multipart image payload read into memory.
const maxImageBytes = 10 << 20

// ArticleHandler translates HTTP requests into article/media operations and
// maps every outcome onto the {status, mensaje, ...} response envelope.
// Gateways are injected; handlers hold no mutable state of their own.
type ArticleHandler struct {
	svc   service.Service
	media media.Gateway
}

func New(svc service.Service, m media.Gateway) *ArticleHandler {
	return &ArticleHandler{svc: svc, media: m}
}

// Register mounts the article routes under the /api prefix.
func (h *ArticleHandler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/create-article", h.Create)
	api.GET("/articles", h.List)
	api.GET("/articles/:recents", h.List)
	api.GET("/article/:id", h.Get)
	api.DELETE("/article/:id", h.Delete)
	api.PUT("/article/:id", h.Update)
	api.POST("/upload-image/:id", h.UploadImage)
	api.GET("/image/:file", h.Image)
	api.GET("/searcher/:search", h.Search)
}

type articlePayload struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Date    *time.Time `json:"date,omitempty"`
	Image   string     `json:"image,omitempty"`
}

func errorBody(mensaje string) gin.H {
	return gin.H{"status": "error", "mensaje": mensaje}
}

// Create handles POST /api/create-article.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req articlePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}
	if err := article.Validate(req.Title, req.Content); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	a := &article.Article{Title: req.Title, Content: req.Content, Image: req.Image}
	if req.Date != nil {
		a.Date = *req.Date
	}
	out, err := h.svc.Create(c.Request.Context(), a)
	if err != nil {
		logger.Errorf("create article: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody("could not save the article, try again later"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"article": out,
		"mensaje": "article created successfully",
	})
}

// List handles GET /api/articles and GET /api/articles/:recents. Any non-empty
// path segment turns on the two-most-recent restriction. Zero matches are
// reported as not found (existing clients depend on this).
func (h *ArticleHandler) List(c *gin.Context) {
	recents := c.Param("recents") != ""
	articles, err := h.svc.List(c.Request.Context(), recents)
	if err != nil {
		logger.Errorf("list articles: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody("could not list articles"))
		return
	}
	if len(articles) == 0 {
		c.JSON(http.StatusNotFound, errorBody("no articles found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"count":    len(articles),
		"articles": articles,
	})
}

// Get handles GET /api/article/:id.
func (h *ArticleHandler) Get(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, article.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorBody("article not found"))
			return
		}
		logger.Errorf("get article: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody("could not fetch the article"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "article": a})
}

// Delete handles DELETE /api/article/:id and returns the deleted snapshot.
func (h *ArticleHandler) Delete(c *gin.Context) {
	a, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, article.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorBody("article not found"))
			return
		}
		logger.Errorf("delete article: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody("could not delete the article"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"mensaje": "article deleted",
		"article": a,
	})
}

// Update handles PUT /api/article/:id. The full payload is validated exactly
// like a create: updating a single field is rejected.
func (h *ArticleHandler) Update(c *gin.Context) {
	var req articlePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}
	if err := article.Validate(req.Title, req.Content); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	patch := article.Patch{Title: req.Title, Content: req.Content, Date: req.Date, Image: req.Image}
	a, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, article.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorBody("article to update not found"))
			return
		}
		logger.Errorf("update article: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody("could not update the article"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"article": a,
		"mensaje": "article updated successfully",
	})
}

// UploadImage handles POST /api/upload-image/:id. The image is uploaded
// first and only then attached; when the target article is missing the
// stored object stays behind (accepted inefficiency).
func (h *ArticleHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody("invalid image"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody("invalid image"))
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody("invalid image"))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	url, err := h.media.Upload(c.Request.Context(), data, mimeType)
	if err != nil {
		if errors.Is(err, media.ErrInvalidMedia) {
			metrics.ImageUploads.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, errorBody("invalid image"))
			return
		}
		metrics.ImageUploads.WithLabelValues("failed").Inc()
		logger.Errorf("upload image: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody("could not upload the image"))
		return
	}
	metrics.ImageUploads.WithLabelValues("accepted").Inc()

	a, err := h.svc.AttachImage(c.Request.Context(), c.Param("id"), url)
	if err != nil {
		if errors.Is(err, article.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorBody("article to update not found"))
			return
		}
		logger.Errorf("attach image: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody("could not update the article"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"article": a,
		"mensaje": "article updated successfully",
		"file":    fileHeader.Filename,
	})
}

// Image handles GET /api/image/:file. Pure URL construction; the file is not
// checked for existence.
func (h *ArticleHandler) Image(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"mensaje":  "image resolved",
		"imageUrl": h.media.ResolveURL(c.Param("file")),
	})
}

// Search handles GET /api/searcher/:search — case-insensitive substring match
// over title and content. An empty result set is reported as not found, same
// convention as List.
func (h *ArticleHandler) Search(c *gin.Context) {
	found, err := h.svc.Search(c.Request.Context(), c.Param("search"))
	if err != nil {
		logger.Errorf("search articles: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody("could not search articles"))
		return
	}
	if len(found) == 0 {
		c.JSON(http.StatusNotFound, errorBody("no articles found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "search": found})
}
