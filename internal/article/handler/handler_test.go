package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jvdeveloper/blog-api/internal/article/repository"
	"github.com/jvdeveloper/blog-api/internal/article/service"
	"github.com/jvdeveloper/blog-api/internal/media"
	"github.com/stretchr/testify/require"
)

const placeholder = "https://img.example/placeholder.jpg"

func newTestRouter(t *testing.T) (*gin.Engine, *media.FakeGateway) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gin.New()
	svc := service.New(repository.NewMemoryRepo(), placeholder)
	mg := &media.FakeGateway{URL: "https://img.example/uploaded.png"}
	New(svc, mg).Register(g)
	return g, mg
}

func doJSON(t *testing.T, g *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return w, out
}

func createArticle(t *testing.T, g *gin.Engine, title, content string) string {
	t.Helper()
	w, out := doJSON(t, g, http.MethodPost, "/api/create-article",
		`{"title":`+jsonStr(title)+`,"content":`+jsonStr(content)+`}`)
	require.Equal(t, http.StatusOK, w.Code)
	a := out["article"].(map[string]interface{})
	return a["id"].(string)
}

func jsonStr(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestCreateArticle(t *testing.T) {
	g, _ := newTestRouter(t)

	w, out := doJSON(t, g, http.MethodPost, "/api/create-article", `{"title":"Hi","content":"Body"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", out["status"])

	a := out["article"].(map[string]interface{})
	require.NotEmpty(t, a["id"])
	require.Equal(t, "Hi", a["title"])
	require.Equal(t, placeholder, a["image"])
	_, err := time.Parse(time.RFC3339, a["date"].(string))
	require.NoError(t, err)
}

func TestCreateArticleValidation(t *testing.T) {
	g, _ := newTestRouter(t)

	cases := []string{
		`{"title":"a","content":"Body"}`,
		`{"title":"","content":"Body"}`,
		`{"title":"Hello"}`,
		`{"content":"Body"}`,
		`not json`,
	}
	for _, body := range cases {
		w, out := doJSON(t, g, http.MethodPost, "/api/create-article", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		require.Equal(t, "error", out["status"])
		require.NotEmpty(t, out["mensaje"])
	}
}

func TestGetArticle(t *testing.T) {
	g, _ := newTestRouter(t)
	id := createArticle(t, g, "Hello", "first")

	w, out := doJSON(t, g, http.MethodGet, "/api/article/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", out["status"])
	require.Equal(t, "Hello", out["article"].(map[string]interface{})["title"])

	w, out = doJSON(t, g, http.MethodGet, "/api/article/652f1a2b3c4d5e6f70718293", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "error", out["status"])

	// malformed id behaves exactly like a missing one
	w, _ = doJSON(t, g, http.MethodGet, "/api/article/not-an-id", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListArticles(t *testing.T) {
	g, _ := newTestRouter(t)

	// empty store reported as not found (legacy client contract)
	w, out := doJSON(t, g, http.MethodGet, "/api/articles", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "error", out["status"])

	for _, title := range []string{"first", "second", "third"} {
		createArticle(t, g, title, "body of "+title)
		time.Sleep(2 * time.Millisecond) // distinct creation timestamps
	}

	w, out = doJSON(t, g, http.MethodGet, "/api/articles", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(3), out["count"])

	w, out = doJSON(t, g, http.MethodGet, "/api/articles/recents", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(2), out["count"])
	articles := out["articles"].([]interface{})
	require.Len(t, articles, 2)
	require.Equal(t, "third", articles[0].(map[string]interface{})["title"])
	require.Equal(t, "second", articles[1].(map[string]interface{})["title"])
}

func TestUpdateArticle(t *testing.T) {
	g, _ := newTestRouter(t)
	id := createArticle(t, g, "Hello", "first")

	// partial payload rejected: update validates like create
	w, out := doJSON(t, g, http.MethodPut, "/api/article/"+id, `{"title":"New title"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "error", out["status"])

	w, out = doJSON(t, g, http.MethodPut, "/api/article/"+id, `{"title":"New title","content":"new body"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", out["status"])
	require.NotEmpty(t, out["mensaje"])
	a := out["article"].(map[string]interface{})
	require.Equal(t, "New title", a["title"])
	require.Equal(t, "new body", a["content"])

	w, _ = doJSON(t, g, http.MethodPut, "/api/article/652f1a2b3c4d5e6f70718293", `{"title":"ab","content":"c"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteArticle(t *testing.T) {
	g, _ := newTestRouter(t)
	id := createArticle(t, g, "Hello", "first")

	w, out := doJSON(t, g, http.MethodDelete, "/api/article/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", out["status"])
	// deleted snapshot comes back
	require.Equal(t, id, out["article"].(map[string]interface{})["id"])

	// subsequent fetch by the same id is a 404
	w, _ = doJSON(t, g, http.MethodGet, "/api/article/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, g, http.MethodDelete, "/api/article/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchArticles(t *testing.T) {
	g, _ := newTestRouter(t)
	createArticle(t, g, "Go Patterns", "all about interfaces")
	createArticle(t, g, "Cooking", "paella for beginners")

	w, out := doJSON(t, g, http.MethodGet, "/api/searcher/PATTERNS", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", out["status"])
	found := out["search"].([]interface{})
	require.Len(t, found, 1)
	require.Equal(t, "Go Patterns", found[0].(map[string]interface{})["title"])

	// content matches too
	w, out = doJSON(t, g, http.MethodGet, "/api/searcher/paella", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, out["search"].([]interface{}), 1)

	w, out = doJSON(t, g, http.MethodGet, "/api/searcher/nomatch", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "error", out["status"])
}

func multipartImage(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	g, mg := newTestRouter(t)
	id := createArticle(t, g, "Hello", "first")

	body, ct := multipartImage(t, "image", "photo.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image/"+id, body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, "success", out["status"])
	require.Equal(t, "photo.png", out["file"])
	require.Equal(t, mg.URL, out["article"].(map[string]interface{})["image"])
	require.Equal(t, 1, mg.Uploads)
}

func TestUploadImageRejectsBadMIME(t *testing.T) {
	g, mg := newTestRouter(t)
	id := createArticle(t, g, "Hello", "first")

	body, ct := multipartImage(t, "image", "notes.txt", "text/plain", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image/"+id, body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, mg.Uploads)

	// the article keeps its placeholder image
	_, out := doJSON(t, g, http.MethodGet, "/api/article/"+id, "")
	require.Equal(t, placeholder, out["article"].(map[string]interface{})["image"])
}

func TestUploadImageMissingFile(t *testing.T) {
	g, _ := newTestRouter(t)
	id := createArticle(t, g, "Hello", "first")

	req := httptest.NewRequest(http.MethodPost, "/api/upload-image/"+id, strings.NewReader(""))
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadImageMissingArticle(t *testing.T) {
	g, mg := newTestRouter(t)

	body, ct := multipartImage(t, "image", "photo.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image/652f1a2b3c4d5e6f70718293", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	// upload happened before the miss; the stored object is orphaned
	require.Equal(t, 1, mg.Uploads)
}

func TestImageURL(t *testing.T) {
	g, mg := newTestRouter(t)

	w, out := doJSON(t, g, http.MethodGet, "/api/image/123.png", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", out["status"])
	require.Equal(t, mg.ResolveURL("123.png"), out["imageUrl"])
}
