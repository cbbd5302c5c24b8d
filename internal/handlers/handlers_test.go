package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"avash.dev/internal/config"
	"avash.dev/internal/content"
	"avash.dev/internal/models"
	"avash.dev/internal/pages"
	"avash.dev/internal/render"
	"avash.dev/internal/services"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "css"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "css", "site.css"), []byte("body{}"), 0644))

	store, err := pages.Load(pages.Embedded())
	require.NoError(t, err)
	renderer, err := render.New(render.Site{Title: "Avash", Year: 2026})
	require.NoError(t, err)

	cfg := &config.Config{Content: config.ContentConfig{StaticDir: staticDir}}
	site := services.NewSiteService(content.DefaultHero(), services.NewProjectService(content.Default()), store)

	return SetupRoutes(cfg, site, renderer, zap.NewNop())
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestListProjects(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/projects")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var projects []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	assert.Equal(t, content.DefaultProjects(), projects)
}

func TestGetProject(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/projects/1")
	require.Equal(t, http.StatusOK, rec.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
	assert.Equal(t, "Foodony", project.Title)
	assert.Contains(t, rec.Body.String(), `"imgSrc":"/static/images/projects/foodony.jpg"`)

	rec = get(t, router, "/api/projects/9")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rec.Body.String())

	rec = get(t, router, "/api/projects/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHero(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/hero")

	require.Equal(t, http.StatusOK, rec.Code)
	var hero models.Hero
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hero))
	assert.Equal(t, content.DefaultHero(), hero)
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHomePage(t *testing.T) {
	rec := get(t, newTestRouter(t), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `<a class="button" href="/about">Learn More</a>`)
	assert.Contains(t, rec.Body.String(), "Foodony Vendors")
}

func TestProjectsPage(t *testing.T) {
	rec := get(t, newTestRouter(t), "/projects")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<a href="https://github.com/rahataid" target="_blank" rel="noopener noreferrer">Rahat Anticipatory Action</a>`)
}

func TestContentPages(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/about", "/about/", "/about/index.html", "/blog/foodony"} {
		rec := get(t, router, target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
	assert.Contains(t, get(t, router, "/blog/foodony").Body.String(), "<h1>Foodony</h1>")
}

func TestNotFoundPage(t *testing.T) {
	rec := get(t, newTestRouter(t), "/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "<code>/missing</code>")
}

func TestStaticFiles(t *testing.T) {
	rec := get(t, newTestRouter(t), "/static/css/site.css")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
}

func TestHeadRequests(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/", "/projects", "/about", "/api/health"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}

func TestRootIndexServesHome(t *testing.T) {
	store, err := pages.Load(fstest.MapFS{
		"index.md": {Data: []byte("---\ntitle: Shadowed\n---\nnot the home page\n")},
	})
	require.NoError(t, err)
	renderer, err := render.New(render.Site{Title: "Avash", Year: 2026})
	require.NoError(t, err)
	site := services.NewSiteService(content.DefaultHero(), services.NewProjectService(content.Default()), store)
	router := SetupRoutes(&config.Config{}, site, renderer, zap.NewNop())

	rec := get(t, router, "/index.html")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<a class="button" href="/about">Learn More</a>`)
	assert.NotContains(t, rec.Body.String(), "not the home page")
}
