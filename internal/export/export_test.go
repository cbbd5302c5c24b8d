package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"avash.dev/internal/content"
	"avash.dev/internal/models"
	"avash.dev/internal/pages"
	"avash.dev/internal/render"
	"avash.dev/internal/services"
)

func newExporter(t *testing.T, staticDir string) *Exporter {
	t.Helper()

	store, err := pages.Load(pages.Embedded())
	require.NoError(t, err)
	renderer, err := render.New(render.Site{Title: "Avash", Year: 2026})
	require.NoError(t, err)
	site := services.NewSiteService(content.DefaultHero(), services.NewProjectService(content.Default()), store)

	return NewExporter(site, renderer, staticDir, zap.NewNop())
}

func TestExport(t *testing.T) {
	staticDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "images", "projects"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "images", "projects", "rahat.jpg"), []byte("jpg"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, ".DS_Store"), []byte("x"), 0644))

	out := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.MkdirAll(out, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "stale.html"), []byte("old"), 0644))

	result, err := newExporter(t, staticDir).Export(context.Background(), out)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Pages)
	assert.Equal(t, 1, result.StaticFiles)

	for _, f := range []string{
		"index.html",
		"projects/index.html",
		"about/index.html",
		"blog/foodony/index.html",
		"blog/stage4all/index.html",
		"404.html",
		"static/images/projects/rahat.jpg",
	} {
		assert.FileExists(t, filepath.Join(out, f))
	}
	assert.NoFileExists(t, filepath.Join(out, "stale.html"))
	assert.NoFileExists(t, filepath.Join(out, "static", ".DS_Store"))

	home, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), `<a class="button" href="/about">Learn More</a>`)

	data, err := os.ReadFile(filepath.Join(out, "api", "projects.json"))
	require.NoError(t, err)
	var projects []models.Project
	require.NoError(t, json.Unmarshal(data, &projects))
	assert.Equal(t, content.DefaultProjects(), projects)
}

func TestExport_MissingStaticDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")

	result, err := newExporter(t, filepath.Join(t.TempDir(), "nope")).Export(context.Background(), out)
	require.NoError(t, err)

	assert.Zero(t, result.StaticFiles)
	assert.FileExists(t, filepath.Join(out, "index.html"))
}

func TestExport_RefusesUnsafeDir(t *testing.T) {
	e := newExporter(t, "")

	for _, dir := range []string{"", ".", "/"} {
		_, err := e.Export(context.Background(), dir)
		assert.Error(t, err, dir)
	}
}

func TestExport_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newExporter(t, "").Export(ctx, filepath.Join(t.TempDir(), "public"))
	assert.ErrorIs(t, err, context.Canceled)
}
