// Package app wires configuration, content and rendering into a runnable site.
package app

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"avash.dev/internal/config"
	"avash.dev/internal/content"
	"avash.dev/internal/export"
	"avash.dev/internal/handlers"
	"avash.dev/internal/pages"
	"avash.dev/internal/render"
	"avash.dev/internal/services"
)

// App holds the loaded site and its dependencies
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Catalog  *content.Catalog
	Pages    *pages.Store
	Site     *services.SiteService
	Renderer *render.Renderer
}

// New loads the catalog and pages selected by cfg and parses the templates
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	catalog, err := loadCatalog(cfg.Content.ProjectsFile)
	if err != nil {
		return nil, err
	}

	store, err := pages.Load(pagesFS(cfg.Content.PagesDir))
	if err != nil {
		return nil, err
	}

	renderer, err := render.New(render.Site{
		Title:   cfg.Site.Title,
		BaseURL: cfg.Site.BaseURL,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Content loaded",
		zap.Int("projects", catalog.Len()),
		zap.Int("pages", store.Len()),
		zap.String("projects_file", cfg.Content.ProjectsFile),
		zap.String("pages_dir", cfg.Content.PagesDir),
	)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Catalog:  catalog,
		Pages:    store,
		Site:     services.NewSiteService(content.DefaultHero(), services.NewProjectService(catalog), store),
		Renderer: renderer,
	}, nil
}

// Handler returns the HTTP handler serving the site
func (a *App) Handler() http.Handler {
	return handlers.SetupRoutes(a.Config, a.Site, a.Renderer, a.Logger)
}

// Exporter returns a static exporter for the site
func (a *App) Exporter() *export.Exporter {
	return export.NewExporter(a.Site, a.Renderer, a.Config.Content.StaticDir, a.Logger)
}

func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		return content.Default(), nil
	}
	catalog, err := content.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load project catalog: %w", err)
	}
	return catalog, nil
}

func pagesFS(dir string) fs.FS {
	if dir == "" {
		return pages.Embedded()
	}
	return os.DirFS(dir)
}
