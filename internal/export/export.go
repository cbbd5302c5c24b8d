// Package export writes the whole site to a directory of static files.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"avash.dev/internal/render"
	"avash.dev/internal/services"
)

// Exporter renders every site route to disk
type Exporter struct {
	site      *services.SiteService
	renderer  *render.Renderer
	staticDir string
	logger    *zap.Logger
}

// Result summarizes an export run
type Result struct {
	Pages       int
	StaticFiles int
}

// NewExporter creates a new Exporter
func NewExporter(site *services.SiteService, renderer *render.Renderer, staticDir string, logger *zap.Logger) *Exporter {
	return &Exporter{
		site:      site,
		renderer:  renderer,
		staticDir: staticDir,
		logger:    logger,
	}
}

// Export cleans outputDir and writes every route as <route>/index.html,
// the JSON API snapshots and the static assets
func (e *Exporter) Export(ctx context.Context, outputDir string) (*Result, error) {
	if outputDir == "" || filepath.Clean(outputDir) == "." || filepath.Clean(outputDir) == "/" {
		return nil, fmt.Errorf("refusing to export into %q", outputDir)
	}

	e.logger.Info("Cleaning output directory", zap.String("dir", outputDir))
	if err := os.RemoveAll(outputDir); err != nil {
		return nil, fmt.Errorf("failed to remove output directory %s: %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	result := &Result{}
	for _, route := range e.site.Routes() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := e.renderRoute(&buf, route); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", route, err)
		}

		target := filepath.Join(outputDir, filepath.FromSlash(route), "index.html")
		if err := writeFile(target, buf.Bytes()); err != nil {
			return nil, err
		}
		e.logger.Debug("Generated page", zap.String("route", route), zap.String("file", target))
		result.Pages++
	}

	var notFound bytes.Buffer
	if err := e.renderer.RenderNotFound(&notFound, "/404"); err != nil {
		return nil, fmt.Errorf("failed to render 404 page: %w", err)
	}
	if err := writeFile(filepath.Join(outputDir, "404.html"), notFound.Bytes()); err != nil {
		return nil, err
	}

	if err := e.writeAPI(outputDir); err != nil {
		return nil, err
	}

	copied, err := e.copyStatic(filepath.Join(outputDir, "static"))
	if err != nil {
		return nil, err
	}
	result.StaticFiles = copied

	e.logger.Info("Export complete",
		zap.String("dir", outputDir),
		zap.Int("pages", result.Pages),
		zap.Int("static_files", result.StaticFiles),
	)
	return result, nil
}

func (e *Exporter) renderRoute(w io.Writer, route string) error {
	switch route {
	case "/":
		return e.renderer.RenderHome(w, e.site.Hero(), e.site.Projects().GetAll())
	case "/projects":
		return e.renderer.RenderProjectsPage(w, e.site.Projects().GetAll())
	}

	page, ok := e.site.Page(route)
	if !ok {
		return fmt.Errorf("no page for route %s", route)
	}
	return e.renderer.RenderContentPage(w, page)
}

func (e *Exporter) writeAPI(outputDir string) error {
	snapshots := map[string]any{
		"projects.json": e.site.Projects().GetAll(),
		"hero.json":     e.site.Hero(),
	}
	for name, v := range snapshots {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", name, err)
		}
		if err := writeFile(filepath.Join(outputDir, "api", name), data); err != nil {
			return err
		}
	}
	return nil
}

// copyStatic copies the static directory into dst.
// A missing static directory is skipped.
func (e *Exporter) copyStatic(dst string) (int, error) {
	if e.staticDir == "" {
		return 0, nil
	}
	if _, err := os.Stat(e.staticDir); errors.Is(err, os.ErrNotExist) {
		e.logger.Warn("Static directory not found, skipping copy", zap.String("dir", e.staticDir))
		return 0, nil
	}

	copied := 0
	err := filepath.WalkDir(e.staticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(e.staticDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		if strings.HasPrefix(d.Name(), ".") && rel != "." {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("failed to copy static assets: %w", err)
	}
	return copied, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
