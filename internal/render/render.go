// Package render turns site content into HTML using the templates embedded
// in the binary.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"avash.dev/internal/models"
	"avash.dev/internal/pages"
)

//go:embed templates
var templateFS embed.FS

// Site holds the values shared by every page layout
type Site struct {
	Title   string
	BaseURL string
	Year    int
}

// pageData is the root value handed to page templates
type pageData struct {
	Site      Site
	Title     string
	Path      string
	Canonical string
	Hero     models.Hero
	Projects []models.Project
	Page     *pages.Page
}

// Renderer executes the fragment and page templates
type Renderer struct {
	site     Site
	partials *template.Template
	pages    map[string]*template.Template
}

// New parses the embedded layout, partials and page templates.
// Each page gets its own clone of the base set so that every page can
// define its own "content" block.
func New(site Site) (*Renderer, error) {
	base, err := template.ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout and partials: %w", err)
	}

	pageFiles, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list page templates: %w", err)
	}

	site.BaseURL = strings.TrimSuffix(site.BaseURL, "/")

	r := &Renderer{
		site:     site,
		partials: base,
		pages:    make(map[string]*template.Template, len(pageFiles)),
	}
	for _, file := range pageFiles {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base templates: %w", err)
		}
		tmpl, err := clone.ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
		r.pages[path.Base(file)] = tmpl
	}

	return r, nil
}

// RenderHero writes the hero banner fragment
func (r *Renderer) RenderHero(w io.Writer, hero models.Hero) error {
	return execute(w, r.partials, "hero", hero)
}

// RenderProjects writes one card per project, in the given order
func (r *Renderer) RenderProjects(w io.Writer, projects []models.Project) error {
	return execute(w, r.partials, "projects", projects)
}

// RenderHome writes the landing page
func (r *Renderer) RenderHome(w io.Writer, hero models.Hero, projects []models.Project) error {
	return r.renderPage(w, "home.html", pageData{
		Path:     "/",
		Hero:     hero,
		Projects: projects,
	})
}

// RenderProjectsPage writes the full project listing page
func (r *Renderer) RenderProjectsPage(w io.Writer, projects []models.Project) error {
	return r.renderPage(w, "project_list.html", pageData{
		Title:    "Projects",
		Path:     "/projects",
		Projects: projects,
	})
}

// RenderContentPage writes a markdown page inside the layout
func (r *Renderer) RenderContentPage(w io.Writer, page *pages.Page) error {
	return r.renderPage(w, "page.html", pageData{
		Title: page.Title,
		Path:  page.Permalink,
		Page:  page,
	})
}

// RenderNotFound writes the 404 page for path
func (r *Renderer) RenderNotFound(w io.Writer, urlPath string) error {
	return r.renderPage(w, "not_found.html", pageData{
		Title: "Not Found",
		Path:  urlPath,
	})
}

func (r *Renderer) renderPage(w io.Writer, name string, data pageData) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("page template %s not found", name)
	}
	data.Site = r.site
	if r.site.BaseURL != "" && name != "not_found.html" {
		data.Canonical = r.site.BaseURL + data.Path
	}
	return execute(w, tmpl, "layout", data)
}

// execute renders into a buffer first so a failed template never leaves
// half a page in w
func execute(w io.Writer, tmpl *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
