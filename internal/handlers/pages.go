package handlers

import (
	"bytes"
	"net/http"
	"path"
	"strings"

	"go.uber.org/zap"

	"avash.dev/internal/render"
	"avash.dev/internal/services"
)

// PageHandler serves the HTML pages
type PageHandler struct {
	site     *services.SiteService
	renderer *render.Renderer
	logger   *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(site *services.SiteService, renderer *render.Renderer, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		site:     site,
		renderer: renderer,
		logger:   logger,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := h.renderer.RenderHome(&buf, h.site.Hero(), h.site.Projects().GetAll())
	h.writeHTML(w, r, http.StatusOK, &buf, err)
}

// Projects handles GET /projects
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := h.renderer.RenderProjectsPage(&buf, h.site.Projects().GetAll())
	h.writeHTML(w, r, http.StatusOK, &buf, err)
}

// ContentPage serves markdown pages for any unmatched path, or the 404 page
func (h *PageHandler) ContentPage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		permalink := cleanPath(r.URL.Path)
		if permalink == "/" {
			h.Home(w, r)
			return
		}
		if page, ok := h.site.Page(permalink); ok {
			err := h.renderer.RenderContentPage(&buf, page)
			h.writeHTML(w, r, http.StatusOK, &buf, err)
			return
		}
	}

	err := h.renderer.RenderNotFound(&buf, r.URL.Path)
	h.writeHTML(w, r, http.StatusNotFound, &buf, err)
}

// GetHero handles GET /api/hero
func (h *PageHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.site.Hero())
}

func (h *PageHandler) writeHTML(w http.ResponseWriter, r *http.Request, status int, buf *bytes.Buffer, err error) {
	if err != nil {
		h.logger.Error("Failed to render page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("Failed to write response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// cleanPath maps /about/ and /about/index.html to /about, and /index.html to /
func cleanPath(p string) string {
	p = strings.TrimSuffix(p, "/index.html")
	p = path.Clean("/" + p)
	return p
}
