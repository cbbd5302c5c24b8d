package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"avash.dev/internal/config"
	"avash.dev/internal/middleware"
	"avash.dev/internal/render"
	"avash.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, site *services.SiteService, renderer *render.Renderer, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.GetHead)

	// Initialize handlers
	projectHandler := NewProjectHandler(site.Projects(), logger)
	pageHandler := NewPageHandler(site, renderer, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{index}", projectHandler.GetProject)
		r.Get("/hero", pageHandler.GetHero)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.Content.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// HTML pages
	r.Get("/", pageHandler.Home)
	r.Get("/projects", pageHandler.Projects)
	r.NotFound(pageHandler.ContentPage)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
