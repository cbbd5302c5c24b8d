package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"avash.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	respondJSON(w, h.logger, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{index}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid project index")
		return
	}

	project, err := h.projectService.GetByIndex(index)
	if err != nil {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}
