package services

import (
	"errors"
	"fmt"

	"avash.dev/internal/content"
	"avash.dev/internal/models"
)

// ErrProjectNotFound is returned for a position outside the catalog
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	catalog *content.Catalog
}

// NewProjectService creates a new ProjectService
func NewProjectService(catalog *content.Catalog) *ProjectService {
	return &ProjectService{catalog: catalog}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	return s.catalog.All()
}

// GetByIndex returns the project at a catalog position
func (s *ProjectService) GetByIndex(index int) (models.Project, error) {
	project, ok := s.catalog.At(index)
	if !ok {
		return models.Project{}, fmt.Errorf("%w: index %d", ErrProjectNotFound, index)
	}
	return project, nil
}

// Count returns the number of projects
func (s *ProjectService) Count() int {
	return s.catalog.Len()
}
