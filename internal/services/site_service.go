package services

import (
	"avash.dev/internal/models"
	"avash.dev/internal/pages"
)

// SiteService gathers everything the page routes serve
type SiteService struct {
	hero     models.Hero
	projects *ProjectService
	pages    *pages.Store
}

// NewSiteService creates a new SiteService
func NewSiteService(hero models.Hero, projects *ProjectService, store *pages.Store) *SiteService {
	return &SiteService{
		hero:     hero,
		projects: projects,
		pages:    store,
	}
}

// Hero returns the landing page greeting
func (s *SiteService) Hero() models.Hero {
	return s.hero
}

// Projects returns the project service
func (s *SiteService) Projects() *ProjectService {
	return s.projects
}

// Page returns the content page for a permalink
func (s *SiteService) Page(permalink string) (*pages.Page, bool) {
	return s.pages.Get(permalink)
}

// Routes lists every HTML route the site serves
func (s *SiteService) Routes() []string {
	routes := []string{"/", "/projects"}
	for _, p := range s.pages.All() {
		if p.Permalink == "/" || p.Permalink == "/projects" {
			continue
		}
		routes = append(routes, p.Permalink)
	}
	return routes
}
