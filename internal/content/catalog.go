// Package content holds the authored site content: the project catalog and
// the landing page hero.
package content

import (
	"errors"
	"fmt"
	"slices"

	"avash.dev/internal/models"
)

var defaultProjects = []models.Project{
	{
		Title:       "Rahat Anticipatory Action",
		Description: "Rahat Anticipatory Action is a project under the Rahat platform, an open-source, blockchain-based financial access platform designed to streamline humanitarian aid distribution. It distributes funds by predicting floods and sends automated early warnings in the form of SMS and IVR to the vulnerable communities of the flood prone area. Using blockchain, it ensures secure and transparent transactions, enabling efficient aid distribution through digital tokens.",
		ImgSrc:      "/static/images/projects/rahat.jpg",
		Href:        "https://github.com/rahataid",
	},
	{
		Title:       "Foodony",
		Description: "Foodony is an online food delivery platform designed to cater to the local demand for convenient and diverse meal options. This platform provides a seamless experience for ordering food, integrating a reliable payment system, real-time tracking of placed orders etc. Foodony ensures a hassle-free and enjoyable food ordering experience, connecting customers with their favorite local restaurants effortlessly.",
		ImgSrc:      "/static/images/projects/foodony.jpg",
		Href:        "/blog/foodony",
	},
	{
		Title:       "Foodony Vendors",
		Description: "Foodony Vendors is a platform designed for restaurants to work in tandem with the Foodony user application. It provides restaurants with instant order notifications and robust menu management tools, allowing them to easily update their offerings and highlight specials or promotions. Additionally, Foodony Vendors offers comprehensive reporting features, enabling restaurants to track sales performance and access customer feedback. This platform empowers restaurants to optimize their operations, enhance customer satisfaction, and drive business growth.",
		ImgSrc:      "/static/images/projects/foodony.jpg",
		Href:        "/blog/foodony",
	},
}

// DefaultProjects returns a copy of the built-in catalog, most relevant first
func DefaultProjects() []models.Project {
	return slices.Clone(defaultProjects)
}

// Catalog is an ordered, read-only sequence of projects.
// Order is display order; duplicate titles are allowed.
type Catalog struct {
	projects []models.Project
}

// NewCatalog creates a catalog from a copy of projects
func NewCatalog(projects []models.Project) *Catalog {
	return &Catalog{projects: slices.Clone(projects)}
}

// Default returns the built-in catalog
func Default() *Catalog {
	return &Catalog{projects: DefaultProjects()}
}

// All returns every project in catalog order
func (c *Catalog) All() []models.Project {
	return slices.Clone(c.projects)
}

// Len returns the number of projects
func (c *Catalog) Len() int {
	return len(c.projects)
}

// At returns the project at position i
func (c *Catalog) At(i int) (models.Project, bool) {
	if i < 0 || i >= len(c.projects) {
		return models.Project{}, false
	}
	return c.projects[i], true
}

// Validate reports every record with an empty field.
// Serving never calls it: a bad record is an authoring mistake to be caught
// by `portfolio check`, not a runtime failure.
func (c *Catalog) Validate() error {
	var errs []error
	for i, p := range c.projects {
		fields := []struct {
			name, value string
		}{
			{"title", p.Title},
			{"description", p.Description},
			{"imgSrc", p.ImgSrc},
			{"href", p.Href},
		}
		for _, f := range fields {
			if f.value == "" {
				errs = append(errs, fmt.Errorf("project %d (%q): empty %s", i, p.Title, f.name))
			}
		}
	}
	return errors.Join(errs...)
}
