package content

import "avash.dev/internal/models"

// DefaultHero returns the landing page greeting
func DefaultHero() models.Hero {
	return models.Hero{
		Greeting: "Hi, I'm Avash 👋",
		Tagline:  "I craft solutions for the web and I write.",
		CTA: models.Link{
			Label: "Learn More",
			Href:  "/about",
		},
	}
}
