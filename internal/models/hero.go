package models

// Link is a labelled navigation target
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Hero is the landing page greeting block
type Hero struct {
	Greeting string `json:"greeting"`
	Tagline  string `json:"tagline"`
	CTA      Link   `json:"cta"`
}
