package models

import "net/url"

// Project represents a showcased portfolio project
type Project struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ImgSrc      string `json:"imgSrc" yaml:"imgSrc"`
	Href        string `json:"href" yaml:"href"`
}

// IsExternal reports whether Href points off-site (absolute URL with a host)
func (p Project) IsExternal() bool {
	u, err := url.Parse(p.Href)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
