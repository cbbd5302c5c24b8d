// Package pages loads markdown content pages (about, blog posts) and renders
// their bodies to HTML.
package pages

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed content
var embedded embed.FS

// ErrDuplicatePermalink is returned when two files map to the same URL
var ErrDuplicatePermalink = errors.New("duplicate permalink")

// Page is a rendered markdown page
type Page struct {
	Title     string
	Summary   string
	Date      time.Time
	Permalink string
	Source    string
	Body      template.HTML
}

type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Date    string `yaml:"date"`
}

// Store holds pages keyed by permalink
type Store struct {
	pages map[string]*Page
}

// Embedded returns the file system of the pages compiled into the binary
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "content")
	if err != nil {
		panic("pages: embedded content missing: " + err.Error())
	}
	return sub
}

// Load walks fsys and renders every .md file it finds
func Load(fsys fs.FS) (*Store, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	store := &Store{pages: make(map[string]*Page)}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), ".md") {
			return nil
		}

		page, err := loadPage(fsys, p, md)
		if err != nil {
			return err
		}
		if existing, ok := store.pages[page.Permalink]; ok {
			return fmt.Errorf("%w: %s (%s and %s)", ErrDuplicatePermalink, page.Permalink, existing.Source, p)
		}
		store.pages[page.Permalink] = page
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load pages: %w", err)
	}

	return store, nil
}

func loadPage(fsys fs.FS, p string, md goldmark.Markdown) (*Page, error) {
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter in %s: %w", p, err)
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", p, err)
	}

	page := &Page{
		Title:     fm.Title,
		Summary:   fm.Summary,
		Permalink: Permalink(p),
		Source:    p,
		Body:      template.HTML(buf.String()),
	}
	if page.Title == "" {
		page.Title = titleFromName(p)
	}
	if fm.Date != "" {
		date, err := parseDate(fm.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date in %s: %w", p, err)
		}
		page.Date = date
	}

	return page, nil
}

// Permalink maps a content-relative file path to its URL path.
// about.md -> /about, blog/foodony.md -> /blog/foodony, blog/index.md -> /blog
func Permalink(p string) string {
	p = strings.TrimSuffix(p, path.Ext(p))
	if path.Base(p) == "index" {
		p = path.Dir(p)
	}
	return path.Clean("/" + p)
}

func titleFromName(p string) string {
	base := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if base == "index" {
		base = path.Base(path.Dir(p))
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(base)
}

func parseDate(s string) (time.Time, error) {
	formats := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Get returns the page for a permalink
func (s *Store) Get(permalink string) (*Page, bool) {
	page, ok := s.pages[permalink]
	return page, ok
}

// All returns every page sorted by permalink
func (s *Store) All() []*Page {
	out := make([]*Page, 0, len(s.pages))
	for _, p := range s.pages {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Permalink < out[j].Permalink
	})
	return out
}

// Len returns the number of pages
func (s *Store) Len() int {
	return len(s.pages)
}
