// Package content serves the widget's static guide pages from local
// markdown files with YAML front matter.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Page is a rendered guide page.
type Page struct {
	Slug      string
	Title     string
	Summary   string
	Version   string
	UpdatedAt time.Time
	// Body is markdown rendered to sanitized HTML.
	Body template.HTML
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	Version   string `yaml:"version"`
	UpdatedAt string `yaml:"updated_at"`
}

// Store loads pages from a directory of .md files and caches renders.
type Store struct {
	dir string

	mu    sync.RWMutex
	items map[string]cacheEntry
	ttl   time.Duration
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

var sanitizer = bluemonday.UGCPolicy()

// NewStore creates a page store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{
		dir:   strings.TrimSpace(dir),
		items: map[string]cacheEntry{},
		ttl:   5 * time.Minute,
	}
}

// SetCacheDuration overrides the in-memory cache duration (primarily for tests).
func (s *Store) SetCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	s.mu.Lock()
	s.ttl = d
	s.items = map[string]cacheEntry{}
	s.mu.Unlock()
}

// Page loads and renders the page for slug. Slugs are restricted to simple
// names; anything path-like is rejected.
func (s *Store) Page(slug string) (Page, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" || strings.ContainsAny(slug, "/\\.") {
		return Page{}, fmt.Errorf("content: invalid slug %q", slug)
	}

	s.mu.RLock()
	if e, ok := s.items[slug]; ok && time.Now().Before(e.expires) {
		s.mu.RUnlock()
		return e.page, nil
	}
	s.mu.RUnlock()

	raw, err := os.ReadFile(filepath.Join(s.dir, slug+".md"))
	if err != nil {
		return Page{}, fmt.Errorf("content: read %s: %w", slug, err)
	}
	page, err := render(slug, raw)
	if err != nil {
		return Page{}, err
	}

	s.mu.Lock()
	s.items[slug] = cacheEntry{page: page, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return page, nil
}

func render(slug string, raw []byte) (Page, error) {
	fm, body := splitFrontMatter(raw)
	var front frontMatter
	if len(fm) > 0 {
		if err := yaml.Unmarshal(fm, &front); err != nil {
			return Page{}, fmt.Errorf("content: front matter %s: %w", slug, err)
		}
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(body, &buf); err != nil {
		return Page{}, fmt.Errorf("content: render %s: %w", slug, err)
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())

	page := Page{
		Slug:    slug,
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Version: strings.TrimSpace(front.Version),
		Body:    template.HTML(safe),
	}
	if page.Title == "" {
		page.Title = slug
	}
	if ts := strings.TrimSpace(front.UpdatedAt); ts != "" {
		if t, err := time.Parse("2006-01-02", ts); err == nil {
			page.UpdatedAt = t
		}
	}
	return page, nil
}

// splitFrontMatter separates a leading "---" YAML block from the body.
func splitFrontMatter(raw []byte) (fm, body []byte) {
	const marker = "---"
	text := string(raw)
	if !strings.HasPrefix(text, marker) {
		return nil, raw
	}
	rest := text[len(marker):]
	end := strings.Index(rest, "\n"+marker)
	if end == -1 {
		return nil, raw
	}
	fm = []byte(rest[:end])
	body = []byte(strings.TrimPrefix(rest[end+1+len(marker):], "\n"))
	return fm, body
}
