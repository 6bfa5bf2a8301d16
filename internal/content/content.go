package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// ErrNotFound marks a page slug with no backing markdown file.
var ErrNotFound = errors.New("content: page not found")

const defaultCacheTTL = 5 * time.Minute

// Page is a static info page (nosotros, envios, ...) sourced from local
// markdown with YAML front matter.
type Page struct {
	Slug      string
	Title     string
	Summary   string
	Body      template.HTML
	UpdatedAt time.Time
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	UpdatedAt string `yaml:"updated_at"`
}

// Store reads and caches rendered pages from a content directory.
type Store struct {
	dir      string
	policy   *bluemonday.Policy
	markdown goldmark.Markdown

	mu    sync.RWMutex
	ttl   time.Duration
	cache map[string]cacheEntry
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// NewStore builds a page store over dir.
func NewStore(dir string) *Store {
	if strings.TrimSpace(dir) == "" {
		dir = "content"
	}
	return &Store{
		dir:      dir,
		policy:   bluemonday.UGCPolicy(),
		markdown: goldmark.New(),
		ttl:      defaultCacheTTL,
		cache:    map[string]cacheEntry{},
	}
}

// SetCacheDuration overrides the cache duration (primarily for tests).
func (s *Store) SetCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	s.mu.Lock()
	s.ttl = d
	s.mu.Unlock()
}

// Get returns the rendered page for slug, reading from disk when the cache
// is cold. Unknown or path-escaping slugs return ErrNotFound.
func (s *Store) Get(slug string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}

	s.mu.RLock()
	entry, ok := s.cache[slug]
	s.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.page, nil
	}

	page, err := s.read(slug)
	if err != nil {
		return Page{}, err
	}
	s.mu.Lock()
	s.cache[slug] = cacheEntry{page: page, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return page, nil
}

func (s *Store) read(slug string) (Page, error) {
	file := filepath.Join(s.dir, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}

	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(body), &buf); err != nil {
		return Page{}, fmt.Errorf("content: render %s: %w", file, err)
	}
	safe := s.policy.SanitizeBytes(buf.Bytes())

	page := Page{
		Slug:    slug,
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    template.HTML(safe),
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	page.UpdatedAt = parseDate(front.UpdatedAt)
	if page.UpdatedAt.IsZero() {
		if info, err := os.Stat(file); err == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\uFEFF")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") {
		return ""
	}
	if strings.ContainsRune(slug, os.PathSeparator) || strings.ContainsRune(slug, '/') {
		return ""
	}
	return slug
}
