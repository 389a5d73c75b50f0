package content

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one learning-content document loaded from the content directory.
type Entry struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags,omitempty"`
	Dimensions []string `json:"dimensions,omitempty"`
	XPReward   int      `json:"xp_reward"`
	Body       string   `json:"body,omitempty"`
}

type frontmatter struct {
	Title      string   `yaml:"title"`
	Slug       string   `yaml:"slug"`
	Tags       []string `yaml:"tags"`
	Dimensions []string `yaml:"dimensions"`
	XPReward   int      `yaml:"xp_reward"`
}

// Library is the in-memory index of all loaded entries.
type Library struct {
	bySlug  map[string]*Entry
	ordered []*Entry
}

// LoadLibrary walks dir for .mdx files and parses their frontmatter.
// Files that fail to parse are skipped with a warning rather than
// failing the whole load.
func LoadLibrary(dir string) (*Library, error) {
	lib := &Library{bySlug: make(map[string]*Entry)}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".mdx") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		entry, err := parseEntry(raw, d.Name())
		if err != nil {
			log.Printf("WARN: skipping %s: %v", path, err)
			return nil
		}

		if _, dup := lib.bySlug[entry.Slug]; dup {
			log.Printf("WARN: skipping %s: duplicate slug %q", path, entry.Slug)
			return nil
		}
		lib.bySlug[entry.Slug] = entry
		lib.ordered = append(lib.ordered, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk content dir: %w", err)
	}

	sort.Slice(lib.ordered, func(i, j int) bool {
		return lib.ordered[i].Slug < lib.ordered[j].Slug
	})
	log.Printf("[content] loaded %d entries from %s", len(lib.ordered), dir)
	return lib, nil
}

// parseEntry splits YAML frontmatter (between --- markers) from the
// MDX body.
func parseEntry(raw []byte, filename string) (*Entry, error) {
	text := string(raw)
	if !strings.HasPrefix(text, "---") {
		return nil, fmt.Errorf("missing frontmatter")
	}

	rest := strings.TrimPrefix(text, "---")
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return nil, fmt.Errorf("unterminated frontmatter")
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(rest[:idx]), &fm); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if fm.Title == "" {
		return nil, fmt.Errorf("frontmatter missing title")
	}
	slug := fm.Slug
	if slug == "" {
		slug = strings.TrimSuffix(filename, ".mdx")
	}

	body := rest[idx+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")

	return &Entry{
		Slug:       slug,
		Title:      fm.Title,
		Tags:       fm.Tags,
		Dimensions: fm.Dimensions,
		XPReward:   fm.XPReward,
		Body:       body,
	}, nil
}

// List returns all entries without bodies.
func (l *Library) List() []Entry {
	out := make([]Entry, 0, len(l.ordered))
	for _, e := range l.ordered {
		summary := *e
		summary.Body = ""
		out = append(out, summary)
	}
	return out
}

// Get returns the full entry for a slug.
func (l *Library) Get(slug string) (*Entry, bool) {
	e, ok := l.bySlug[slug]
	return e, ok
}

func (l *Library) Size() int {
	return len(l.ordered)
}

// Recommend ranks entries by how many of the given profile poles they
// declare relevance for. Entries matching nothing are excluded.
func (l *Library) Recommend(poles []string, limit int) []Entry {
	if limit <= 0 {
		limit = 10
	}
	poleSet := make(map[string]bool, len(poles))
	for _, p := range poles {
		poleSet[strings.ToUpper(p)] = true
	}

	type scored struct {
		entry *Entry
		score int
	}
	var candidates []scored
	for _, e := range l.ordered {
		score := 0
		for _, d := range e.Dimensions {
			if poleSet[strings.ToUpper(d)] {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{e, score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		summary := *c.entry
		summary.Body = ""
		out = append(out, summary)
	}
	return out
}
