package content

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

func fixtureLibrary(t *testing.T) *Library {
	t.Helper()
	dir := t.TempDir()

	writeFixture(t, dir, "deep-work.mdx", `---
title: Deep Work for Reflective Thinkers
slug: deep-work
tags: [focus, productivity]
dimensions: [I, J]
xp_reward: 20
---
# Deep Work

Protecting long stretches of uninterrupted time.
`)
	writeFixture(t, dir, "brainstorming.mdx", `---
title: Structured Brainstorming
tags: [creativity]
dimensions: [E, N]
xp_reward: 15
---
Ideas multiply out loud.
`)
	writeFixture(t, dir, "plain-notes.mdx", `---
title: Note Taking Basics
xp_reward: 10
---
No dimensions declared.
`)
	// Not an mdx file — must be ignored
	writeFixture(t, dir, "README.md", "not content")
	// Broken frontmatter — must be skipped, not fail the load
	writeFixture(t, dir, "broken.mdx", "no frontmatter here")

	lib, err := LoadLibrary(dir)
	if err != nil {
		t.Fatalf("LoadLibrary failed: %v", err)
	}
	return lib
}

func TestLoadLibrary(t *testing.T) {
	lib := fixtureLibrary(t)

	if lib.Size() != 3 {
		t.Fatalf("loaded %d entries, want 3", lib.Size())
	}

	e, ok := lib.Get("deep-work")
	if !ok {
		t.Fatal("deep-work not found")
	}
	if e.Title != "Deep Work for Reflective Thinkers" {
		t.Errorf("title = %q", e.Title)
	}
	if e.XPReward != 20 {
		t.Errorf("xp_reward = %d, want 20", e.XPReward)
	}
	if len(e.Dimensions) != 2 || e.Dimensions[0] != "I" {
		t.Errorf("dimensions = %v", e.Dimensions)
	}
	if e.Body == "" {
		t.Error("body should be preserved")
	}

	// Slug defaults to the filename when frontmatter omits it
	if _, ok := lib.Get("brainstorming"); !ok {
		t.Error("expected slug from filename for brainstorming.mdx")
	}
}

func TestListStripsBodies(t *testing.T) {
	lib := fixtureLibrary(t)
	for _, e := range lib.List() {
		if e.Body != "" {
			t.Errorf("List() entry %s carries a body", e.Slug)
		}
	}
}

func TestRecommendMatchesPoles(t *testing.T) {
	lib := fixtureLibrary(t)

	recs := lib.Recommend([]string{"I", "N", "T", "J"}, 10)
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	// deep-work matches I and J (score 2), brainstorming matches N (score 1)
	if recs[0].Slug != "deep-work" {
		t.Errorf("top recommendation = %s, want deep-work", recs[0].Slug)
	}
	if recs[1].Slug != "brainstorming" {
		t.Errorf("second recommendation = %s, want brainstorming", recs[1].Slug)
	}

	// Entry with no dimensions never matches
	for _, r := range recs {
		if r.Slug == "plain-notes" {
			t.Error("plain-notes should not be recommended")
		}
	}
}

func TestRecommendLimit(t *testing.T) {
	lib := fixtureLibrary(t)
	recs := lib.Recommend([]string{"I", "N", "J"}, 1)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
}

func TestParseEntryErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no frontmatter", "just markdown"},
		{"unterminated", "---\ntitle: X\n"},
		{"missing title", "---\nslug: x\n---\nbody"},
		{"bad yaml", "---\ntitle: [unclosed\n---\nbody"},
	}
	for _, tt := range tests {
		if _, err := parseEntry([]byte(tt.raw), "f.mdx"); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
