package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const guideFixture = `---
title: Coverage levels explained
summary: How to pick a tier.
version: "2"
updated_at: 2026-05-01
---

Pick the tier that matches your trip.

## Standard

- Emergency medical coverage

<script>alert("nope")</script>
`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "coverage-levels.md"), []byte(guideFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return NewStore(dir)
}

func TestPageRendersFrontMatterAndMarkdown(t *testing.T) {
	s := newTestStore(t)
	p, err := s.Page("coverage-levels")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Coverage levels explained" {
		t.Fatalf("unexpected title %q", p.Title)
	}
	if p.Summary != "How to pick a tier." {
		t.Fatalf("unexpected summary %q", p.Summary)
	}
	if p.Version != "2" {
		t.Fatalf("unexpected version %q", p.Version)
	}
	if want := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC); !p.UpdatedAt.Equal(want) {
		t.Fatalf("unexpected updated_at %v", p.UpdatedAt)
	}
	body := string(p.Body)
	if !strings.Contains(body, "<h2") || !strings.Contains(body, "Standard") {
		t.Fatalf("expected rendered heading in body: %s", body)
	}
	if !strings.Contains(body, "<li>Emergency medical coverage</li>") {
		t.Fatalf("expected list item in body: %s", body)
	}
}

func TestPageSanitizesScripts(t *testing.T) {
	s := newTestStore(t)
	p, err := s.Page("coverage-levels")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(p.Body), "<script") {
		t.Fatalf("expected script tags stripped: %s", p.Body)
	}
}

func TestPageWithoutFrontMatterFallsBackToSlug(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plain.md"), []byte("Just a paragraph.\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	p, err := NewStore(dir).Page("plain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "plain" {
		t.Fatalf("expected slug fallback title, got %q", p.Title)
	}
	if !strings.Contains(string(p.Body), "Just a paragraph.") {
		t.Fatalf("expected body content: %s", p.Body)
	}
}

func TestPageRejectsPathLikeSlugs(t *testing.T) {
	s := newTestStore(t)
	for _, slug := range []string{"", "../etc/passwd", "a/b", `a\b`, "page.md"} {
		if _, err := s.Page(slug); err == nil {
			t.Fatalf("expected rejection for slug %q", slug)
		}
	}
}

func TestPageCachesUntilExpiry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cached.md")
	if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	s := NewStore(dir)
	s.SetCacheDuration(50 * time.Millisecond)

	p1, err := s.Page("cached")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(path, []byte("second\n"), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}
	p2, _ := s.Page("cached")
	if string(p2.Body) != string(p1.Body) {
		t.Fatalf("expected cached body before expiry")
	}

	time.Sleep(60 * time.Millisecond)
	p3, err := s.Page("cached")
	if err != nil {
		t.Fatalf("unexpected error after expiry: %v", err)
	}
	if !strings.Contains(string(p3.Body), "second") {
		t.Fatalf("expected reload after expiry, got %s", p3.Body)
	}
}

func TestPageMissingFileErrors(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Page("absent"); err == nil {
		t.Fatalf("expected error for missing page")
	}
}
