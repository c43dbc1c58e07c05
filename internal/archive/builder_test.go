package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"
)

func readEntry(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("entry %s not found", name)
	return ""
}

func TestBuild_ArchiveContents(t *testing.T) {
	b := NewBuilder()
	fixed := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	b.nowFunc = func() time.Time { return fixed }

	markup := "<!DOCTYPE html><html><head><title>My Site</title></head><body><h1>hi</h1></body></html>"
	data, err := b.Build(markup)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a valid zip: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("expected exactly 2 entries, got %d", len(zr.File))
	}

	if got := readEntry(t, zr, MarkupFileName); got != markup {
		t.Fatalf("index.html modified: %q", got)
	}

	readme := readEntry(t, zr, ReadmeFileName)
	if !strings.Contains(readme, "# my-site") {
		t.Fatalf("README missing slug heading: %q", readme)
	}
	if !strings.Contains(readme, "2025-06-01T12:30:00Z") {
		t.Fatalf("README missing build timestamp: %q", readme)
	}
}

func TestBuild_EmptyMarkup(t *testing.T) {
	data, err := NewBuilder().Build("")
	if err != nil {
		t.Fatalf("Build error on empty markup: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a valid zip: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(zr.File))
	}
	readme := readEntry(t, zr, ReadmeFileName)
	if !strings.Contains(readme, "# "+DefaultSlug) {
		t.Fatalf("expected fallback slug in README: %q", readme)
	}
}

func TestProjectSlug(t *testing.T) {
	cases := []struct {
		name   string
		markup string
		want   string
	}{
		{"simple title", "<title>My Site</title>", "my-site"},
		{"punctuation collapses", "<title>Bob's Diner & Grill!</title>", "bob-s-diner-grill"},
		{"uppercase and attrs", `<TITLE class="x">Hello World</TITLE>`, "hello-world"},
		{"multiline title", "<title>\n  Team\n  Page\n</title>", "team-page"},
		{"no title", "<html><body></body></html>", DefaultSlug},
		{"empty title", "<title></title>", DefaultSlug},
		{"symbols only", "<title>!!!</title>", DefaultSlug},
		{"first title wins", "<title>one</title><title>two</title>", "one"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ProjectSlug(tc.markup); got != tc.want {
				t.Fatalf("ProjectSlug = %q, want %q", got, tc.want)
			}
		})
	}
}
