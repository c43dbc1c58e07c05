// Package archive packages generated markup into a downloadable zip.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Entry names inside the produced zip.
const (
	MarkupFileName = "index.html"
	ReadmeFileName = "README.md"
)

// DefaultSlug is used when no usable <title> text is found.
const DefaultSlug = "my-website"

var (
	titleRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	slugRe  = regexp.MustCompile(`[^a-z0-9]+`)
)

// Builder assembles the download archive in memory.
type Builder struct {
	nowFunc func() time.Time
}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{nowFunc: time.Now}
}

// Build packages the markup plus a generated README into a single zip buffer.
// The markup is not validated; malformed or empty HTML still produces an
// archive with the fallback project name.
func (b *Builder) Build(markup string) ([]byte, error) {
	slug := ProjectSlug(markup)
	generatedAt := b.nowFunc().UTC().Format(time.RFC3339)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := []struct {
		name string
		body string
	}{
		{MarkupFileName, markup},
		{ReadmeFileName, readme(slug, generatedAt)},
	}
	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", f.name, err)
		}
		if _, err := w.Write([]byte(f.body)); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", f.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}

// ProjectSlug derives a project name from the first <title> element's text:
// lowercased, non-alphanumeric runs replaced with hyphens. This is a
// best-effort pattern match on the raw string, not an HTML parser; when no
// title is found (or it reduces to nothing) DefaultSlug is returned.
func ProjectSlug(markup string) string {
	m := titleRe.FindStringSubmatch(markup)
	if m == nil {
		return DefaultSlug
	}
	slug := slugRe.ReplaceAllString(strings.ToLower(m[1]), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return DefaultSlug
	}
	return slug
}

func readme(slug, generatedAt string) string {
	return fmt.Sprintf(`# %s

This website was generated by AI Website Builder on %s.

## Files

- index.html — the complete website (HTML, CSS and JavaScript in one file)

## Run it locally

Open index.html in any browser, or serve the folder:

    npx serve .

## Deploy it

Upload index.html to any static host (Netlify, Vercel, GitHub Pages,
S3 + CloudFront). No build step is required.
`, slug, generatedAt)
}
