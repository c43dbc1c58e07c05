package generator

import "strings"

// StripFences removes the markdown code-fence markers Gemini sometimes wraps
// around generated code, then trims surrounding whitespace. This is a
// best-effort string substitution, not a markdown parser: every literal
// occurrence of the markers is removed, wherever it appears.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```html", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
