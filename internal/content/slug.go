package content

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w\-]+`)
	hyphenRunRe  = regexp.MustCompile(`\-\-+`)
)

// Slugify derives a URL-safe identifier from free text: lowercase,
// whitespace collapsed to hyphens, "&" spelled out, everything else
// non-word stripped. Idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "&", "-and-")
	s = nonWordRe.ReplaceAllString(s, "")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	return s
}
