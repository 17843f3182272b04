package hierarchy

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	slugStrip = regexp.MustCompile(`[^\w\s-]`)
	slugSpace = regexp.MustCompile(`\s+`)
	slugDash  = regexp.MustCompile(`-+`)
)

// Slugify lowercases s, drops punctuation, and joins words with single dashes.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpace.ReplaceAllString(s, "-")
	return slugDash.ReplaceAllString(s, "-")
}

// AnchorID returns heading-<slug>-<index>. The index keeps ids unique when
// headings repeat.
func AnchorID(text string, index int) string {
	slug := Slugify(text)
	if slug == "" {
		slug = "heading"
	}
	return "heading-" + slug + "-" + strconv.Itoa(index)
}
