package textutil

import (
	"regexp"
	"strings"
)

var (
	urlPattern   = regexp.MustCompile(`http\S+|www\.\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, strips URL-like and email-like substrings,
// and collapses runs of whitespace to a single space. It never fails;
// empty input yields an empty string.
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = urlPattern.ReplaceAllString(t, "")
	t = emailPattern.ReplaceAllString(t, "")
	t = spacePattern.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
