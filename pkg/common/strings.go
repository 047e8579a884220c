package common

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Slugify collapses every run of non-alphanumeric characters into a single
// separator and trims separators from both ends.
func Slugify(s, sep string) string {
	out := nonAlnum.ReplaceAllString(s, sep)
	return strings.Trim(out, sep)
}
