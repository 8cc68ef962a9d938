package utils

import (
	"regexp"
	"strings"
)

var (
	forbiddenCharsRegexp = regexp.MustCompile(`[\\|/:"?\r\n]+`)
	extraSpacesRegexp    = regexp.MustCompile(`\s{2,}`)
)

// CleanTitle strips characters that are forbidden in filenames and
// deletes redundant whitespace. A run of two or more whitespace
// characters is removed entirely, not collapsed to a single space.
func CleanTitle(input string) string {
	cleaned := forbiddenCharsRegexp.ReplaceAllString(strings.TrimSpace(input), "")
	cleaned = extraSpacesRegexp.ReplaceAllString(strings.TrimSpace(cleaned), "")
	return cleaned
}
