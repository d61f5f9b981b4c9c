package sanitize

import (
	"regexp"
	"strings"
)

var commandTagPattern = regexp.MustCompile(`</?command-(?:message|name|args)>`)

// StripTags removes Claude Code command wrapper tags from text, keeping
// the enclosed content, and trims surrounding whitespace.
func StripTags(text string) string {
	return strings.TrimSpace(commandTagPattern.ReplaceAllString(text, ""))
}
