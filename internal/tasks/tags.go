package tasks

import (
	"regexp"
	"strings"
)

var bracketGroup = regexp.MustCompile(`\[(.*?)\]`)

// ExtractTags pulls the tag list out of a message's text. Tags are
// written as a single bracketed, comma-separated group, e.g.
// "[coding, review]". Only the first bracketed group in the text is
// honored; any later groups are ignored. Each tag is trimmed of
// surrounding whitespace. Text with no bracketed group yields nil.
func ExtractTags(text string) []string {
	m := bracketGroup.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	parts := strings.Split(m[1], ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}
