package render

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultTruncateLength is the data cell text limit.
	DefaultTruncateLength = 50
	// Ellipsis marks truncated text.
	Ellipsis = "..."
)

// Ellipsize shortens value to at most limit characters (runes), cutting at
// the last whitespace that keeps the text within the limit and appending
// Ellipsis. Values within the limit are returned unchanged. When no boundary
// fits the value is cut mid-word. A non-positive limit selects
// DefaultTruncateLength.
func Ellipsize(value string, limit int) string {
	if limit <= 0 {
		limit = DefaultTruncateLength
	}
	if utf8.RuneCountInString(value) <= limit {
		return value
	}

	runes := []rune(value)
	head := runes[:limit]
	if !unicode.IsSpace(runes[limit]) {
		for i := len(head) - 1; i > 0; i-- {
			if unicode.IsSpace(head[i]) {
				head = head[:i]
				break
			}
		}
		if len(head) == limit {
			return string(head) + Ellipsis
		}
	}

	kept := strings.TrimRightFunc(string(head), unicode.IsSpace)
	if kept == "" {
		kept = string(runes[:limit])
	}
	return kept + Ellipsis
}
