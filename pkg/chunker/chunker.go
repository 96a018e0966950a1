package chunker

import (
	"regexp"
	"strings"
)

// Paragraph is one retrievable passage of text with its ordinal within the
// source it was split from.
type Paragraph struct {
	Text     string
	Position int
}

// Paragraph boundary: a newline followed by any blank run. CRLF input is
// normalized before splitting.
var boundary = regexp.MustCompile(`\n[ \t]*\n+`)

// Split breaks raw text into paragraph passages. Segments are trimmed,
// whitespace-only segments are dropped, and the kept segments are numbered
// sequentially starting at startPosition. Splitting is deterministic and
// never loses non-whitespace content.
func Split(raw string, startPosition int) []Paragraph {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")

	var paragraphs []Paragraph
	position := startPosition
	for _, segment := range boundary.Split(normalized, -1) {
		text := strings.TrimSpace(segment)
		if text == "" {
			continue
		}
		paragraphs = append(paragraphs, Paragraph{Text: text, Position: position})
		position++
	}
	return paragraphs
}
