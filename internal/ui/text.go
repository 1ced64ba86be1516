package ui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	internalstrings "github.com/rfenaux/agentdeck/internal/strings"
)

// ReflowParagraphs wraps and normalizes paragraph text to the given width.
// Paragraphs are separated by blank lines and rewrapped independently.
func ReflowParagraphs(value string, width int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	paragraphs := splitParagraphs(value)
	wrapped := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		normalized := internalstrings.NormalizeWhitespace(paragraph)
		if normalized == "" {
			continue
		}
		wrapped = append(wrapped, wordwrap.String(normalized, width))
	}

	return strings.Join(wrapped, "\n\n")
}

func splitParagraphs(value string) []string {
	value = internalstrings.NormalizeNewlines(value)
	parts := strings.Split(value, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		paragraphs = append(paragraphs, part)
	}
	return paragraphs
}
