package ui

import (
	"strings"
	"testing"
)

func TestReflowParagraphsWrapsLongLines(t *testing.T) {
	input := "one two three four five six seven eight nine ten"

	got := ReflowParagraphs(input, 20)

	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 {
			t.Fatalf("expected lines within width 20, got %q", line)
		}
	}
}

func TestReflowParagraphsPreservesParagraphBreaks(t *testing.T) {
	input := "first  paragraph\n\nsecond\nparagraph"

	got := ReflowParagraphs(input, 80)

	expected := "first paragraph\n\nsecond paragraph"
	if got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestReflowParagraphsEmptyInput(t *testing.T) {
	if got := ReflowParagraphs("   \n\n  ", 40); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
