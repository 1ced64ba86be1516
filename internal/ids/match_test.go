package ids

import "testing"

func TestNormalizeUniqueIDs(t *testing.T) {
	got := NormalizeUniqueIDs([]string{"Abc", "", "ABC", "def"})

	if len(got) != 2 {
		t.Fatalf("expected 2 IDs, got %d: %v", len(got), got)
	}
	if got[0] != "abc" || got[1] != "def" {
		t.Fatalf("expected [abc def], got %v", got)
	}
}

func TestMatchPrefixNormalized(t *testing.T) {
	normalized := []string{"2u3iutfd", "2a9k1111", "abc12345"}

	match, found, ambiguous := MatchPrefixNormalized(normalized, "2u")
	if !found || ambiguous {
		t.Fatalf("expected unambiguous match, got found=%t ambiguous=%t", found, ambiguous)
	}
	if match != "2u3iutfd" {
		t.Fatalf("expected 2u3iutfd, got %q", match)
	}

	_, found, ambiguous = MatchPrefixNormalized(normalized, "2")
	if !found || !ambiguous {
		t.Fatalf("expected ambiguous match, got found=%t ambiguous=%t", found, ambiguous)
	}

	_, found, _ = MatchPrefixNormalized(normalized, "zzz")
	if found {
		t.Fatal("expected no match for unknown prefix")
	}

	_, found, _ = MatchPrefixNormalized(normalized, "")
	if found {
		t.Fatal("expected no match for empty prefix")
	}
}

func TestMatchPrefixNormalized_ExactMatchWins(t *testing.T) {
	normalized := []string{"abc", "abcdef"}

	match, found, ambiguous := MatchPrefixNormalized(normalized, "abc")
	if !found || ambiguous {
		t.Fatalf("expected unambiguous match, got found=%t ambiguous=%t", found, ambiguous)
	}
	if match != "abc" {
		t.Fatalf("expected exact match abc, got %q", match)
	}
}

func TestUniquePrefixLengthsNormalized(t *testing.T) {
	lengths := UniquePrefixLengthsNormalized([]string{"abc", "abd", "xyz"})

	if got := lengths["abc"]; got != 3 {
		t.Fatalf("expected abc prefix length 3, got %d", got)
	}
	if got := lengths["xyz"]; got != 1 {
		t.Fatalf("expected xyz prefix length 1, got %d", got)
	}
}
