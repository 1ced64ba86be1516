package ids

import "strings"

// NormalizeUniqueIDs lowercases IDs and drops empties and duplicates,
// preserving first-seen order.
func NormalizeUniqueIDs(ids []string) []string {
	normalized := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == "" || seen[idLower] {
			continue
		}
		seen[idLower] = true
		normalized = append(normalized, idLower)
	}
	return normalized
}

// MatchPrefixNormalized finds the ID matching a prefix among normalized IDs.
// An exact match wins over prefix matches. Returns the match, whether any
// ID matched, and whether the prefix was ambiguous.
func MatchPrefixNormalized(normalizedIDs []string, prefix string) (match string, found bool, ambiguous bool) {
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return "", false, false
	}

	for _, id := range normalizedIDs {
		if id == prefix {
			return id, true, false
		}
	}

	for _, id := range normalizedIDs {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if found {
			return "", true, true
		}
		match = id
		found = true
	}

	return match, found, false
}

// UniquePrefixLengthsNormalized returns the shortest unique prefix length
// for each already-normalized ID.
func UniquePrefixLengthsNormalized(normalizedIDs []string) map[string]int {
	lengths := make(map[string]int, len(normalizedIDs))
	for _, id := range normalizedIDs {
		lengths[id] = uniquePrefixLength(id, normalizedIDs)
	}
	return lengths
}
