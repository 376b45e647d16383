package picker

import "strings"

// NormalizeQuery trims and case-folds raw search text. An empty result means
// no filter.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// MatchQuery reports whether displayText contains the query, ignoring case.
// An empty query matches everything.
func MatchQuery(query, displayText string) bool {
	query = NormalizeQuery(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(displayText), query)
}

func (c *Candidate) matches(normalized string) bool {
	return normalized == "" || strings.Contains(c.folded, normalized)
}
