package selector

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/grovetools/viewpick/pkg/picker"
)

// Suggest returns up to limit candidate names close to query, for use when the
// query hides every candidate. Each name is compared both whole and by its
// leading prefix of the query's length, so partially typed names still match.
func Suggest(query string, items []picker.Candidate, limit int) []string {
	q := picker.NormalizeQuery(query)
	if q == "" || limit <= 0 {
		return nil
	}

	threshold := utf8.RuneCountInString(q) / 2
	if threshold < 1 {
		threshold = 1
	}

	type scored struct {
		name string
		dist int
	}
	best := make(map[string]int)
	for _, item := range items {
		name := item.Name()
		d := distance(q, strings.ToLower(name))
		if d > threshold {
			continue
		}
		if prev, ok := best[name]; !ok || d < prev {
			best[name] = d
		}
	}

	matches := make([]scored, 0, len(best))
	for name, d := range best {
		matches = append(matches, scored{name: name, dist: d})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

func distance(query, name string) int {
	d := levenshtein.ComputeDistance(query, name)
	runes := []rune(name)
	if n := utf8.RuneCountInString(query); n < len(runes) {
		if p := levenshtein.ComputeDistance(query, string(runes[:n])); p < d {
			d = p
		}
	}
	return d
}
