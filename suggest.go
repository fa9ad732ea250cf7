package airportfinder

import (
	"sort"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// maxSuggestDistance is the largest edit distance reported as a suggestion.
	maxSuggestDistance = 2
	// maxSuggestions caps the number of names attached to a NotFoundError.
	maxSuggestions = 3
	// minSuggestQueryLen keeps one- and two-letter queries from matching
	// every short name in the table.
	minSuggestQueryLen = 3
	// maxSuggestInputLen bounds the Levenshtein cost of a single query.
	maxSuggestInputLen = 64
)

// foldAccents strips combining marks so "Malaga" and "málaga" compare equal.
// Only used for suggestions; Resolve itself is accent-sensitive.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

type suggestion struct {
	name string
	dist int
}

// suggest returns canonical city names within maxSuggestDistance of the
// normalized query n, closest first, ties in table order.
func suggest(n string, names []string, cities []CityRecord) []string {
	q := []rune(foldAccents(n))
	if len(q) < minSuggestQueryLen {
		return nil
	}
	if len(q) > maxSuggestInputLen {
		q = q[:maxSuggestInputLen]
	}
	query := string(q)

	var found []suggestion
	seen := make(map[string]bool)
	for i, name := range names {
		d := levenshtein.ComputeDistance(query, foldAccents(name))
		if d > maxSuggestDistance || seen[cities[i].Name] {
			continue
		}
		seen[cities[i].Name] = true
		found = append(found, suggestion{name: cities[i].Name, dist: d})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })
	if len(found) > maxSuggestions {
		found = found[:maxSuggestions]
	}

	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.name
	}
	return out
}
