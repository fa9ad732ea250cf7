package airportfinder

import "strings"

// PlaceResolver maps free-text place names to gazetteer entries.
// Safe for concurrent use: it holds no mutable state after construction.
type PlaceResolver struct {
	cities    []CityRecord
	names     []string   // normalized Name, same order as cities
	altNames  [][]string // normalized AltNames, same order as cities
	redirects AdminRedirects

	noSuggestions bool
}

// ResolverOption is a functional option for configuring a PlaceResolver.
type ResolverOption func(*PlaceResolver)

// WithoutSuggestions turns off the did-you-mean lookup. A failed Resolve then
// returns a NotFoundError with no Suggestions.
func WithoutSuggestions() ResolverOption {
	return func(r *PlaceResolver) {
		r.noSuggestions = true
	}
}

// NewPlaceResolver creates a resolver over cities and redirects.
//
// The order of cities is part of the matching contract: when several records
// match a query, the one that appears first wins. The slice is copied.
func NewPlaceResolver(cities []CityRecord, redirects AdminRedirects, opts ...ResolverOption) *PlaceResolver {
	r := &PlaceResolver{
		cities:    make([]CityRecord, len(cities)),
		names:     make([]string, len(cities)),
		altNames:  make([][]string, len(cities)),
		redirects: redirects,
	}
	for i, c := range cities {
		c.AltNames = append([]string(nil), c.AltNames...)
		r.cities[i] = c
		r.names[i] = normalize(c.Name)
		for _, alt := range c.AltNames {
			r.altNames[i] = append(r.altNames[i], normalize(alt))
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the canonical name and coordinates for query.
//
// The query is trimmed and lowercased. A division name is first replaced by
// its capital. Then records are scanned in table order for an exact match on
// the name or any alternate name, and failing that, for a name that starts
// with the query. The first match of the first successful pass is returned.
// Otherwise the error is a *NotFoundError carrying query unchanged.
func (r *PlaceResolver) Resolve(query string) (Place, error) {
	n, _ := r.workingQuery(query)

	if i := r.exactMatch(n); i >= 0 {
		return r.place(i), nil
	}
	if i := r.prefixMatch(n); i >= 0 {
		return r.place(i), nil
	}

	nf := &NotFoundError{Query: query}
	if !r.noSuggestions {
		nf.Suggestions = suggest(n, r.names, r.cities)
	}
	return Place{}, nf
}

// workingQuery normalizes query and applies the division redirect. The second
// result reports whether the redirect changed the query; a division named
// after its own capital ("madrid" → "madrid") does not count.
func (r *PlaceResolver) workingQuery(query string) (string, bool) {
	n := normalize(query)
	if capital, ok := r.redirects.Capital(n); ok {
		return capital, capital != n
	}
	return n, false
}

func (r *PlaceResolver) exactMatch(n string) int {
	for i, name := range r.names {
		if name == n {
			return i
		}
		for _, alt := range r.altNames[i] {
			if alt == n {
				return i
			}
		}
	}
	return -1
}

// prefixMatch has no length guard: a one-letter query returns the first city
// whose name starts with that letter.
func (r *PlaceResolver) prefixMatch(n string) int {
	for i, name := range r.names {
		if strings.HasPrefix(name, n) {
			return i
		}
	}
	return -1
}

func (r *PlaceResolver) place(i int) Place {
	c := r.cities[i]
	return Place{Name: c.Name, Lat: c.Lat, Lon: c.Lon}
}

// Cities returns a copy of the gazetteer in table order.
func (r *PlaceResolver) Cities() []CityRecord {
	out := make([]CityRecord, len(r.cities))
	for i, c := range r.cities {
		c.AltNames = append([]string(nil), c.AltNames...)
		out[i] = c
	}
	return out
}
