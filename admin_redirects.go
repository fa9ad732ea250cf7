package airportfinder

import (
	"sort"
	"strings"
)

// AdminRedirects maps a first-level administrative division (an autonomous
// community, e.g. "Navarra") to the city used as its coordinate proxy
// (its capital, e.g. "Pamplona").
//
// Keys and values are stored normalized, so lookups are case-insensitive
// and ignore surrounding whitespace. The zero value is an empty table.
type AdminRedirects struct {
	capitals map[string]string
}

// NewAdminRedirects builds a redirect table from division → capital pairs.
// When two keys normalize to the same string, the lexically smallest raw key
// wins so that the result does not depend on map iteration order.
func NewAdminRedirects(m map[string]string) AdminRedirects {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	capitals := make(map[string]string, len(m))
	for _, k := range keys {
		nk := normalize(k)
		if _, dup := capitals[nk]; dup {
			continue
		}
		capitals[nk] = normalize(m[k])
	}
	return AdminRedirects{capitals: capitals}
}

// Capital returns the normalized capital for a division name, if any.
func (r AdminRedirects) Capital(division string) (string, bool) {
	c, ok := r.capitals[normalize(division)]
	return c, ok
}

// Divisions returns the normalized division names in sorted order.
func (r AdminRedirects) Divisions() []string {
	out := make([]string, 0, len(r.capitals))
	for d := range r.capitals {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of divisions in the table.
func (r AdminRedirects) Len() int {
	return len(r.capitals)
}

// normalize trims surrounding whitespace and lowercases s.
//
// strings.ToLower is Unicode-aware and independent of the process locale, so
// "ÁVILA" and "ávila" compare equal. Diacritics are kept: "avila" and
// "ávila" are different names to the resolver.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
