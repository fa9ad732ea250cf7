package airportfinder

import (
	"sort"
	"strings"
)

// DefaultTopN is the number of airports returned when the caller has no
// preference.
const DefaultTopN = 2

// NearestAirportFinder ranks a fixed airport table by great-circle distance.
// Safe for concurrent use: it holds no mutable state after construction.
type NearestAirportFinder struct {
	airports []AirportRecord
}

// NewNearestAirportFinder creates a finder over airports. The slice is copied
// and its order is used to break distance ties.
func NewNearestAirportFinder(airports []AirportRecord) *NearestAirportFinder {
	return &NearestAirportFinder{airports: append([]AirportRecord(nil), airports...)}
}

// rankedAirport pairs an airport with its unrounded distance from the query.
type rankedAirport struct {
	distKm  float64
	airport AirportRecord
}

// Nearest returns up to topN airports ordered by distance from (lat, lon).
//
// Distances are compared unrounded and rounded to one decimal only in the
// result. Equal distances keep table order. An empty table or topN <= 0
// yields an empty, non-nil slice; topN larger than the table yields the whole
// table.
func (f *NearestAirportFinder) Nearest(lat, lon float64, topN int) []AirportResult {
	if topN <= 0 || len(f.airports) == 0 {
		return []AirportResult{}
	}

	ranked := make([]rankedAirport, len(f.airports))
	for i, ap := range f.airports {
		ranked[i] = rankedAirport{distKm: Haversine(lat, lon, ap.Lat, ap.Lon), airport: ap}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].distKm < ranked[j].distKm })

	if topN > len(ranked) {
		topN = len(ranked)
	}
	out := make([]AirportResult, topN)
	for i, r := range ranked[:topN] {
		out[i] = AirportResult{
			IATA:       r.airport.IATA,
			Name:       r.airport.Name,
			City:       r.airport.City,
			DistanceKm: roundDistance(r.distKm),
			Lat:        r.airport.Lat,
			Lon:        r.airport.Lon,
		}
	}
	return out
}

// Airport looks up an airport by IATA code, ignoring case and surrounding
// whitespace.
func (f *NearestAirportFinder) Airport(iata string) (AirportRecord, bool) {
	code := strings.ToUpper(strings.TrimSpace(iata))
	for _, ap := range f.airports {
		if strings.ToUpper(ap.IATA) == code {
			return ap, true
		}
	}
	return AirportRecord{}, false
}

// AirportsIn returns the airports whose City field matches city after
// normalization, in table order.
func (f *NearestAirportFinder) AirportsIn(city string) []AirportRecord {
	n := normalize(city)
	var out []AirportRecord
	for _, ap := range f.airports {
		if normalize(ap.City) == n {
			out = append(out, ap)
		}
	}
	return out
}

// Airports returns a copy of the airport table in load order.
func (f *NearestAirportFinder) Airports() []AirportRecord {
	return append([]AirportRecord(nil), f.airports...)
}

// Len returns the number of airports in the table.
func (f *NearestAirportFinder) Len() int {
	return len(f.airports)
}
