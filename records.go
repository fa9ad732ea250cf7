package airportfinder

import (
	geohash "github.com/TomiHiltunen/geohash-golang"
)

// CityRecord is a gazetteer entry. Name is the canonical display string and
// the record's identity; AltNames are matched exactly but never returned.
type CityRecord struct {
	Name     string   `json:"name"`
	AltNames []string `json:"alt_names,omitempty"`
	Lat      float64  `json:"lat"`
	Lon      float64  `json:"lon"`
}

// AirportRecord is an entry of the airport table. City is free text and is
// not checked against the gazetteer when loaded.
type AirportRecord struct {
	IATA string  `json:"iata" csv:"iata"`
	Name string  `json:"name" csv:"name"`
	City string  `json:"city" csv:"city"`
	Lat  float64 `json:"lat" csv:"lat"`
	Lon  float64 `json:"lon" csv:"lon"`
}

// AirportResult is an airport ranked by distance from a query point.
// DistanceKm is rounded to one decimal place.
type AirportResult struct {
	IATA       string  `json:"iata"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	DistanceKm float64 `json:"distance_km"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

// Place is the outcome of a successful resolution.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// maxGeohashPrecision is the length of the hash produced by geohash.Encode.
const maxGeohashPrecision = 12

// Geohash returns the geohash of the place truncated to precision characters.
// Precision outside 1..12 yields the full hash.
func (p Place) Geohash(precision int) string {
	h := geohash.Encode(p.Lat, p.Lon)
	if precision <= 0 || precision >= len(h) {
		return h
	}
	return h[:precision]
}
