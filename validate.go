package airportfinder

import (
	"errors"
	"fmt"

	"github.com/golang/geo/s2"
)

// Validation thresholds for data integrity checks.
// Based on the embedded Spanish tables (provincial capitals plus airport cities).
const (
	minCityCount     = 50 // Expect every provincial capital
	minAirportCount  = 40 // Expect the commercial airports of Spain
	minRedirectCount = 19 // Expect all 17 communities plus Ceuta and Melilla
)

// maxAirportCityKm is the farthest an airport may sit from the city named in
// its City field. Tenerife Sur is about 56 km from Santa Cruz de Tenerife.
const maxAirportCityKm = 75.0

// validationPlace defines a known query for resolution validation.
type validationPlace struct {
	query    string
	wantName string
}

// validationNearest defines a known query and its nearest airport.
type validationNearest struct {
	query    string
	wantIATA string
}

// knownPlaces are used to validate resolution works correctly, covering the
// exact, alternate name, redirect and prefix passes.
var knownPlaces = []validationPlace{
	{"Madrid", "Madrid"},
	{"  MADRID  ", "Madrid"},
	{"Donostia", "San Sebastián"},
	{"Navarra", "Pamplona"},
	{"Galicia", "Santiago de Compostela"},
	{"Comunitat Valenciana", "Valencia"},
	{"Valladol", "Valladolid"},
}

// knownNearest are used to validate airport ranking end to end.
var knownNearest = []validationNearest{
	{"Navarra", "PNA"},
	{"Madrid", "MAD"},
	{"Barcelona", "BCN"},
	{"Jerez", "XRY"},
	{"Tenerife", "TFN"},
}

// ValidateDataset loads the reference tables and performs integrity and
// functional checks. Returns an error if validation fails.
func ValidateDataset(opts ...Option) error {
	d, err := LoadDataset(opts...)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	cityCount := len(d.Cities)
	if cityCount < minCityCount {
		return fmt.Errorf("city count too low: got %d, want >= %d", cityCount, minCityCount)
	}
	fmt.Printf("      City count: %d (OK)\n", cityCount)

	airportCount := len(d.Airports)
	if airportCount < minAirportCount {
		return fmt.Errorf("airport count too low: got %d, want >= %d", airportCount, minAirportCount)
	}
	fmt.Printf("      Airport count: %d (OK)\n", airportCount)

	redirectCount := len(d.Redirects)
	if redirectCount < minRedirectCount {
		return fmt.Errorf("redirect count too low: got %d, want >= %d", redirectCount, minRedirectCount)
	}
	fmt.Printf("      Redirect count: %d (OK)\n", redirectCount)

	if dangling := danglingRedirects(d.Cities, d.Redirects); len(dangling) > 0 {
		return fmt.Errorf("redirects without a gazetteer city: %q", dangling)
	}

	loc := d.Locator()

	fmt.Printf("      Airport cities: ")
	if err := validateAirportCities(loc.Resolver(), d.Airports); err != nil {
		return err
	}
	fmt.Printf("%d airports OK\n", len(d.Airports))

	fmt.Printf("      Resolution: ")
	for _, tc := range knownPlaces {
		p, err := loc.Resolver().Resolve(tc.query)
		if err != nil {
			return fmt.Errorf("resolve(%q): %w", tc.query, err)
		}
		if p.Name != tc.wantName {
			return fmt.Errorf("resolve(%q) = %q, want %q", tc.query, p.Name, tc.wantName)
		}
	}
	fmt.Printf("%d places OK\n", len(knownPlaces))

	fmt.Printf("      Nearest airport: ")
	for _, tc := range knownNearest {
		l, err := loc.Locate(tc.query, 1)
		if err != nil {
			return fmt.Errorf("locate(%q): %w", tc.query, err)
		}
		if len(l.Airports) != 1 || l.Airports[0].IATA != tc.wantIATA {
			return fmt.Errorf("locate(%q) nearest = %v, want %s", tc.query, l.Airports, tc.wantIATA)
		}
	}
	fmt.Printf("%d queries OK\n", len(knownNearest))

	return nil
}

// validateAirportCities checks that every airport's City resolves to a
// gazetteer entry lying within maxAirportCityKm of the airport. Distances are
// measured with s2 so the check does not depend on Haversine.
func validateAirportCities(r *PlaceResolver, airports []AirportRecord) error {
	var errs []error
	for _, ap := range airports {
		p, err := r.Resolve(ap.City)
		if err != nil {
			errs = append(errs, fmt.Errorf("airport %s: city: %w", ap.IATA, err))
			continue
		}
		km := s2.LatLngFromDegrees(ap.Lat, ap.Lon).Distance(s2.LatLngFromDegrees(p.Lat, p.Lon)).Radians() * EarthRadiusKm
		if km > maxAirportCityKm {
			errs = append(errs, fmt.Errorf("airport %s is %.1f km from %s, want <= %.0f", ap.IATA, km, p.Name, maxAirportCityKm))
		}
	}
	return errors.Join(errs...)
}
