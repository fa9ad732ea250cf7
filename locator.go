package airportfinder

// Location is the combined result of resolving a query and ranking airports
// around the resolved place.
type Location struct {
	Query      string          `json:"query"`
	Place      Place           `json:"place"`
	Redirected bool            `json:"redirected"`         // query named a division with a different capital
	Division   string          `json:"division,omitempty"` // normalized division name when Redirected
	Airports   []AirportResult `json:"airports"`
}

// Locator runs a PlaceResolver and a NearestAirportFinder in sequence.
type Locator struct {
	resolver *PlaceResolver
	finder   *NearestAirportFinder
}

// NewLocator creates a Locator from its two stages.
func NewLocator(resolver *PlaceResolver, finder *NearestAirportFinder) *Locator {
	return &Locator{resolver: resolver, finder: finder}
}

// Resolver returns the place resolution stage.
func (l *Locator) Resolver() *PlaceResolver { return l.resolver }

// Finder returns the airport ranking stage.
func (l *Locator) Finder() *NearestAirportFinder { return l.finder }

// Locate resolves query and returns the topN airports nearest to the place.
// Resolution errors are returned unchanged.
//
// Example:
//
//	loc, err := l.Locate("Navarra", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s → %s (%.1f km)\n", loc.Place.Name, loc.Airports[0].IATA, loc.Airports[0].DistanceKm)
func (l *Locator) Locate(query string, topN int) (Location, error) {
	p, err := l.resolver.Resolve(query)
	if err != nil {
		return Location{}, err
	}

	loc := Location{
		Query:    query,
		Place:    p,
		Airports: l.finder.Nearest(p.Lat, p.Lon, topN),
	}
	if _, redirected := l.resolver.workingQuery(query); redirected {
		loc.Redirected = true
		loc.Division = normalize(query)
	}
	return loc, nil
}
