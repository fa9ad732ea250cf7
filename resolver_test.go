package airportfinder

import (
	"errors"
	"strings"

	. "gopkg.in/check.v1"
)

type ResolverSuite struct {
	r *PlaceResolver
}

var _ = Suite(&ResolverSuite{})

func (s *ResolverSuite) SetUpTest(c *C) {
	s.r = fixtureResolver()
}

func (s *ResolverSuite) TestExactNameAnyCaseOrWhitespace(c *C) {
	for _, city := range fixtureCities {
		for _, q := range []string{
			city.Name,
			strings.ToUpper(city.Name),
			strings.ToLower(city.Name),
			"  " + city.Name + "\t\n",
		} {
			p, err := s.r.Resolve(q)
			c.Assert(err, IsNil, Commentf("query %q", q))
			c.Assert(p, Equals, Place{Name: city.Name, Lat: city.Lat, Lon: city.Lon}, Commentf("query %q", q))
		}
	}
}

func (s *ResolverSuite) TestPaddedUppercaseMadrid(c *C) {
	p, err := s.r.Resolve("  MADRID  ")
	c.Assert(err, IsNil)
	c.Assert(p.Name, Equals, "Madrid")
	c.Assert(p.Lat, Equals, 40.4168)
	c.Assert(p.Lon, Equals, -3.7038)
}

func (s *ResolverSuite) TestAltNameReturnsCanonicalName(c *C) {
	for _, city := range fixtureCities {
		for _, alt := range city.AltNames {
			p, err := s.r.Resolve(strings.ToUpper(alt))
			c.Assert(err, IsNil, Commentf("alt %q", alt))
			c.Assert(p.Name, Equals, city.Name)
			c.Assert(p.Lat, Equals, city.Lat)
			c.Assert(p.Lon, Equals, city.Lon)
		}
	}
}

func (s *ResolverSuite) TestRedirectEquivalence(c *C) {
	for division, capital := range fixtureRedirects {
		got, err := s.r.Resolve(division)
		c.Assert(err, IsNil, Commentf("division %q", division))
		want, err := s.r.Resolve(capital)
		c.Assert(err, IsNil, Commentf("capital %q", capital))
		c.Assert(got, Equals, want)
	}
}

func (s *ResolverSuite) TestNavarraResolvesToPamplona(c *C) {
	p, err := s.r.Resolve("Navarra")
	c.Assert(err, IsNil)
	c.Assert(p, Equals, Place{Name: "Pamplona", Lat: 42.8125, Lon: -1.6458})
}

func (s *ResolverSuite) TestRedirectToAltName(c *C) {
	p, err := s.r.Resolve("comunitat valenciana")
	c.Assert(err, IsNil)
	c.Assert(p.Name, Equals, "Valencia")
}

func (s *ResolverSuite) TestDanglingRedirectFails(c *C) {
	_, err := s.r.Resolve(danglingDivision)
	var nf *NotFoundError
	c.Assert(errors.As(err, &nf), Equals, true)
	c.Assert(nf.Query, Equals, danglingDivision)
}

func (s *ResolverSuite) TestExactPassBeatsEarlierPrefixMatch(c *C) {
	p, err := s.r.Resolve("Granada")
	c.Assert(err, IsNil)
	c.Assert(p.Name, Equals, "Granada")
}

func (s *ResolverSuite) TestPrefixFallback(c *C) {
	tests := []struct {
		query string
		want  string
	}{
		{"Sal", "Salamanca"},
		{"san", "San Sebastián"}, // first of San Sebastián, Santander, Santiago de Compostela
		{"Santa", "Santander"},
		{"  VALL ", "Valladolid"},
		{"Val", "Valencia"},
		{"Grana", "Granadilla de Abona"},
		{"m", "Madrid"},
	}
	for _, tt := range tests {
		p, err := s.r.Resolve(tt.query)
		c.Assert(err, IsNil, Commentf("query %q", tt.query))
		c.Assert(p.Name, Equals, tt.want, Commentf("query %q", tt.query))
	}
}

func (s *ResolverSuite) TestPrefixIgnoresAltNames(c *C) {
	_, err := s.r.Resolve("Donos")
	c.Assert(errors.Is(err, ErrNotFound), Equals, true)
}

func (s *ResolverSuite) TestEmptyQueryMatchesFirstRecord(c *C) {
	p, err := s.r.Resolve("   ")
	c.Assert(err, IsNil)
	c.Assert(p.Name, Equals, fixtureCities[0].Name)
}

func (s *ResolverSuite) TestNotFoundKeepsOriginalQuery(c *C) {
	_, err := s.r.Resolve("  Zzyxland ")
	c.Assert(err, NotNil)
	c.Assert(errors.Is(err, ErrNotFound), Equals, true)

	var nf *NotFoundError
	c.Assert(errors.As(err, &nf), Equals, true)
	c.Assert(nf.Query, Equals, "  Zzyxland ")
	c.Assert(nf.Suggestions, HasLen, 0)
	c.Assert(err, ErrorMatches, `place not found: "  Zzyxland "`)
}

func (s *ResolverSuite) TestNotFoundSuggestions(c *C) {
	tests := []struct {
		query string
		want  []string
	}{
		{"Madird", []string{"Madrid"}},
		{"Pamplna", []string{"Pamplona"}},
		{"Salamnca", []string{"Salamanca"}},
		{"Granda", []string{"Granada"}},
	}
	for _, tt := range tests {
		_, err := s.r.Resolve(tt.query)
		var nf *NotFoundError
		c.Assert(errors.As(err, &nf), Equals, true, Commentf("query %q", tt.query))
		c.Assert(nf.Suggestions, DeepEquals, tt.want, Commentf("query %q", tt.query))
	}

	_, err := s.r.Resolve("Madird")
	c.Assert(err, ErrorMatches, `place not found: "Madird" \(did you mean Madrid\?\)`)
}

func (s *ResolverSuite) TestWithoutSuggestions(c *C) {
	r := NewPlaceResolver(fixtureCities, fixtureRedirectTable(), WithoutSuggestions())

	_, err := r.Resolve("Madird")
	var nf *NotFoundError
	c.Assert(errors.As(err, &nf), Equals, true)
	c.Assert(nf.Suggestions, IsNil)
	c.Assert(err, ErrorMatches, `place not found: "Madird"`)

	p, err := r.Resolve("Navarra")
	c.Assert(err, IsNil)
	c.Assert(p.Name, Equals, "Pamplona")
}

func (s *ResolverSuite) TestFirstRecordWinsOnDuplicateNames(c *C) {
	r := NewPlaceResolver([]CityRecord{
		{Name: "Mérida", Lat: 38.9161, Lon: -6.3437},
		{Name: "Mérida", Lat: 20.9674, Lon: -89.5926},
	}, AdminRedirects{})

	p, err := r.Resolve("mérida")
	c.Assert(err, IsNil)
	c.Assert(p.Lat, Equals, 38.9161)

	p, err = r.Resolve("mér")
	c.Assert(err, IsNil)
	c.Assert(p.Lat, Equals, 38.9161)
}

func (s *ResolverSuite) TestAccentsAreSignificant(c *C) {
	r := NewPlaceResolver([]CityRecord{{Name: "Ávila", Lat: 40.6565, Lon: -4.6818}}, AdminRedirects{})

	_, err := r.Resolve("ÁVILA")
	c.Assert(err, IsNil)

	_, err = r.Resolve("Avila")
	var nf *NotFoundError
	c.Assert(errors.As(err, &nf), Equals, true)
	c.Assert(nf.Suggestions, DeepEquals, []string{"Ávila"})
}

func (s *ResolverSuite) TestEmptyGazetteer(c *C) {
	r := NewPlaceResolver(nil, AdminRedirects{})
	_, err := r.Resolve("Madrid")
	c.Assert(errors.Is(err, ErrNotFound), Equals, true)
}

func (s *ResolverSuite) TestTablesAreCopied(c *C) {
	cities := []CityRecord{{Name: "Pamplona", AltNames: []string{"Iruña"}, Lat: 42.8125, Lon: -1.6458}}
	r := NewPlaceResolver(cities, AdminRedirects{})

	cities[0].Name = "Changed"
	cities[0].AltNames[0] = "Changed"
	out := r.Cities()
	out[0].AltNames[0] = "Changed again"

	p, err := r.Resolve("iruña")
	c.Assert(err, IsNil)
	c.Assert(p.Name, Equals, "Pamplona")
	c.Assert(r.Cities()[0].AltNames, DeepEquals, []string{"Iruña"})
}
