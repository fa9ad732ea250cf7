package airportfinder

import (
	"compress/bzip2"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/golang/geo/s2"
	"github.com/jszwec/csvutil"
)

//go:embed airportfinder-data
var embeddedData embed.FS

// embeddedDir is the directory name inside embeddedData.
const embeddedDir = "airportfinder-data"

// Reference table file names, relative to the data directory.
const (
	CitiesFile    = "cities.json"
	AirportsFile  = "airports.csv"
	RedirectsFile = "admin_redirects.json"
)

// DatasetConfig contains configuration options for loading reference tables.
type DatasetConfig struct {
	DataDir string // Directory checked before the embedded tables (default: "./airportfinder-data")
}

// Option is a functional option for configuring dataset loading.
type Option func(*DatasetConfig)

// WithDataDir sets the directory searched for reference table files.
func WithDataDir(dir string) Option {
	return func(c *DatasetConfig) {
		c.DataDir = dir
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() *DatasetConfig {
	return &DatasetConfig{
		DataDir: "./" + embeddedDir,
	}
}

// Dataset holds the three reference tables as loaded. Cities and Airports
// keep file order, which decides ties during matching and ranking.
type Dataset struct {
	Cities    []CityRecord
	Airports  []AirportRecord
	Redirects map[string]string // division → capital, as written in the file
	config    *DatasetConfig
}

// Singleton pattern for the default Dataset.
var (
	defaultDataset     *Dataset
	defaultDatasetOnce sync.Once
	defaultDatasetErr  error
)

// GetDefaultDataset returns a shared Dataset, loading it on first call.
func GetDefaultDataset() (*Dataset, error) {
	defaultDatasetOnce.Do(func() {
		defaultDataset, defaultDatasetErr = LoadDataset()
	})
	return defaultDataset, defaultDatasetErr
}

// LoadDataset reads the gazetteer, the airport list and the division
// redirect table.
//
// Each file is looked up in the configured data directory first, then in the
// tables embedded in the binary. A file may be stored bzip2-compressed with a
// ".bz2" suffix.
//
//	ds, err := LoadDataset(WithDataDir("/srv/airportfinder"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loc, err := ds.Locator().Locate("Navarra", 2)
func LoadDataset(opts ...Option) (*Dataset, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	d := &Dataset{config: cfg}

	var err error
	if d.Cities, err = loadCities(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("loading cities: %w", err)
	}
	if d.Airports, err = loadAirports(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("loading airports: %w", err)
	}
	if d.Redirects, err = loadRedirects(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("loading admin redirects: %w", err)
	}

	for _, div := range danglingRedirects(d.Cities, d.Redirects) {
		log.Printf("warning: redirect %q → %q does not name a gazetteer city", div, d.Redirects[div])
	}
	return d, nil
}

// DataDir returns the directory searched before the embedded tables. A
// Dataset built as a literal reports the default directory.
func (d *Dataset) DataDir() string {
	if d.config == nil {
		return defaultConfig().DataDir
	}
	return d.config.DataDir
}

// Resolver returns a PlaceResolver over the dataset.
func (d *Dataset) Resolver(opts ...ResolverOption) *PlaceResolver {
	return NewPlaceResolver(d.Cities, NewAdminRedirects(d.Redirects), opts...)
}

// Finder returns a NearestAirportFinder over the dataset.
func (d *Dataset) Finder() *NearestAirportFinder {
	return NewNearestAirportFinder(d.Airports)
}

// Locator returns a Locator over the dataset. opts configure its resolver.
func (d *Dataset) Locator(opts ...ResolverOption) *Locator {
	return NewLocator(d.Resolver(opts...), d.Finder())
}

func loadCities(dir string) ([]CityRecord, error) {
	data, err := readDataFile(dir, CitiesFile)
	if err != nil {
		return nil, err
	}

	var cities []CityRecord
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", CitiesFile, err)
	}

	for i, c := range cities {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("%s: record %d has an empty name", CitiesFile, i)
		}
		if !validCoordinates(c.Lat, c.Lon) {
			return nil, fmt.Errorf("%s: %q has invalid coordinates (%v, %v)", CitiesFile, c.Name, c.Lat, c.Lon)
		}
	}
	return cities, nil
}

func loadAirports(dir string) ([]AirportRecord, error) {
	data, err := readDataFile(dir, AirportsFile)
	if err != nil {
		return nil, err
	}

	var airports []AirportRecord
	if err := csvutil.Unmarshal(data, &airports); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", AirportsFile, err)
	}

	seen := make(map[string]bool, len(airports))
	for i, ap := range airports {
		code := strings.ToUpper(strings.TrimSpace(ap.IATA))
		if code == "" {
			return nil, fmt.Errorf("%s: record %d has an empty IATA code", AirportsFile, i)
		}
		if seen[code] {
			return nil, fmt.Errorf("%s: duplicate IATA code %q", AirportsFile, code)
		}
		seen[code] = true
		if !validCoordinates(ap.Lat, ap.Lon) {
			return nil, fmt.Errorf("%s: %s has invalid coordinates (%v, %v)", AirportsFile, code, ap.Lat, ap.Lon)
		}
	}
	return airports, nil
}

func loadRedirects(dir string) (map[string]string, error) {
	data, err := readDataFile(dir, RedirectsFile)
	if err != nil {
		return nil, err
	}

	redirects := make(map[string]string)
	if err := json.Unmarshal(data, &redirects); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", RedirectsFile, err)
	}
	return redirects, nil
}

// validCoordinates reports whether lat/lon are finite degrees within
// [-90, 90] and [-180, 180].
func validCoordinates(lat, lon float64) bool {
	return s2.LatLngFromDegrees(lat, lon).IsValid()
}

// danglingRedirects returns, sorted, the divisions whose capital is not the
// name or an alternate name of any city.
func danglingRedirects(cities []CityRecord, redirects map[string]string) []string {
	r := NewPlaceResolver(cities, AdminRedirects{})
	table := NewAdminRedirects(redirects)

	var out []string
	for _, div := range sortedKeys(redirects) {
		capital, _ := table.Capital(div)
		if r.exactMatch(capital) < 0 {
			out = append(out, div)
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func readDataFile(dir, name string) ([]byte, error) {
	r, cleanup, err := openOptionallyBzippedFile(dir, name)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

func openOptionallyEmbeddedFile(dir, name string) (fs.File, error) {
	// Filesystem first, so a data directory can override the embedded tables.
	if fh, err := os.Open(filepath.Join(dir, name)); err == nil {
		return fh, nil
	}
	return embeddedData.Open(path.Join(embeddedDir, name))
}

func openOptionallyBzippedFile(dir, name string) (io.Reader, func() error, error) {
	fh, err := openOptionallyEmbeddedFile(dir, name+".bz2")
	if err != nil {
		fh, err = openOptionallyEmbeddedFile(dir, name)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", name, err)
		}
		return fh, fh.Close, nil
	}
	return bzip2.NewReader(fh), fh.Close, nil
}
