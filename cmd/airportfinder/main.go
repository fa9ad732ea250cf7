// Command airportfinder resolves a Spanish city or autonomous community and
// prints the nearest airports.
//
// Usage:
//
//	airportfinder [-n 2] [-json] [-config config.yaml] <place>
//
// Settings are read from the optional YAML file, a .env file in the working
// directory and AIRPORTFINDER_* environment variables, in that order.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/andreiashu/airportfinder"
	"github.com/andreiashu/airportfinder/internal/config"
)

const usage = "usage: airportfinder [-n N] [-json] [-config file] <place>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("airportfinder", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a YAML config file")
	topN := flags.Int("n", -1, "number of airports to print (default from config)")
	asJSON := flags.Bool("json", false, "print the result as JSON")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if flags.NArg() == 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	query := strings.Join(flags.Args(), " ")

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: reading .env: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *topN >= 0 {
		cfg.TopN = *topN
	}

	ds, err := airportfinder.LoadDataset(airportfinder.WithDataDir(cfg.DataDir))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var opts []airportfinder.ResolverOption
	if !cfg.Suggestions {
		opts = append(opts, airportfinder.WithoutSuggestions())
	}

	loc, err := ds.Locator(opts...).Locate(query, cfg.TopN)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(loc); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}
	printLocation(stdout, loc, cfg.GeohashPrecision)
	return 0
}

func printLocation(w io.Writer, loc airportfinder.Location, precision int) {
	if loc.Redirected {
		fmt.Fprintf(w, "%s → %s\n", loc.Query, loc.Place.Name)
	}
	fmt.Fprintf(w, "%s (%.4f, %.4f) geohash=%s\n", loc.Place.Name, loc.Place.Lat, loc.Place.Lon, loc.Place.Geohash(precision))
	for i, ap := range loc.Airports {
		fmt.Fprintf(w, "  %d. %s %-40s %6.1f km  (%s)\n", i+1, ap.IATA, ap.Name, ap.DistanceKm, ap.City)
	}
}
