// Command validate-data checks the airportfinder reference tables.
//
// Usage:
//
//	go run ./cmd/validate-data [-data ./airportfinder-data]
//
// Files found in the data directory take precedence over the tables
// embedded in the package, so edited tables can be checked before they are
// committed.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andreiashu/airportfinder"
)

func main() {
	dataDir := flag.String("data", "./airportfinder-data", "directory checked before the embedded tables")
	flag.Parse()

	fmt.Printf("Validating reference tables (data dir %s)...\n", *dataDir)

	if err := airportfinder.ValidateDataset(airportfinder.WithDataDir(*dataDir)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Reference tables are valid.")
}
