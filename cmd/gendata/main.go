// Command gendata generates a synthetic drought dataset CSV for local runs
// and demos. Category shares are random but always sum to 100.0 after
// rounding, matching what the service expects from real SPI exports.
//
// Usage:
//
//	go run ./cmd/gendata -out main_data.csv -from 1980 -to 2023 -seed 42
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/narendra2074/drought-marathwada/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "main_data.csv", "output CSV path")
	from := flag.Int("from", 1980, "first year to generate")
	to := flag.Int("to", 2023, "last year to generate (inclusive)")
	seed := flag.Int64("seed", 42, "PRNG seed, fixed for reproducible fixtures")
	flag.Parse()

	if *to < *from {
		return fmt.Errorf("-to (%d) must not precede -from (%d)", *to, *from)
	}

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for year := *from; year <= *to; year++ {
		if err := w.Write(row(year, rng)); err != nil {
			return fmt.Errorf("write year %d: %w", year, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", *out, err)
	}

	log.Printf("wrote %d years (%d..%d) to %s", *to-*from+1, *from, *to, *out)
	return nil
}

func header() []string {
	cols := []string{domain.ColumnYear}
	for _, c := range domain.Categories() {
		cols = append(cols, c.Key())
	}
	return append(cols, domain.ColumnImageRef)
}

// row produces one year of shares: random weights normalized to 100, rounded
// to one decimal, with the remainder folded into the last category so the row
// still sums to exactly 100.0.
func row(year int, rng *rand.Rand) []string {
	weights := make([]float64, domain.NumCategories)
	var total float64
	for i := range weights {
		// The floor keeps every category present; the rounding remainder
		// can then never push the last share negative.
		weights[i] = 0.05 + rng.Float64()
		total += weights[i]
	}

	shares := make([]float64, domain.NumCategories)
	var used float64
	for i := 0; i < domain.NumCategories-1; i++ {
		shares[i] = math.Round(weights[i]/total*1000) / 10
		used += shares[i]
	}
	shares[domain.NumCategories-1] = math.Round((100-used)*10) / 10

	cols := []string{strconv.Itoa(year)}
	for _, s := range shares {
		cols = append(cols, strconv.FormatFloat(s, 'f', 1, 64))
	}
	return append(cols, fmt.Sprintf("https://maps.example.org/marathwada/%d.jpg", year))
}
