// Command validate checks a drought dataset CSV before it is served: required
// columns, parsable non-negative shares, unique years, and usable map image
// references. It prints a per-phase PASS/FAIL summary and exits non-zero when
// any phase fails.
//
// Usage:
//
//	go run ./cmd/validate -data main_data.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/narendra2074/drought-marathwada/internal/domain"
)

// sumTolerance bounds how far a row's six shares may drift from 100 before
// the row is flagged. Real exports carry rounding dust; anything past one
// percentage point is suspicious.
const sumTolerance = 1.0

// phase tracks pass/fail for a validation phase. Errors fail the run;
// warnings are reported but do not change the exit code.
type phase struct {
	name     string
	errors   []string
	warnings []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataPath := flag.String("data", "main_data.csv", "path to the dataset CSV")
	flag.Parse()

	os.Exit(run(*dataPath))
}

// dataRow is a parsed CSV row with field values keyed by header name.
type dataRow struct {
	lineNum int
	fields  map[string]string
}

func run(path string) int {
	fmt.Println("=== Drought Dataset Validation ===")
	fmt.Println()
	fmt.Printf("Dataset: %s\n", path)

	header, rows, err := loadCSV(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load dataset: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateSchema(header),
		validateValues(rows),
		validateYears(rows),
		validateImageRefs(rows),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		switch {
		case !p.passed():
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		case len(p.warnings) > 0:
			status = fmt.Sprintf("\033[33mPASS (%d warnings)\033[0m", len(p.warnings))
		}
		fmt.Printf("  %-38s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Rows: %d data rows, %d columns\n", len(rows), len(header))

	for _, p := range phases {
		if p.passed() && len(p.warnings) == 0 {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
		for _, w := range p.warnings {
			fmt.Printf("  [warn] %s\n", w)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadCSV(path string) ([]string, []dataRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) < 2 {
		return nil, nil, fmt.Errorf("no data rows in %s", path)
	}

	header := all[0]
	rows := make([]dataRow, 0, len(all)-1)
	for i, row := range all[1:] {
		fields := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(row) {
				fields[h] = strings.TrimSpace(row[j])
			}
		}
		rows = append(rows, dataRow{lineNum: i + 2, fields: fields})
	}
	return header, rows, nil
}

// ── Phase 1: Schema ──
// The loader reads columns by name; a missing or doubled header breaks it.

func validateSchema(header []string) *phase {
	p := &phase{name: "Phase 1: Schema (columns)"}

	have := make(map[string]bool, len(header))
	for _, h := range header {
		if have[h] {
			p.errorf("column %q appears more than once", h)
		}
		have[h] = true
	}

	required := []string{domain.ColumnYear, domain.ColumnImageRef}
	for _, c := range domain.Categories() {
		required = append(required, c.Key())
	}
	for _, want := range required {
		if !have[want] {
			p.errorf("missing required column %q", want)
		}
	}
	return p
}

// ── Phase 2: Values ──
// Every share must be a non-negative number and each row should sum to 100.

func validateValues(rows []dataRow) *phase {
	p := &phase{name: "Phase 2: Values (shares)"}

	for _, row := range rows {
		rawYear := row.fields[domain.ColumnYear]
		if _, err := strconv.Atoi(rawYear); err != nil {
			p.errorf("line %d: year %q is not an integer", row.lineNum, rawYear)
		}

		var sum float64
		parsable := true
		for _, c := range domain.Categories() {
			raw := row.fields[c.Key()]
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				p.errorf("line %d: %s %q is not a number", row.lineNum, c.Key(), raw)
				parsable = false
				continue
			}
			if v < 0 {
				p.errorf("line %d: %s is negative (%v)", row.lineNum, c.Key(), v)
				parsable = false
			}
			sum += v
		}
		if parsable && math.Abs(sum-100) > sumTolerance {
			p.warnf("line %d: shares sum to %.2f, expected 100", row.lineNum, sum)
		}
	}
	return p
}

// ── Phase 3: Years ──
// The store keys records by year, so duplicates silently shadow each other.

func validateYears(rows []dataRow) *phase {
	p := &phase{name: "Phase 3: Years (uniqueness)"}

	seen := make(map[string]int, len(rows))
	for _, row := range rows {
		year := row.fields[domain.ColumnYear]
		if first, dup := seen[year]; dup {
			p.errorf("line %d: year %s already defined on line %d", row.lineNum, year, first)
			continue
		}
		seen[year] = row.lineNum
	}
	return p
}

// ── Phase 4: Image references ──
// The resolver needs a fetchable URL per year; empty refs guarantee fallbacks.

func validateImageRefs(rows []dataRow) *phase {
	p := &phase{name: "Phase 4: Image references"}

	for _, row := range rows {
		ref := row.fields[domain.ColumnImageRef]
		if ref == "" {
			p.errorf("line %d: empty image reference", row.lineNum)
			continue
		}
		if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
			p.warnf("line %d: image reference %q is not an http(s) URL", row.lineNum, ref)
		}
	}
	return p
}
