// Package store loads the drought dataset CSV into memory and indexes it by
// year. The store is immutable after Load and safe for concurrent readers.
package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	btr "github.com/tidwall/btree"

	"github.com/narendra2074/drought-marathwada/internal/domain"
)

// ErrYearNotFound reports a lookup for a year absent from the dataset.
var ErrYearNotFound = errors.New("year not found")

// yearItem is a btree entry; records are ordered by year.
type yearItem struct {
	year int
	rec  domain.Record
}

func byYear(a, b interface{}) bool {
	return a.(*yearItem).year < b.(*yearItem).year
}

// Store is an in-memory view of the drought dataset indexed by year.
type Store struct {
	index *btr.BTree
	years []int
}

// Load reads and validates the CSV at path. Missing columns, unparseable
// cells, and negative shares fail the load. Duplicate years are skipped with
// a warning; the first row for a year wins.
func Load(path string, logger *slog.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	var missing []string
	for _, want := range requiredColumns() {
		if _, ok := col[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset %s missing column(s): %s", path, strings.Join(missing, ", "))
	}

	tree := btr.New(byYear)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after header
		rec, err := parseRow(row, col)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if tree.Get(&yearItem{year: rec.Year}) != nil {
			logger.Warn("duplicate year row skipped", "year", rec.Year, "line", line)
			continue
		}
		tree.Set(&yearItem{year: rec.Year, rec: rec})
	}

	years := make([]int, 0, tree.Len())
	tree.Ascend(nil, func(item interface{}) bool {
		years = append(years, item.(*yearItem).year)
		return true
	})

	return &Store{index: tree, years: years}, nil
}

func requiredColumns() []string {
	cols := []string{domain.ColumnYear, domain.ColumnImageRef}
	for _, c := range domain.Categories() {
		cols = append(cols, c.Key())
	}
	return cols
}

func parseRow(row []string, col map[string]int) (domain.Record, error) {
	rawYear := strings.TrimSpace(row[col[domain.ColumnYear]])
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return domain.Record{}, fmt.Errorf("year %q: %w", rawYear, err)
	}

	rec := domain.Record{
		Year:     year,
		ImageRef: strings.TrimSpace(row[col[domain.ColumnImageRef]]),
	}
	for _, c := range domain.Categories() {
		raw := strings.TrimSpace(row[col[c.Key()]])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Record{}, fmt.Errorf("%s %q: %w", c.Key(), raw, err)
		}
		if v < 0 {
			return domain.Record{}, fmt.Errorf("%s is negative (%v)", c.Key(), v)
		}
		rec.Shares[c] = v
	}
	return rec, nil
}

// Get returns the record for a year, or an error wrapping ErrYearNotFound.
func (s *Store) Get(year int) (domain.Record, error) {
	item := s.index.Get(&yearItem{year: year})
	if item == nil {
		return domain.Record{}, fmt.Errorf("year %d: %w", year, ErrYearNotFound)
	}
	return item.(*yearItem).rec, nil
}

// Years returns the distinct years in ascending order. The slice is a copy;
// callers may not mutate the store through it.
func (s *Store) Years() []int {
	out := make([]int, len(s.years))
	copy(out, s.years)
	return out
}

// Len returns the number of indexed years.
func (s *Store) Len() int {
	return len(s.years)
}

// CheckReadiness satisfies the HTTP readiness probe. A store is ready once it
// holds at least one record.
func (s *Store) CheckReadiness(ctx context.Context) error {
	if s.Len() == 0 {
		return errors.New("store is empty")
	}
	return nil
}
