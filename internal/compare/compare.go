// Package compare computes the two-sided year comparison at the heart of the
// dashboard: for each selected year it pairs the resolved map image with the
// chart and grid projections of that year's record.
package compare

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/narendra2074/drought-marathwada/internal/domain"
	"github.com/narendra2074/drought-marathwada/internal/observability"
)

// ErrNoSelection signals that one or both years were not selected. It is a
// no-op outcome, not a failure: callers should keep whatever they currently
// display instead of erroring or clearing.
var ErrNoSelection = errors.New("both years must be selected")

// YearSource looks up one year's record. *store.Store satisfies this.
type YearSource interface {
	Get(year int) (domain.Record, error)
}

// Selection is an optionally-present year choice. The zero value means
// "nothing selected".
type Selection struct {
	Year int
	Set  bool
}

// SelectYear returns a present selection for the given year.
func SelectYear(year int) Selection {
	return Selection{Year: year, Set: true}
}

// Side holds the three display artifacts derived for one year.
type Side struct {
	Year    int                 `json:"year"`
	Image   domain.Resolution   `json:"image"`
	Chart   domain.Distribution `json:"chart"`
	Metrics domain.MetricsGrid  `json:"metrics"`
}

// Comparison is the full result of comparing two years.
type Comparison struct {
	Left        Side      `json:"left"`
	Right       Side      `json:"right"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Controller orchestrates record lookup, image resolution, and the pure
// derivations for both sides of a comparison.
type Controller struct {
	source   YearSource
	resolver domain.ImageResolver
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Controller with the given collaborators and observability.
func New(source YearSource, resolver domain.ImageResolver, logger *slog.Logger, metrics *observability.Metrics) *Controller {
	return &Controller{
		source:   source,
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
	}
}

// Compare computes both sides from scratch. It returns ErrNoSelection when
// either year is unselected and propagates the source's lookup error when a
// selected year is absent from the dataset. Image failures never surface
// here; the resolver absorbs them into fallback payloads.
func (c *Controller) Compare(ctx context.Context, left, right Selection) (*Comparison, error) {
	if !left.Set || !right.Set {
		return nil, ErrNoSelection
	}
	start := time.Now()

	leftRec, err := c.source.Get(left.Year)
	if err != nil {
		return nil, err
	}
	rightRec, err := c.source.Get(right.Year)
	if err != nil {
		return nil, err
	}

	// The two fetches have no dependency on each other; run them in parallel.
	var leftImg, rightImg domain.Resolution
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		leftImg = c.resolver.Resolve(ctx, leftRec.ImageRef)
	}()
	go func() {
		defer wg.Done()
		rightImg = c.resolver.Resolve(ctx, rightRec.ImageRef)
	}()
	wg.Wait()

	result := &Comparison{
		Left:        buildSide(leftRec, leftImg),
		Right:       buildSide(rightRec, rightImg),
		GeneratedAt: domain.Now().UTC(),
	}

	c.metrics.ComparisonsTotal.Inc()
	c.metrics.ComparisonDuration.Observe(time.Since(start).Seconds())
	c.logger.Debug("comparison computed",
		"left", left.Year,
		"right", right.Year,
		"left_image", leftImg.Source,
		"right_image", rightImg.Source,
	)

	return result, nil
}

func buildSide(rec domain.Record, img domain.Resolution) Side {
	return Side{
		Year:    rec.Year,
		Image:   img,
		Chart:   domain.BuildDistribution(rec),
		Metrics: domain.BuildMetricsGrid(rec),
	}
}
