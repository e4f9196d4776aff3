// Package imagefetch resolves map image references over HTTP. Failures are
// absorbed into the fallback payload; the resolver never fails its caller.
package imagefetch

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/narendra2074/drought-marathwada/internal/domain"
	"github.com/narendra2074/drought-marathwada/internal/observability"
)

// maxImageBytes caps how much of an upstream response is read. Anything
// larger is treated as a failed fetch rather than buffered into memory.
const maxImageBytes = 20 << 20

// Client implements domain.ImageResolver with a plain HTTP GET per call.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
	sink       domain.DiagnosticSink
}

// NewClient creates an image-fetching resolver. The timeout bounds the whole
// fetch including body read. Pass a nil sink to disable diagnostic publishing;
// failures are still logged and counted.
func NewClient(timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics, sink domain.DiagnosticSink) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
		sink:    sink,
	}
}

// Resolve fetches imageRef and returns it as a base64 data URI. On any
// failure (request error, non-200, oversized or non-image payload) it returns
// the fallback resolution instead; the caller never sees an error.
func (c *Client) Resolve(ctx context.Context, imageRef string) domain.Resolution {
	start := time.Now()
	payload, err := c.fetch(ctx, imageRef)
	c.metrics.ImageFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		return c.fallback(ctx, imageRef, err)
	}

	c.metrics.ImageFetchTotal.WithLabelValues(string(domain.ImageSourceLive)).Inc()
	return domain.Resolution{Payload: payload, Source: domain.ImageSourceLive}
}

func (c *Client) fetch(ctx context.Context, imageRef string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageRef, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if len(data) == 0 {
		return "", errors.New("empty payload")
	}
	if len(data) > maxImageBytes {
		return "", fmt.Errorf("payload exceeds %d bytes", maxImageBytes)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("payload is %s, not an image", mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// fallback logs the failure, publishes a diagnostic event, and returns the
// substitute resolution.
func (c *Client) fallback(ctx context.Context, imageRef string, cause error) domain.Resolution {
	reason := cause.Error()
	c.logger.Warn("map image fetch failed, serving fallback",
		"image_ref", imageRef,
		"reason", reason,
	)
	c.metrics.ImageFetchTotal.WithLabelValues(string(domain.ImageSourceFallback)).Inc()

	if c.sink != nil {
		failure := domain.NewFetchFailure(imageRef, reason)
		if err := c.sink.ReportFetchFailure(ctx, failure); err != nil {
			c.logger.Warn("diagnostic publish failed",
				"failure_id", failure.ID,
				"image_ref", imageRef,
				"error", err,
			)
		}
	}

	return domain.FallbackResolution(reason)
}
