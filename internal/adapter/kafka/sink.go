// Package kafka publishes map-fetch diagnostics to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/narendra2074/drought-marathwada/internal/config"
	"github.com/narendra2074/drought-marathwada/internal/domain"
	"github.com/narendra2074/drought-marathwada/internal/observability"
)

// Sink produces fetch-failure events to the diagnostics topic.
// It implements domain.DiagnosticSink.
type Sink struct {
	writer  *kafkago.Writer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewSink creates a Kafka producer for the configured diagnostics topic.
func NewSink(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Sink {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.DiagKafkaBrokers...),
		Topic:        cfg.DiagKafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Sink{writer: w, logger: logger, metrics: metrics}
}

// ReportFetchFailure serializes and publishes one failure event. This runs on
// the comparison's request path, so the resolver treats errors as non-fatal.
func (s *Sink) ReportFetchFailure(ctx context.Context, failure domain.FetchFailure) error {
	msg, err := serializeToMessage(failure)
	if err != nil {
		return err
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish fetch failure: %w", err)
	}
	s.metrics.DiagEventsPublished.Inc()
	s.logger.Debug("fetch failure published", "id", failure.ID, "image_ref", failure.ImageRef)
	return nil
}

// Close flushes and closes the underlying writer.
func (s *Sink) Close() error {
	return s.writer.Close()
}

// serializeToMessage marshals a FetchFailure into a Kafka message keyed by
// the event ID, so replays of the same event land in the same partition.
func serializeToMessage(failure domain.FetchFailure) (kafkago.Message, error) {
	data, err := json.Marshal(failure)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize fetch failure: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(failure.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "image_ref", Value: []byte(failure.ImageRef)},
			{Key: "occurred_at", Value: []byte(failure.OccurredAt.Format(time.RFC3339))},
		},
	}, nil
}
