package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FetchFailure describes one failed map-image fetch. Fetch errors are absorbed
// at the resolver so the UI always gets a renderable payload; these events are
// the durable signal that an upstream image is broken.
type FetchFailure struct {
	ID         string    `json:"id"`
	ImageRef   string    `json:"image_ref"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewFetchFailure stamps a failure event with a fresh ID and the current time.
func NewFetchFailure(imageRef, reason string) FetchFailure {
	return FetchFailure{
		ID:         uuid.NewString(),
		ImageRef:   imageRef,
		Reason:     reason,
		OccurredAt: clock.Now().UTC(),
	}
}

// DiagnosticSink receives fetch-failure events for out-of-band analysis.
type DiagnosticSink interface {
	ReportFetchFailure(ctx context.Context, failure FetchFailure) error
}
