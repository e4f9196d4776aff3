package domain

import "context"

// FallbackPayload is the transparent 1×1 PNG substituted when a map image
// cannot be fetched. Pre-encoded so the fallback path cannot itself fail.
const FallbackPayload = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// ImageResolver turns a record's image reference into a renderable payload.
// Implementations never return an error: any failure is absorbed into a
// fallback Resolution so a comparison always has something to display.
type ImageResolver interface {
	Resolve(ctx context.Context, imageRef string) Resolution
}

// ImageSource tells the caller where a resolved payload came from.
type ImageSource string

const (
	ImageSourceLive     ImageSource = "live"
	ImageSourceCache    ImageSource = "cache"
	ImageSourceFallback ImageSource = "fallback"
)

// Resolution is the outcome of resolving a map image reference. The payload is
// always renderable: either the fetched image as a base64 data URI or the
// fallback pixel. Reason is set only when a fallback was substituted.
type Resolution struct {
	Payload string      `json:"payload"`
	Source  ImageSource `json:"source"`
	Reason  string      `json:"reason,omitempty"`
}

// FallbackResolution builds the substitute result for a failed fetch.
func FallbackResolution(reason string) Resolution {
	return Resolution{
		Payload: FallbackPayload,
		Source:  ImageSourceFallback,
		Reason:  reason,
	}
}

// IsFallback reports whether the payload is the substitute pixel rather than
// a fetched image.
func (r Resolution) IsFallback() bool {
	return r.Source == ImageSourceFallback
}
