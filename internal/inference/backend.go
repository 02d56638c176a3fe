// Package inference talks to the multimodal model that reads document and face images.
package inference

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownProvider is returned when the configured provider has no implementation.
var ErrUnknownProvider = errors.New("unknown inference provider")

// Part is one element of the ordered prompt: either instruction text or an image payload.
type Part struct {
	Text     string
	Data     []byte
	MimeType string
}

// TextPart returns a text instruction part.
func TextPart(text string) Part { return Part{Text: text} }

// ImagePart returns an inline image part.
func ImagePart(data []byte, mimeType string) Part { return Part{Data: data, MimeType: mimeType} }

// IsImage reports whether the part carries image bytes.
func (p Part) IsImage() bool { return len(p.Data) > 0 }

// Request is a single generation call.
type Request struct {
	// Operation labels the call in logs, traces and metrics (e.g. "extract", "compare").
	Operation string
	Parts     []Part
}

// ImageCount returns how many image parts the request carries.
func (r Request) ImageCount() int {
	n := 0
	for _, p := range r.Parts {
		if p.IsImage() {
			n++
		}
	}
	return n
}

// Backend turns an ordered sequence of parts into free-form text.
// Implementations must be safe for concurrent use.
type Backend interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// APIError is a structured error reported by the provider with an HTTP status.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("inference api error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("inference api error %d: %s", e.StatusCode, e.Message)
}

// Safe reports whether Message may be shown to API callers. Only statuses that
// describe caller-actionable conditions qualify: bad argument, permission, quota and overload.
func (e *APIError) Safe() bool {
	switch e.StatusCode {
	case 400, 403, 429, 503:
		return e.Message != ""
	default:
		return false
	}
}
