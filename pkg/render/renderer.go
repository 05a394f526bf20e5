// Package render defines the preview contract: a Renderer turns a submitted
// payload into display bytes, and a Registry lets callers pick one by name.
package render

import (
	"context"

	"github.com/Jekson949/fe-form/pkg/payload"
)

// Renderer converts a payload into a byte representation (plain text, HTML).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, p payload.Payload) ([]byte, error)
}
