// Package text renders a submitted payload as indented field: value pairs,
// with hobbies as an ordered list.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jekson949/fe-form/pkg/payload"
)

// Renderer is the default preview renderer.
type Renderer struct{}

// New constructs the text renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "text"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes one "field: value" line per scalar field and an indented
// ordered list for hobbies.
func (r *Renderer) Render(ctx context.Context, p payload.Payload) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "firstName: %s\n", p.FirstName)
	fmt.Fprintf(&b, "lastName: %s\n", p.LastName)
	fmt.Fprintf(&b, "dateOfBirth: %s\n", p.DateOfBirth)
	fmt.Fprintf(&b, "framework: %s\n", p.Framework)
	fmt.Fprintf(&b, "frameworkVersion: %s\n", p.FrameworkVersion)
	fmt.Fprintf(&b, "email: %s\n", p.Email)
	b.WriteString("hobbies:\n")
	for _, hobby := range p.Hobbies {
		fmt.Fprintf(&b, "  - name: %s\n", hobby.Name)
		fmt.Fprintf(&b, "    duration: %s\n", hobby.Duration)
	}
	return []byte(b.String()), nil
}
