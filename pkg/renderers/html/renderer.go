// Package html renders a submitted payload as an HTML fragment using a
// pongo2 template. User-entered strings pass through a strict bluemonday
// policy before interpolation.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/Jekson949/fe-form/pkg/payload"
)

const previewTemplate = "templates/preview.tmpl"

// Option configures the HTML renderer before construction.
type Option func(*config)

type config struct {
	templates fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The
// bundle must contain templates/preview.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// Renderer produces the HTML preview fragment.
type Renderer struct {
	set    *pongo2.TemplateSet
	policy *bluemonday.Policy

	once sync.Once
	tmpl *pongo2.Template
	err  error
}

// New constructs the renderer with the embedded template bundle unless an
// override is supplied.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templates: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templates == nil {
		cfg.templates = TemplatesFS()
	}

	return &Renderer{
		set:    pongo2.NewSet("feform", pongo2.NewFSLoader(cfg.templates)),
		policy: bluemonday.StrictPolicy(),
	}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render sanitizes every user-entered string and interpolates the preview
// template. Sanitized values are already HTML-safe, so the template marks
// them with the safe filter to avoid double escaping.
func (r *Renderer) Render(ctx context.Context, p payload.Payload) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpl, err := r.template()
	if err != nil {
		return nil, err
	}

	hobbies := make([]map[string]any, 0, len(p.Hobbies))
	for _, hobby := range p.Hobbies {
		hobbies = append(hobbies, map[string]any{
			"name":     r.policy.Sanitize(hobby.Name),
			"duration": r.policy.Sanitize(hobby.Duration),
		})
	}

	out, err := tmpl.ExecuteBytes(pongo2.Context{
		"payload": map[string]any{
			"firstName":        r.policy.Sanitize(p.FirstName),
			"lastName":         r.policy.Sanitize(p.LastName),
			"dateOfBirth":      r.policy.Sanitize(p.DateOfBirth),
			"framework":        r.policy.Sanitize(p.Framework),
			"frameworkVersion": r.policy.Sanitize(p.FrameworkVersion),
			"email":            r.policy.Sanitize(p.Email),
			"hobbies":          hobbies,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: execute template: %w", err)
	}
	return out, nil
}

func (r *Renderer) template() (*pongo2.Template, error) {
	r.once.Do(func() {
		tmpl, err := r.set.FromFile(previewTemplate)
		if err != nil {
			r.err = fmt.Errorf("html renderer: load template %q: %w", previewTemplate, err)
			return
		}
		r.tmpl = tmpl
	})
	return r.tmpl, r.err
}
