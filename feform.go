// Package feform ties the pieces of the personal-data form together:
// session construction, the embedded form definition and version catalog,
// and a preview renderer registry. It is the convenience surface; the real
// work lives in the pkg/ subpackages.
package feform

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Jekson949/fe-form/pkg/catalog"
	"github.com/Jekson949/fe-form/pkg/definition"
	"github.com/Jekson949/fe-form/pkg/form"
	"github.com/Jekson949/fe-form/pkg/render"
	"github.com/Jekson949/fe-form/pkg/renderers/html"
	"github.com/Jekson949/fe-form/pkg/renderers/text"
	"github.com/Jekson949/fe-form/pkg/session"
)

// NewSession exposes the session constructor from the top-level module.
func NewSession(options ...session.Option) *session.Session {
	return session.New(options...)
}

// DefaultCatalog returns the embedded framework/version catalog.
func DefaultCatalog() *catalog.Catalog {
	return catalog.Default()
}

// LoadDefinition parses the embedded OpenAPI document into the registration
// form definition.
func LoadDefinition(ctx context.Context) (definition.Form, error) {
	return definition.Load(ctx)
}

// NewPreviewRegistry returns a registry with the built-in preview renderers
// (text, html) registered.
func NewPreviewRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	registry.MustRegister(text.New())

	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("feform: html renderer: %w", err)
	}
	registry.MustRegister(htmlRenderer)
	return registry, nil
}

// VerifyDefinition cross-checks the form definition against the catalog: the
// framework enumeration in the OpenAPI document must match the catalog's
// framework set, otherwise the version selector and the definition would
// disagree about what is selectable.
func VerifyDefinition(formDef definition.Form, cat *catalog.Catalog) error {
	field, ok := formDef.Field(form.PathFramework)
	if !ok {
		return fmt.Errorf("feform: definition has no %q field", form.PathFramework)
	}

	fromDefinition := append([]string(nil), field.Enum...)
	sort.Strings(fromDefinition)

	var fromCatalog []string
	for _, framework := range cat.Frameworks() {
		fromCatalog = append(fromCatalog, string(framework))
	}
	sort.Strings(fromCatalog)

	if strings.Join(fromDefinition, ",") != strings.Join(fromCatalog, ",") {
		return fmt.Errorf("feform: definition frameworks [%s] do not match catalog frameworks [%s]",
			strings.Join(fromDefinition, ", "), strings.Join(fromCatalog, ", "))
	}
	return nil
}
