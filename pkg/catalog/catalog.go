// Package catalog provides the static lookup table mapping a chosen
// framework to its selectable version strings. The version selector only
// ever offers values from this table.
package catalog

import (
	"errors"
	"fmt"

	"github.com/Jekson949/fe-form/pkg/form"
)

// Catalog maps each framework to its ordered list of selectable versions.
type Catalog struct {
	versions map[form.Framework][]string
}

// New builds a catalog from the supplied mapping. Unknown framework keys and
// empty version lists are rejected so a malformed catalog fails at wiring
// time rather than mid-session.
func New(versions map[form.Framework][]string) (*Catalog, error) {
	if len(versions) == 0 {
		return nil, errors.New("catalog: no frameworks configured")
	}
	out := make(map[form.Framework][]string, len(versions))
	for framework, list := range versions {
		if !framework.Valid() {
			return nil, fmt.Errorf("catalog: unknown framework %q", framework)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("catalog: framework %q has no versions", framework)
		}
		out[framework] = append([]string(nil), list...)
	}
	return &Catalog{versions: out}, nil
}

// Frameworks returns the configured frameworks in presentation order.
func (c *Catalog) Frameworks() []form.Framework {
	if c == nil {
		return nil
	}
	var out []form.Framework
	for _, framework := range form.Frameworks() {
		if _, ok := c.versions[framework]; ok {
			out = append(out, framework)
		}
	}
	return out
}

// Versions returns the ordered versions for the framework. The slice is a
// copy; callers may reorder it freely.
func (c *Catalog) Versions(framework form.Framework) []string {
	if c == nil {
		return nil
	}
	list, ok := c.versions[framework]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

// Has reports whether version is selectable for the framework.
func (c *Catalog) Has(framework form.Framework, version string) bool {
	if c == nil {
		return false
	}
	for _, candidate := range c.versions[framework] {
		if candidate == version {
			return true
		}
	}
	return false
}
