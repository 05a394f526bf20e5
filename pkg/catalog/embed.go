package catalog

import (
	_ "embed"
	"sync"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog (three versions per framework).
// Parsing the embedded document cannot fail unless the bundle itself is
// broken, so errors panic at first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := Parse(embeddedCatalog)
		if err != nil {
			panic(err)
		}
		defaultCatalog = cat
	})
	return defaultCatalog
}
