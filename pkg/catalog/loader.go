package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Jekson949/fe-form/pkg/form"
)

type catalogFile struct {
	Frameworks map[string][]string `json:"frameworks" yaml:"frameworks"`
}

// Parse decodes a catalog document. JSON is attempted first, then YAML, so
// either format works without the caller declaring which it has.
func Parse(data []byte) (*Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("catalog: document is empty")
	}

	var doc catalogFile
	if err := json.Unmarshal(data, &doc); err != nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("catalog: parse document: invalid JSON or YAML")
		}
	}

	if len(doc.Frameworks) == 0 {
		return nil, fmt.Errorf("catalog: document defines no frameworks")
	}

	versions := make(map[form.Framework][]string, len(doc.Frameworks))
	for key, list := range doc.Frameworks {
		framework := form.Framework(strings.ToLower(strings.TrimSpace(key)))
		cleaned := make([]string, 0, len(list))
		for _, entry := range list {
			version := strings.TrimSpace(entry)
			if version == "" {
				return nil, fmt.Errorf("catalog: framework %q contains an empty version entry", key)
			}
			cleaned = append(cleaned, version)
		}
		versions[framework] = cleaned
	}

	return New(versions)
}

// LoadFile reads and parses a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return cat, nil
}
