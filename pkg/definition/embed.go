package definition

import _ "embed"

//go:embed openapi.yaml
var embeddedDocument []byte

// Document exposes the raw embedded OpenAPI description of the registration
// form.
func Document() []byte {
	return append([]byte(nil), embeddedDocument...)
}
