package definition

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"
)

// OperationID of the registration operation inside the embedded document.
const OperationID = "submitRegistration"

// Load parses the embedded OpenAPI document and returns the registration
// form definition.
func Load(ctx context.Context) (Form, error) {
	return Parse(ctx, embeddedDocument, OperationID)
}

// Parse extracts the form definition for the operation from an OpenAPI 3
// document. The request body's application/json schema supplies the fields;
// presentation order follows the schema's required list, with any optional
// properties sorted after it.
func Parse(ctx context.Context, raw []byte, operationID string) (Form, error) {
	if len(raw) == 0 {
		return Form{}, errors.New("definition: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return Form{}, fmt.Errorf("definition: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return Form{}, fmt.Errorf("definition: validate document: %w", err)
	}

	operation := findOperation(doc, operationID)
	if operation == nil {
		return Form{}, fmt.Errorf("definition: operation %q not found", operationID)
	}

	schema := requestSchema(operation)
	if schema == nil {
		return Form{}, fmt.Errorf("definition: operation %q has no JSON request schema", operationID)
	}

	return Form{
		OperationID: operationID,
		Summary:     operation.Summary,
		Fields:      fieldsFromSchema(schema),
	}, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete, item.Patch,
		} {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	mt, ok := operation.RequestBody.Value.Content["application/json"]
	if !ok || mt.Schema == nil {
		return nil
	}
	return mt.Schema.Value
}

func fieldsFromSchema(schema *openapi3.Schema) []Field {
	if schema == nil || len(schema.Properties) == 0 {
		return nil
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	out := make([]Field, 0, len(schema.Properties))
	for _, name := range orderedNames(schema) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value

		field := Field{
			Name:     name,
			Label:    labelFor(prop, name),
			Help:     prop.Description,
			Format:   prop.Format,
			Required: required[name],
		}
		for _, value := range prop.Enum {
			if s, ok := value.(string); ok {
				field.Enum = append(field.Enum, s)
			}
		}
		if firstSchemaType(prop.Type) == "array" {
			field.MinItems = int(prop.MinItems)
			if prop.Items != nil && prop.Items.Value != nil {
				field.Items = fieldsFromSchema(prop.Items.Value)
			}
		}
		out = append(out, field)
	}
	return out
}

// orderedNames yields property names in the order of the schema's required
// list (kin-openapi preserves it), then the remaining names sorted. Property
// maps themselves carry no order.
func orderedNames(schema *openapi3.Schema) []string {
	seen := make(map[string]bool, len(schema.Required))
	out := make([]string, 0, len(schema.Properties))
	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; ok && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	rest := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func labelFor(prop *openapi3.Schema, name string) string {
	if title := strings.TrimSpace(prop.Title); title != "" {
		return title
	}
	return humanize(name)
}

// humanize turns camelCase property names into sentence-case labels
// ("frameworkVersion" -> "Framework version").
func humanize(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
