// Package definition describes the registration form's fields (labels,
// order, required flags, enumerations, list bounds) as parsed from the
// embedded OpenAPI document. The session enforces the semantics; the
// definition tells interactive frontends what to ask and in which order.
package definition

// Field is one named input of the form. For the hobby list, Items carries
// the sub-fields of each entry.
type Field struct {
	Name     string
	Label    string
	Help     string
	Format   string
	Required bool
	Enum     []string
	MinItems int
	Items    []Field
}

// Form is the ordered field list for one operation.
type Form struct {
	OperationID string
	Summary     string
	Fields      []Field
}

// Field returns the top-level field with the given name.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
