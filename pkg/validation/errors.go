// Package validation defines the error taxonomy for the form: every failure
// is scoped to a dotted field path (or the list-level "hobbies" path) and is
// recoverable by user correction.
package validation

import "sort"

// Kind classifies a validation failure.
type Kind string

const (
	// KindRequired flags an empty or absent value on a required field.
	KindRequired Kind = "required"
	// KindFormat flags a value that does not match the expected shape.
	KindFormat Kind = "format"
	// KindConflict flags a value rejected by the uniqueness check.
	KindConflict Kind = "conflict"
	// KindMinimumCount flags a list that fell below its minimum length.
	KindMinimumCount Kind = "minimum-count"
)

// FieldError is a single validation failure attached to a field path.
type FieldError struct {
	Path    string
	Kind    Kind
	Message string
}

// Error satisfies the error interface.
func (e *FieldError) Error() string {
	if e == nil {
		return "validation: <nil>"
	}
	return "validation: " + e.Path + ": " + e.Message
}

// Required constructs the failure reported for an empty required field.
func Required(path string) *FieldError {
	return &FieldError{Path: path, Kind: KindRequired, Message: "value is required"}
}

// Format constructs a shape-mismatch failure with a field-specific message.
func Format(path, message string) *FieldError {
	return &FieldError{Path: path, Kind: KindFormat, Message: message}
}

// Conflict constructs the failure reported when the uniqueness check rejects
// a value.
func Conflict(path, message string) *FieldError {
	return &FieldError{Path: path, Kind: KindConflict, Message: message}
}

// MinimumCount constructs the list-level failure reported when a dynamic list
// falls below its minimum length.
func MinimumCount(path, message string) *FieldError {
	return &FieldError{Path: path, Kind: KindMinimumCount, Message: message}
}

// Errors maps dotted field paths to their current failure. It is derived
// state: recomputed on every validation pass, never persisted.
type Errors map[string]*FieldError

// Set records the failure under its path. Nil failures are ignored.
func (e Errors) Set(err *FieldError) {
	if err == nil || err.Path == "" {
		return
	}
	e[err.Path] = err
}

// Clear removes any failure recorded for the path.
func (e Errors) Clear(path string) {
	delete(e, path)
}

// Get returns the failure for the path, or nil.
func (e Errors) Get(path string) *FieldError {
	return e[path]
}

// Has reports whether a failure is recorded for the path.
func (e Errors) Has(path string) bool {
	_, ok := e[path]
	return ok
}

// Empty reports whether no failures are recorded.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Paths returns the failing paths in sorted order, mostly for stable test
// output and diagnostics.
func (e Errors) Paths() []string {
	out := make([]string, 0, len(e))
	for path := range e {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// Clone returns a shallow copy; FieldError values are immutable by
// convention so sharing them is fine.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for path, err := range e {
		out[path] = err
	}
	return out
}
