// Package form defines the value types for the personal-data form: the
// mutable Values snapshot, the hobby list entries, and the framework
// enumeration the version catalog is keyed by.
package form

import "time"

// Framework identifies one of the selectable front-end frameworks. The empty
// string is the unset state.
type Framework string

const (
	FrameworkAngular Framework = "angular"
	FrameworkReact   Framework = "react"
	FrameworkVue     Framework = "vue"
)

// Frameworks returns the selectable frameworks in presentation order.
func Frameworks() []Framework {
	return []Framework{FrameworkAngular, FrameworkReact, FrameworkVue}
}

// Valid reports whether the framework is one of the known values. The unset
// state is not valid; callers check for "" separately when they need to
// distinguish "not chosen yet" from "bogus value".
func (f Framework) Valid() bool {
	switch f {
	case FrameworkAngular, FrameworkReact, FrameworkVue:
		return true
	default:
		return false
	}
}

// HobbyEntry is one row of the dynamic hobby list. Identity is positional;
// the list owner addresses entries by index.
type HobbyEntry struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// Values holds the current state of every field in the form. It is created
// empty at session start, mutated in place by user input and the
// framework-change reset rule, and snapshotted into a payload on submit.
type Values struct {
	FirstName        string
	LastName         string
	DateOfBirth      *time.Time
	Framework        Framework
	FrameworkVersion string
	Email            string
	Hobbies          []HobbyEntry
}

// NewValues returns an empty form seeded with a single blank hobby entry,
// matching the initial row the form presents before any user interaction.
func NewValues() *Values {
	return &Values{
		Hobbies: []HobbyEntry{{}},
	}
}

// Clone returns a deep copy so submission snapshots do not alias the live
// hobby slice.
func (v *Values) Clone() Values {
	out := *v
	if v.DateOfBirth != nil {
		dob := *v.DateOfBirth
		out.DateOfBirth = &dob
	}
	out.Hobbies = append([]HobbyEntry(nil), v.Hobbies...)
	return out
}
