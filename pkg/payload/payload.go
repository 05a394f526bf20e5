// Package payload defines the write-once snapshot produced by a successful
// submit. It exists only for display; nothing persists it.
package payload

import "github.com/Jekson949/fe-form/pkg/form"

// DateLayout is the zero-padded day-month-year serialization used for the
// date of birth (9 March 2000 -> "09-03-2000").
const DateLayout = "02-01-2006"

// Payload is the flat, display-only projection of validated form values.
type Payload struct {
	FirstName        string            `json:"firstName"`
	LastName         string            `json:"lastName"`
	DateOfBirth      string            `json:"dateOfBirth"`
	Framework        string            `json:"framework"`
	FrameworkVersion string            `json:"frameworkVersion"`
	Email            string            `json:"email"`
	Hobbies          []form.HobbyEntry `json:"hobbies"`
}

// Build assembles a payload from form values. Validation has already run by
// the time this is called; a nil date (unreachable through the session, since
// the field is required) serializes to the empty string.
func Build(values form.Values) Payload {
	dob := ""
	if values.DateOfBirth != nil {
		dob = values.DateOfBirth.Format(DateLayout)
	}
	return Payload{
		FirstName:        values.FirstName,
		LastName:         values.LastName,
		DateOfBirth:      dob,
		Framework:        string(values.Framework),
		FrameworkVersion: values.FrameworkVersion,
		Email:            values.Email,
		Hobbies:          append([]form.HobbyEntry(nil), values.Hobbies...),
	}
}
