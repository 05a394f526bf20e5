package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jekson949/fe-form/pkg/form"
	"github.com/Jekson949/fe-form/pkg/payload"
	"github.com/Jekson949/fe-form/pkg/validation"
)

var (
	// ErrValidationFailed signals that submission was refused; the per-field
	// failures are available via Errors().
	ErrValidationFailed = errors.New("session: validation failed")
	// ErrSuperseded signals that the email value changed while its
	// uniqueness check was in flight, so the stale outcome was discarded.
	ErrSuperseded = errors.New("session: email check superseded")
)

// Validate runs the synchronous validation pass over every field and the
// hobby list, replacing the derived error set. The async email check is not
// part of this pass; Submit runs it after the local pass succeeds.
func (s *Session) Validate() validation.Errors {
	fresh := make(validation.Errors)

	fresh.Set(validation.RequiredString(form.PathFirstName, s.values.FirstName))
	fresh.Set(validation.RequiredString(form.PathLastName, s.values.LastName))
	if s.values.DateOfBirth == nil {
		fresh.Set(validation.Required(form.PathDateOfBirth))
	}
	if s.values.Framework == "" {
		fresh.Set(validation.Required(form.PathFramework))
	}
	fresh.Set(validation.RequiredString(form.PathFrameworkVersion, s.values.FrameworkVersion))
	fresh.Set(localEmailError(s.values.Email))

	if len(s.values.Hobbies) == 0 {
		fresh.Set(validation.MinimumCount(form.PathHobbies, MinHobbyMessage))
	}
	for idx, entry := range s.values.Hobbies {
		fresh.Set(validation.RequiredString(form.HobbyNamePath(idx), entry.Name))
		fresh.Set(validation.RequiredString(form.HobbyDurationPath(idx), entry.Duration))
	}

	s.errors = fresh
	return s.errors
}

// Submit validates the whole form, runs the email uniqueness check, and on
// success returns the display payload. Values are left untouched, so
// resubmitting unchanged valid values yields structurally identical
// payloads.
//
// On failure the returned error is ErrValidationFailed (field errors remain
// visible through Errors()), ErrSuperseded when the email changed mid-check,
// or the context's error when the wait was cancelled.
func (s *Session) Submit(ctx context.Context) (payload.Payload, error) {
	if !s.Validate().Empty() {
		return payload.Payload{}, ErrValidationFailed
	}

	generation := s.emailSeq.Next()
	available, err := s.checker.Check(ctx, s.values.Email)
	if err != nil {
		return payload.Payload{}, fmt.Errorf("session: email check: %w", err)
	}
	if !s.emailSeq.Current(generation) {
		return payload.Payload{}, ErrSuperseded
	}
	if !available {
		s.errors.Set(validation.Conflict(form.PathEmail, "email already exists"))
		return payload.Payload{}, ErrValidationFailed
	}

	return payload.Build(*s.values), nil
}
