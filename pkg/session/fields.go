package session

import (
	"fmt"
	"time"

	"github.com/Jekson949/fe-form/pkg/form"
	"github.com/Jekson949/fe-form/pkg/validation"
)

// SetFirstName stores the value and recomputes the field's required check.
func (s *Session) SetFirstName(value string) {
	old := s.values.FirstName
	s.values.FirstName = value
	s.revalidateRequired(form.PathFirstName, value)
	s.publish(form.PathFirstName, old, value)
}

// SetLastName stores the value and recomputes the field's required check.
func (s *Session) SetLastName(value string) {
	old := s.values.LastName
	s.values.LastName = value
	s.revalidateRequired(form.PathLastName, value)
	s.publish(form.PathLastName, old, value)
}

// SetDateOfBirth stores the date. A zero time unsets the field. Any valid
// calendar date is accepted; there is deliberately no range constraint.
func (s *Session) SetDateOfBirth(value time.Time) {
	old := s.dateString()
	if value.IsZero() {
		s.values.DateOfBirth = nil
		s.errors.Set(validation.Required(form.PathDateOfBirth))
	} else {
		date := value
		s.values.DateOfBirth = &date
		s.errors.Clear(form.PathDateOfBirth)
	}
	s.publish(form.PathDateOfBirth, old, s.dateString())
}

func (s *Session) dateString() string {
	if s.values.DateOfBirth == nil {
		return ""
	}
	return s.values.DateOfBirth.Format("2006-01-02")
}

// SetFramework stores the chosen framework ("" unsets it) and publishes the
// change, which triggers the version reset watcher. Unknown non-empty values
// are rejected; they are not reachable through normal interaction.
func (s *Session) SetFramework(value form.Framework) error {
	if value != "" && !value.Valid() {
		return fmt.Errorf("session: unknown framework %q", value)
	}
	old := string(s.values.Framework)
	s.values.Framework = value
	if value == "" {
		s.errors.Set(validation.Required(form.PathFramework))
	} else {
		s.errors.Clear(form.PathFramework)
	}
	s.publish(form.PathFramework, old, string(value))
	return nil
}

// SetFrameworkVersion stores the chosen version. It fails while the version
// field is disabled (no framework chosen) and rejects values outside the
// catalog for the current framework.
func (s *Session) SetFrameworkVersion(value string) error {
	if !s.VersionSelectable() {
		return fmt.Errorf("session: version is not selectable until a framework is chosen")
	}
	if value != "" && !s.catalog.Has(s.values.Framework, value) {
		return fmt.Errorf("session: version %q is not available for framework %q", value, s.values.Framework)
	}
	old := s.values.FrameworkVersion
	s.values.FrameworkVersion = value
	s.revalidateRequired(form.PathFrameworkVersion, value)
	s.publish(form.PathFrameworkVersion, old, value)
	return nil
}

// SetEmail stores the value, recomputes the local required/format checks,
// and supersedes any in-flight uniqueness check so a stale result cannot be
// applied over this newer value.
func (s *Session) SetEmail(value string) {
	old := s.values.Email
	s.values.Email = value
	s.emailSeq.Next()
	s.errors.Clear(form.PathEmail)
	s.errors.Set(localEmailError(value))
	s.publish(form.PathEmail, old, value)
}

func localEmailError(value string) *validation.FieldError {
	if err := validation.RequiredString(form.PathEmail, value); err != nil {
		return err
	}
	return validation.EmailFormat(form.PathEmail, value)
}

func (s *Session) revalidateRequired(path, value string) {
	if err := validation.RequiredString(path, value); err != nil {
		s.errors.Set(err)
		return
	}
	s.errors.Clear(path)
}
