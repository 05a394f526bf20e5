// Package session owns the live state of one form: current values, derived
// validation errors, the framework->version reset rule, the hobby list
// invariant, and the submit flow that produces a display payload.
//
// A session is driven by a single interactive caller at a time; reactivity is
// modelled as an explicit publish step on value change rather than implicit
// watching.
package session

import (
	"github.com/Jekson949/fe-form/pkg/catalog"
	"github.com/Jekson949/fe-form/pkg/emailcheck"
	"github.com/Jekson949/fe-form/pkg/form"
	"github.com/Jekson949/fe-form/pkg/validation"
)

// Watcher observes value changes on a subscribed field path. Old and new are
// the string renderings of the field value.
type Watcher func(old, new string)

// Session is the form controller. Zero value is not usable; construct with
// New.
type Session struct {
	values   *form.Values
	errors   validation.Errors
	catalog  *catalog.Catalog
	checker  emailcheck.Checker
	emailSeq emailcheck.Sequence
	watchers map[string][]Watcher
}

// Option configures a session at construction time.
type Option func(*Session)

// WithCatalog replaces the built-in version catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(s *Session) {
		if cat != nil {
			s.catalog = cat
		}
	}
}

// WithChecker replaces the email uniqueness checker. Tests use an instant
// one.
func WithChecker(checker emailcheck.Checker) Option {
	return func(s *Session) {
		if checker != nil {
			s.checker = checker
		}
	}
}

// New constructs a session with empty values, one blank hobby row, and the
// framework->version reset rule subscribed.
func New(options ...Option) *Session {
	s := &Session{
		values:   form.NewValues(),
		errors:   make(validation.Errors),
		catalog:  catalog.Default(),
		checker:  emailcheck.NewSimulatedDirectory(),
		watchers: make(map[string][]Watcher),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	// Any framework change, including to the unset state, clears the
	// dependent version value and whatever error it carried. This is a
	// value-clearing side effect, not a validation rule.
	s.Subscribe(form.PathFramework, func(_, _ string) {
		s.values.FrameworkVersion = ""
		s.errors.Clear(form.PathFrameworkVersion)
	})

	return s
}

// Subscribe registers a watcher for value changes on the given field path.
// Watchers run synchronously, in registration order, during the mutator that
// changed the value.
func (s *Session) Subscribe(path string, watcher Watcher) {
	if path == "" || watcher == nil {
		return
	}
	s.watchers[path] = append(s.watchers[path], watcher)
}

func (s *Session) publish(path, old, new string) {
	for _, watcher := range s.watchers[path] {
		watcher(old, new)
	}
}

// Values returns a copy of the current form values.
func (s *Session) Values() form.Values {
	return s.values.Clone()
}

// Errors returns the current validation errors keyed by field path. The map
// is shared with the session; treat it as read-only.
func (s *Session) Errors() validation.Errors {
	return s.errors
}

// Catalog exposes the version catalog the session validates against.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// VersionSelectable reports whether the version field is interactive. It is
// disabled while no framework is chosen.
func (s *Session) VersionSelectable() bool {
	return s.values.Framework != ""
}
