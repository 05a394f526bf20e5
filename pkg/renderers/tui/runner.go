package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jekson949/fe-form/pkg/definition"
	"github.com/Jekson949/fe-form/pkg/form"
	"github.com/Jekson949/fe-form/pkg/payload"
	"github.com/Jekson949/fe-form/pkg/session"
	"github.com/Jekson949/fe-form/pkg/validation"
)

const dateInputLayout = "2006-01-02"

// Runner walks the form definition, feeding answers into the session and
// re-prompting until each field validates. It owns no form state of its own.
type Runner struct {
	session *session.Session
	form    definition.Form
	driver  PromptDriver
	theme   Theme
}

// NewRunner constructs a runner over the given session and form definition.
// The default prompt driver is survey-backed.
func NewRunner(sess *session.Session, formDef definition.Form, options ...Option) (*Runner, error) {
	if sess == nil {
		return nil, errors.New("tui: session is required")
	}
	r := &Runner{
		session: sess,
		form:    formDef,
		driver:  newSurveyDriver(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Run prompts for every field, manages the hobby list, and submits. It
// returns the payload of the first successful submission. Validation
// failures after the prompt pass (email conflict, emptied hobby list) are
// reported inline and the offending part is re-prompted.
func (r *Runner) Run(ctx context.Context) (payload.Payload, error) {
	if ctx == nil {
		return payload.Payload{}, errors.New("tui: context is required")
	}

	if err := r.promptFirstName(ctx); err != nil {
		return payload.Payload{}, err
	}
	if err := r.promptLastName(ctx); err != nil {
		return payload.Payload{}, err
	}
	if err := r.promptDateOfBirth(ctx); err != nil {
		return payload.Payload{}, err
	}
	if err := r.promptFramework(ctx); err != nil {
		return payload.Payload{}, err
	}
	if err := r.promptFrameworkVersion(ctx); err != nil {
		return payload.Payload{}, err
	}
	if err := r.promptEmail(ctx); err != nil {
		return payload.Payload{}, err
	}
	if err := r.promptHobbies(ctx); err != nil {
		return payload.Payload{}, err
	}

	return r.submitLoop(ctx)
}

func (r *Runner) submitLoop(ctx context.Context) (payload.Payload, error) {
	for {
		p, err := r.session.Submit(ctx)
		if err == nil {
			return p, nil
		}
		if errors.Is(err, session.ErrSuperseded) {
			continue
		}
		if !errors.Is(err, session.ErrValidationFailed) {
			return payload.Payload{}, err
		}

		errs := r.session.Errors()
		for _, path := range errs.Paths() {
			r.info(ctx, r.theme.ErrorPrefix+path+": "+errs.Get(path).Message)
		}

		if err := r.fixFailures(ctx, errs); err != nil {
			return payload.Payload{}, err
		}
	}
}

// fixFailures re-prompts whatever the failed validation pass flagged.
func (r *Runner) fixFailures(ctx context.Context, errs validation.Errors) error {
	for _, path := range errs.Paths() {
		fieldErr := errs.Get(path)
		switch {
		case path == form.PathEmail:
			if err := r.promptEmail(ctx); err != nil {
				return err
			}
		case path == form.PathHobbies && fieldErr.Kind == validation.KindMinimumCount:
			idx := r.session.AppendHobby()
			if err := r.promptHobbyEntry(ctx, idx); err != nil {
				return err
			}
		case path == form.PathFirstName:
			if err := r.promptFirstName(ctx); err != nil {
				return err
			}
		case path == form.PathLastName:
			if err := r.promptLastName(ctx); err != nil {
				return err
			}
		case path == form.PathDateOfBirth:
			if err := r.promptDateOfBirth(ctx); err != nil {
				return err
			}
		case path == form.PathFramework:
			if err := r.promptFramework(ctx); err != nil {
				return err
			}
			if err := r.promptFrameworkVersion(ctx); err != nil {
				return err
			}
		case path == form.PathFrameworkVersion:
			if err := r.promptFrameworkVersion(ctx); err != nil {
				return err
			}
		}
	}

	// Hobby sub-field failures are positional; one pass over the current
	// list covers them all.
	for idx := range r.session.Values().Hobbies {
		if errs.Has(form.HobbyNamePath(idx)) || errs.Has(form.HobbyDurationPath(idx)) {
			if err := r.promptHobbyEntry(ctx, idx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) promptFirstName(ctx context.Context) error {
	return r.promptText(ctx, form.PathFirstName, r.label(form.PathFirstName, "First name"), r.session.SetFirstName)
}

func (r *Runner) promptLastName(ctx context.Context) error {
	return r.promptText(ctx, form.PathLastName, r.label(form.PathLastName, "Last name"), r.session.SetLastName)
}

func (r *Runner) promptEmail(ctx context.Context) error {
	return r.promptText(ctx, form.PathEmail, r.label(form.PathEmail, "Email"), r.session.SetEmail)
}

// promptText loops until the session accepts the value for the path.
func (r *Runner) promptText(ctx context.Context, path, label string, set func(string)) error {
	for {
		value, err := r.driver.Input(ctx, InputConfig{
			Message: label,
			Default: "",
			Help:    r.help(path),
		})
		if err != nil {
			return err
		}
		set(value)
		if fieldErr := r.session.Errors().Get(path); fieldErr != nil {
			r.info(ctx, r.theme.ErrorPrefix+fieldErr.Message)
			continue
		}
		return nil
	}
}

func (r *Runner) promptDateOfBirth(ctx context.Context) error {
	for {
		value, err := r.driver.Input(ctx, InputConfig{
			Message:   r.label(form.PathDateOfBirth, "Date of birth"),
			Help:      r.help(form.PathDateOfBirth),
			Validator: validateDateInput,
		})
		if err != nil {
			return err
		}
		parsed, err := time.Parse(dateInputLayout, value)
		if err != nil {
			r.info(ctx, r.theme.ErrorPrefix+"enter the date as YYYY-MM-DD")
			continue
		}
		r.session.SetDateOfBirth(parsed)
		return nil
	}
}

func validateDateInput(value string) error {
	if _, err := time.Parse(dateInputLayout, value); err != nil {
		return errors.New("enter the date as YYYY-MM-DD")
	}
	return nil
}

func (r *Runner) promptFramework(ctx context.Context) error {
	frameworks := r.session.Catalog().Frameworks()
	options := make([]string, len(frameworks))
	for i, framework := range frameworks {
		options[i] = string(framework)
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      r.label(form.PathFramework, "Framework"),
			Options:      options,
			DefaultIndex: -1,
			Help:         r.help(form.PathFramework),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(frameworks) {
			r.info(ctx, r.theme.ErrorPrefix+"invalid selection")
			continue
		}
		if err := r.session.SetFramework(frameworks[idx]); err != nil {
			r.info(ctx, r.theme.ErrorPrefix+err.Error())
			continue
		}
		return nil
	}
}

// promptFrameworkVersion offers only the catalog versions for the chosen
// framework. The field is disabled while no framework is set; the runner
// never reaches it in that state because the framework prompt precedes it.
func (r *Runner) promptFrameworkVersion(ctx context.Context) error {
	versions := r.session.Catalog().Versions(r.session.Values().Framework)
	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      r.label(form.PathFrameworkVersion, "Framework version"),
			Options:      versions,
			DefaultIndex: -1,
			Help:         r.help(form.PathFrameworkVersion),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(versions) {
			r.info(ctx, r.theme.ErrorPrefix+"invalid selection")
			continue
		}
		if err := r.session.SetFrameworkVersion(versions[idx]); err != nil {
			r.info(ctx, r.theme.ErrorPrefix+err.Error())
			continue
		}
		return nil
	}
}

const (
	hobbyActionContinue = "Continue"
	hobbyActionAdd      = "Add another hobby"
	hobbyActionRemove   = "Remove a hobby"
)

// promptHobbies fills the seeded first entry, then loops on an action menu.
// Removal is always permitted, including down to an empty list; the session
// flags the minimum-count error and the submit loop forces an append before
// the form can go through.
func (r *Runner) promptHobbies(ctx context.Context) error {
	for idx := range r.session.Values().Hobbies {
		if err := r.promptHobbyEntry(ctx, idx); err != nil {
			return err
		}
	}

	for {
		action, err := r.driver.Select(ctx, SelectConfig{
			Message: r.label(form.PathHobbies, "Hobbies"),
			Options: []string{hobbyActionContinue, hobbyActionAdd, hobbyActionRemove},
		})
		if err != nil {
			return err
		}
		switch action {
		case 1:
			idx := r.session.AppendHobby()
			if err := r.promptHobbyEntry(ctx, idx); err != nil {
				return err
			}
		case 2:
			if err := r.promptHobbyRemoval(ctx); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (r *Runner) promptHobbyEntry(ctx context.Context, idx int) error {
	nameLabel, durationLabel := r.hobbyLabels()

	if err := r.promptText(ctx, form.HobbyNamePath(idx), fmt.Sprintf("%s #%d", nameLabel, idx+1), func(v string) {
		_ = r.session.SetHobbyName(idx, v)
	}); err != nil {
		return err
	}
	return r.promptText(ctx, form.HobbyDurationPath(idx), fmt.Sprintf("%s #%d", durationLabel, idx+1), func(v string) {
		_ = r.session.SetHobbyDuration(idx, v)
	})
}

func (r *Runner) promptHobbyRemoval(ctx context.Context) error {
	hobbies := r.session.Values().Hobbies
	if len(hobbies) == 0 {
		return r.info(ctx, r.theme.InfoPrefix+"nothing to remove")
	}

	options := make([]string, len(hobbies))
	for i, entry := range hobbies {
		options[i] = fmt.Sprintf("%d: %s (%s)", i+1, entry.Name, entry.Duration)
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message: "Remove which hobby?",
		Options: options,
	})
	if err != nil {
		return err
	}
	if err := r.session.RemoveHobby(idx); err != nil {
		return r.info(ctx, r.theme.ErrorPrefix+err.Error())
	}
	if listErr := r.session.Errors().Get(form.PathHobbies); listErr != nil {
		return r.info(ctx, r.theme.ErrorPrefix+listErr.Message)
	}
	return nil
}

func (r *Runner) label(name, fallback string) string {
	if field, ok := r.form.Field(name); ok && field.Label != "" {
		return field.Label
	}
	return fallback
}

func (r *Runner) help(name string) string {
	if field, ok := r.form.Field(name); ok {
		return field.Help
	}
	return ""
}

// hobbyLabels pulls the sub-field labels from the definition's hobby items.
func (r *Runner) hobbyLabels() (name, duration string) {
	name, duration = "Hobby", "Duration"
	field, ok := r.form.Field(form.PathHobbies)
	if !ok {
		return name, duration
	}
	for _, item := range field.Items {
		switch item.Name {
		case "name":
			if item.Label != "" {
				name = item.Label
			}
		case "duration":
			if item.Label != "" {
				duration = item.Label
			}
		}
	}
	return name, duration
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, msg)
}
