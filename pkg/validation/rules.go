package validation

import (
	"regexp"
	"strings"
)

// emailPattern accepts local-part@domain.tld shaped values. It is a
// presence-of-structure check, not an RFC 5322 parser.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RequiredString reports a required-field failure when the value is empty or
// whitespace-only.
func RequiredString(path, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return Required(path)
	}
	return nil
}

// EmailFormat reports a format failure when the value does not look like
// local-part@domain.tld. Callers check requiredness first; an empty value is
// a required failure, not a format one.
func EmailFormat(path, value string) *FieldError {
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		return Format(path, "must be a valid email address")
	}
	return nil
}
