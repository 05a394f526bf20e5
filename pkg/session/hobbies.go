package session

import (
	"fmt"
	"strings"

	"github.com/Jekson949/fe-form/pkg/form"
	"github.com/Jekson949/fe-form/pkg/validation"
)

// MinHobbyMessage is the list-level message shown while the hobby list is
// empty.
const MinHobbyMessage = "at least one hobby is required"

// AppendHobby adds a blank entry to the end of the list and returns its
// index. There is no upper bound. Reaching length >= 1 clears the list-level
// error automatically.
func (s *Session) AppendHobby() int {
	s.values.Hobbies = append(s.values.Hobbies, form.HobbyEntry{})
	s.errors.Clear(form.PathHobbies)
	return len(s.values.Hobbies) - 1
}

// RemoveHobby deletes the entry at idx. Removal always executes
// structurally, even for the last entry; emptying the list flags the
// list-level minimum-count error immediately and submission stays blocked
// until an entry is appended.
func (s *Session) RemoveHobby(idx int) error {
	if idx < 0 || idx >= len(s.values.Hobbies) {
		return fmt.Errorf("session: hobby index %d out of range", idx)
	}
	s.values.Hobbies = append(s.values.Hobbies[:idx], s.values.Hobbies[idx+1:]...)

	// Entries after idx shifted down, so positional error paths are stale.
	s.reindexHobbyErrors()

	if len(s.values.Hobbies) == 0 {
		s.errors.Set(validation.MinimumCount(form.PathHobbies, MinHobbyMessage))
	}
	return nil
}

// SetHobbyName stores the name sub-field of the entry at idx.
func (s *Session) SetHobbyName(idx int, value string) error {
	if idx < 0 || idx >= len(s.values.Hobbies) {
		return fmt.Errorf("session: hobby index %d out of range", idx)
	}
	s.values.Hobbies[idx].Name = value
	s.revalidateRequired(form.HobbyNamePath(idx), value)
	return nil
}

// SetHobbyDuration stores the duration sub-field of the entry at idx.
func (s *Session) SetHobbyDuration(idx int, value string) error {
	if idx < 0 || idx >= len(s.values.Hobbies) {
		return fmt.Errorf("session: hobby index %d out of range", idx)
	}
	s.values.Hobbies[idx].Duration = value
	s.revalidateRequired(form.HobbyDurationPath(idx), value)
	return nil
}

// reindexHobbyErrors drops all positional hobby errors and recomputes them
// for the entries that remain. Cheaper bookkeeping than shifting keys, and
// the checks are trivial.
func (s *Session) reindexHobbyErrors() {
	for _, path := range s.errors.Paths() {
		if strings.HasPrefix(path, form.PathHobbies+".") {
			s.errors.Clear(path)
		}
	}
	for idx, entry := range s.values.Hobbies {
		s.revalidateRequired(form.HobbyNamePath(idx), entry.Name)
		s.revalidateRequired(form.HobbyDurationPath(idx), entry.Duration)
	}
}
