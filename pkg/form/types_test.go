package form

import (
	"testing"
	"time"
)

func TestFrameworkValid(t *testing.T) {
	cases := []struct {
		framework Framework
		want      bool
	}{
		{FrameworkAngular, true},
		{FrameworkReact, true},
		{FrameworkVue, true},
		{Framework(""), false},
		{Framework("svelte"), false},
	}
	for _, tc := range cases {
		if got := tc.framework.Valid(); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.framework, got, tc.want)
		}
	}
}

func TestNewValuesSeedsOneHobbyRow(t *testing.T) {
	values := NewValues()
	if len(values.Hobbies) != 1 {
		t.Fatalf("expected one seeded hobby entry, got %d", len(values.Hobbies))
	}
	if values.Hobbies[0] != (HobbyEntry{}) {
		t.Fatalf("seeded entry should be blank, got %+v", values.Hobbies[0])
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	dob := time.Date(2000, time.March, 9, 0, 0, 0, 0, time.UTC)
	values := &Values{
		FirstName:   "Ann",
		DateOfBirth: &dob,
		Hobbies:     []HobbyEntry{{Name: "Chess", Duration: "2 years"}},
	}

	clone := values.Clone()
	clone.Hobbies[0].Name = "Go"
	*clone.DateOfBirth = clone.DateOfBirth.AddDate(1, 0, 0)

	if values.Hobbies[0].Name != "Chess" {
		t.Errorf("clone mutation leaked into original hobby list")
	}
	if !values.DateOfBirth.Equal(dob) {
		t.Errorf("clone mutation leaked into original date")
	}
}

func TestHobbyPaths(t *testing.T) {
	if got := HobbyNamePath(0); got != "hobbies.0.name" {
		t.Errorf("HobbyNamePath(0) = %q", got)
	}
	if got := HobbyDurationPath(3); got != "hobbies.3.duration" {
		t.Errorf("HobbyDurationPath(3) = %q", got)
	}
}
