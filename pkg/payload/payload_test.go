package payload

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Jekson949/fe-form/pkg/form"
)

func TestBuildFormatsDate(t *testing.T) {
	dob := time.Date(2000, time.March, 9, 0, 0, 0, 0, time.UTC)
	values := form.Values{
		FirstName:        "Ann",
		LastName:         "Lee",
		DateOfBirth:      &dob,
		Framework:        form.FrameworkReact,
		FrameworkVersion: "3.2.4",
		Email:            "a@b.co",
		Hobbies:          []form.HobbyEntry{{Name: "Chess", Duration: "2 years"}},
	}

	got := Build(values)
	want := Payload{
		FirstName:        "Ann",
		LastName:         "Lee",
		DateOfBirth:      "09-03-2000",
		Framework:        "react",
		FrameworkVersion: "3.2.4",
		Email:            "a@b.co",
		Hobbies:          []form.HobbyEntry{{Name: "Chess", Duration: "2 years"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMissingDateSerializesEmpty(t *testing.T) {
	got := Build(form.Values{})
	if got.DateOfBirth != "" {
		t.Fatalf("missing date serialized as %q, want empty string", got.DateOfBirth)
	}
}

func TestBuildCopiesHobbyList(t *testing.T) {
	values := form.Values{Hobbies: []form.HobbyEntry{{Name: "Chess"}}}
	p := Build(values)
	values.Hobbies[0].Name = "mutated"
	if p.Hobbies[0].Name != "Chess" {
		t.Fatalf("payload hobby list aliases form values")
	}
}
