package text

import (
	"context"
	"testing"

	"github.com/Jekson949/fe-form/pkg/form"
	"github.com/Jekson949/fe-form/pkg/payload"
)

func fixture() payload.Payload {
	return payload.Payload{
		FirstName:        "Ann",
		LastName:         "Lee",
		DateOfBirth:      "09-03-2000",
		Framework:        "react",
		FrameworkVersion: "3.2.4",
		Email:            "a@b.co",
		Hobbies: []form.HobbyEntry{
			{Name: "Chess", Duration: "2 years"},
			{Name: "Go", Duration: "1 year"},
		},
	}
}

func TestRender(t *testing.T) {
	out, err := New().Render(context.Background(), fixture())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "firstName: Ann\n" +
		"lastName: Lee\n" +
		"dateOfBirth: 09-03-2000\n" +
		"framework: react\n" +
		"frameworkVersion: 3.2.4\n" +
		"email: a@b.co\n" +
		"hobbies:\n" +
		"  - name: Chess\n" +
		"    duration: 2 years\n" +
		"  - name: Go\n" +
		"    duration: 1 year\n"
	if got := string(out); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Render(ctx, fixture()); err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestRendererIdentity(t *testing.T) {
	r := New()
	if r.Name() != "text" {
		t.Errorf("Name() = %q, want %q", r.Name(), "text")
	}
	if r.ContentType() != "text/plain; charset=utf-8" {
		t.Errorf("ContentType() = %q", r.ContentType())
	}
}
