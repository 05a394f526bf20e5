package render

import (
	"context"
	"testing"

	"github.com/Jekson949/fe-form/pkg/payload"
)

type stubRenderer struct{ name string }

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }
func (s *stubRenderer) Render(_ context.Context, _ payload.Payload) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubRenderer{name: "text"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("text")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "text" {
		t.Errorf("Name() = %q", renderer.Name())
	}

	if _, err := registry.Get("missing"); err == nil {
		t.Errorf("expected lookup failure for unregistered name")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&stubRenderer{name: "text"})
	if err := registry.Register(&stubRenderer{name: "text"}); err == nil {
		t.Fatalf("duplicate registration must fail")
	}
}

func TestRegistryRejectsInvalidRenderers(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Errorf("nil renderer must be rejected")
	}
	if err := registry.Register(&stubRenderer{}); err == nil {
		t.Errorf("unnamed renderer must be rejected")
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&stubRenderer{name: "text"})
	registry.MustRegister(&stubRenderer{name: "html"})

	names := registry.List()
	want := []string{"html", "text"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("List() = %v, want %v", names, want)
		}
	}
}
