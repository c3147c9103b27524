package sections

import (
	"testing"

	"bizhub-backend/internal/models"
)

func TestRegisterRejectsBadInput(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register("", renderHero); err == nil {
		t.Error("expected error for empty section type")
	}
	if err := reg.Register(models.SectionHero, nil); err == nil {
		t.Error("expected error for nil renderer")
	}
	if err := reg.Register(models.SectionHero, renderHero); err != nil {
		t.Errorf("valid registration failed: %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	base := DefaultRegistry()
	clone := base.Clone()

	stub := func(ctx RenderContext, prefix string, section models.Section) string {
		return "<!-- stub -->"
	}
	clone.MustRegister(models.SectionHero, stub)

	section := models.Section{
		ID:      "hero-1",
		Type:    models.SectionHero,
		Visible: true,
		Content: models.SectionContent{Title: "Hola"},
	}
	ctx := &renderContext{}

	cloned, ok := clone.Get(models.SectionHero)
	if !ok {
		t.Fatal("clone lost the hero renderer")
	}
	if got := cloned(ctx, "page", section); got != "<!-- stub -->" {
		t.Errorf("clone did not take the override: %q", got)
	}

	original, ok := base.Get(models.SectionHero)
	if !ok {
		t.Fatal("base registry lost the hero renderer")
	}
	if got := original(ctx, "page", section); got == "<!-- stub -->" {
		t.Error("override leaked into the base registry")
	}
}
