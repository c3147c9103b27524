package sections

import (
	"testing"

	"bizhub-backend/internal/models"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestResolveStyleEmptyInput(t *testing.T) {
	if got := ResolveStyle(nil); got != "" {
		t.Fatalf("expected empty result for nil override, got %q", got)
	}
	if got := ResolveStyle(&models.StyleConfig{}); got != "" {
		t.Fatalf("expected empty result for empty override, got %q", got)
	}
}

func TestResolveStylePurity(t *testing.T) {
	cfg := &models.StyleConfig{
		TextColor: strPtr("#112233"),
		FontSize:  intPtr(18),
		Padding:   intPtr(12),
	}

	first := ResolveStyle(cfg)
	second := ResolveStyle(cfg)
	if first != second {
		t.Fatalf("expected identical output across calls: %q vs %q", first, second)
	}
}

func TestResolveStyleUnitsAndOrder(t *testing.T) {
	cfg := &models.StyleConfig{
		TextColor:       strPtr("#ffffff"),
		BackgroundColor: strPtr("#000000"),
		FontSize:        intPtr(20),
		FontWeight:      intPtr(700),
		TextAlign:       strPtr("center"),
		Padding:         intPtr(16),
		Margin:          intPtr(8),
		BorderWidth:     intPtr(2),
		BorderColor:     strPtr("#ff0000"),
		BorderStyle:     strPtr("dashed"),
		BorderRadius:    intPtr(4),
	}

	want := "color:#ffffff;background-color:#000000;font-size:20px;font-weight:700;" +
		"text-align:center;padding:16px;margin:8px;border-width:2px;" +
		"border-color:#ff0000;border-style:dashed;border-radius:4px"
	if got := ResolveStyle(cfg); got != want {
		t.Fatalf("unexpected declarations:\n got %q\nwant %q", got, want)
	}
}

func TestResolveStyleSparseFields(t *testing.T) {
	cfg := &models.StyleConfig{FontSize: intPtr(14)}
	if got := ResolveStyle(cfg); got != "font-size:14px" {
		t.Fatalf("expected only the set field, got %q", got)
	}
}

func TestOverlayGating(t *testing.T) {
	if HasOverlay(nil) {
		t.Errorf("nil override must not produce an overlay")
	}
	if HasOverlay(&models.StyleConfig{OverlayColor: strPtr("#000000")}) {
		t.Errorf("color without opacity must not produce an overlay")
	}
	if HasOverlay(&models.StyleConfig{OverlayOpacity: floatPtr(0)}) {
		t.Errorf("zero opacity must not produce an overlay")
	}
	if !HasOverlay(&models.StyleConfig{OverlayOpacity: floatPtr(0.4)}) {
		t.Errorf("positive opacity must produce an overlay")
	}
}

func TestOverlayStyleDefaultsColor(t *testing.T) {
	got := OverlayStyle(&models.StyleConfig{OverlayOpacity: floatPtr(0.5)})
	if got != "background-color:#000000;opacity:0.5" {
		t.Fatalf("unexpected overlay declarations: %q", got)
	}

	got = OverlayStyle(&models.StyleConfig{
		OverlayColor:   strPtr("#594545"),
		OverlayOpacity: floatPtr(0.25),
	})
	if got != "background-color:#594545;opacity:0.25" {
		t.Fatalf("unexpected overlay declarations: %q", got)
	}
}

func TestOverlayOpacityNotClamped(t *testing.T) {
	got := OverlayStyle(&models.StyleConfig{OverlayOpacity: floatPtr(1.5)})
	if got != "background-color:#000000;opacity:1.5" {
		t.Fatalf("expected stored value emitted as-is, got %q", got)
	}
}
