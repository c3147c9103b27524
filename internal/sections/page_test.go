package sections

import (
	"strings"
	"testing"

	"bizhub-backend/internal/models"
)

func demoContent() models.PageContent {
	return models.PageContent{
		Theme: models.Theme{
			PrimaryColor:   "#D4B996",
			SecondaryColor: "#594545",
			FontFamily:     "sans",
			HeaderStyle:    "hero",
			FooterStyle:    "detailed",
		},
		Sections: []models.Section{
			{
				ID:      "hero-1",
				Type:    models.SectionHero,
				Visible: true,
				Order:   0,
				Content: models.SectionContent{
					Title:       "Bienvenidos",
					Description: "Una experiencia única",
					ButtonText:  "Reservar",
					ButtonLink:  "/reservas",
				},
			},
			{
				ID:      "features-1",
				Type:    models.SectionFeatures,
				Visible: true,
				Order:   1,
				Content: models.SectionContent{
					Title: "Nuestras características",
					Features: []models.Feature{
						{Title: "Cocina de autor", Description: "Platos únicos"},
						{Title: "Ingredientes locales", Description: "De la granja a la mesa"},
					},
				},
			},
		},
	}
}

func TestRenderDeterminism(t *testing.T) {
	renderer := NewPageRenderer(nil)
	content := demoContent()

	first := renderer.Render(content, RenderOptions{Mode: ModePublished})
	second := renderer.Render(content, RenderOptions{Mode: ModePublished})
	if first != second {
		t.Fatalf("published render is not byte-stable across calls")
	}

	editing := RenderOptions{Mode: ModeEditing, Selection: Selection{SectionID: "hero-1"}}
	if renderer.Render(content, editing) != renderer.Render(content, editing) {
		t.Fatalf("editing render is not byte-stable across calls")
	}
}

func TestPublishedHasNoInteractionHooks(t *testing.T) {
	renderer := NewPageRenderer(nil)
	content := demoContent()

	published := renderer.Render(content, RenderOptions{Mode: ModePublished})
	if strings.Contains(published, "data-key") {
		t.Errorf("published output must not carry data-key hooks")
	}
	if strings.Contains(published, "data-selected") {
		t.Errorf("published output must not carry selection markers")
	}
	if strings.Contains(published, "data-section-id") {
		t.Errorf("published output must not carry section wrappers")
	}

	editing := renderer.Render(content, RenderOptions{Mode: ModeEditing})
	if !strings.Contains(editing, `data-key="title"`) {
		t.Errorf("editing output must hook the title field")
	}
	if !strings.Contains(editing, `data-key="feature-description-1"`) {
		t.Errorf("editing output must hook repeated-item fields")
	}
	if !strings.Contains(editing, `data-section-id="hero-1"`) {
		t.Errorf("editing output must wrap sections")
	}
}

func TestPublishedIsStructuralSubsetOfEditing(t *testing.T) {
	renderer := NewPageRenderer(nil)
	content := demoContent()

	published := renderer.Render(content, RenderOptions{Mode: ModePublished})
	editing := renderer.Render(content, RenderOptions{Mode: ModeEditing})

	// Every class the published tree uses must appear in the editing tree;
	// the two modes share all layout computation.
	for _, class := range []string{
		"page__hero", "page__hero-title", "page__hero-description", "page__hero-button",
		"page__features", "page__feature-title", "page__feature-description",
		"page__header--hero", "page__footer--detailed",
	} {
		if !strings.Contains(published, class) {
			t.Errorf("published output missing %q", class)
		}
		if !strings.Contains(editing, class) {
			t.Errorf("editing output missing %q", class)
		}
	}
}

func TestSelectionMarker(t *testing.T) {
	renderer := NewPageRenderer(nil)
	content := demoContent()

	out := renderer.Render(content, RenderOptions{
		Mode:      ModeEditing,
		Selection: Selection{SectionID: "features-1", SubKey: "feature-title-0"},
	})

	if !strings.Contains(out, `data-key="feature-title-0" data-selected="true"`) {
		t.Fatalf("expected the focused sub-element to carry a selection marker")
	}
	if strings.Count(out, `data-selected="true"`) != 1 {
		t.Fatalf("expected exactly one selection marker")
	}
}

func TestInvisibleSectionsSkipped(t *testing.T) {
	renderer := NewPageRenderer(nil)
	content := demoContent()
	content.Sections[1].Visible = false

	out := renderer.Render(content, RenderOptions{Mode: ModePublished})
	if strings.Contains(out, "page__features") {
		t.Fatalf("expected invisible section to be omitted")
	}
}

func TestSectionsRenderInRankOrder(t *testing.T) {
	renderer := NewPageRenderer(nil)
	content := demoContent()
	content.Sections[0].Order = 1
	content.Sections[1].Order = 0

	out := renderer.Render(content, RenderOptions{Mode: ModePublished})
	features := strings.Index(out, "page__features")
	hero := strings.Index(out, "page__hero")
	if features == -1 || hero == -1 {
		t.Fatalf("expected both sections in the output")
	}
	if features > hero {
		t.Fatalf("expected features before hero after rank swap")
	}
}

func TestHeroOverlayGatedByOpacity(t *testing.T) {
	renderer := NewPageRenderer(nil)
	content := demoContent()

	opacity := 0.6
	color := "#594545"
	content.Sections[0].Content.BackgroundImage = "/fondo.jpg"
	content.Sections[0].Content.Style = &models.StyleConfig{
		OverlayColor:   &color,
		OverlayOpacity: &opacity,
	}

	out := renderer.Render(content, RenderOptions{Mode: ModePublished})
	if !strings.Contains(out, "page__hero-overlay") {
		t.Fatalf("expected overlay scrim when opacity is positive")
	}
	if !strings.Contains(out, "background-color:#594545;opacity:0.6") {
		t.Fatalf("expected scrim declarations in output")
	}

	zero := 0.0
	content.Sections[0].Content.Style.OverlayOpacity = &zero
	out = renderer.Render(content, RenderOptions{Mode: ModePublished})
	if strings.Contains(out, "page__hero-overlay") {
		t.Fatalf("expected no scrim at zero opacity")
	}
}

func TestContactMapEmbedSanitized(t *testing.T) {
	renderer := NewPageRenderer(nil)
	content := models.PageContent{
		Sections: []models.Section{
			{
				ID:      "contact-1",
				Type:    models.SectionContact,
				Visible: true,
				Content: models.SectionContent{
					Title:    "Contáctanos",
					Email:    "hola@empresa.com",
					MapEmbed: `<iframe src="https://www.google.com/maps/embed?pb=abc" loading="lazy"></iframe><script>alert(1)</script>`,
				},
			},
		},
	}

	out := renderer.Render(content, RenderOptions{Mode: ModePublished})
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected script tags stripped from the map embed")
	}
	if !strings.Contains(out, "<iframe") {
		t.Fatalf("expected the iframe embed to survive sanitisation")
	}
	if !strings.Contains(out, "mailto:hola@empresa.com") {
		t.Fatalf("expected contact email link")
	}
}

func TestThemeFontStacks(t *testing.T) {
	renderer := NewPageRenderer(nil)
	content := demoContent()

	cases := map[string]string{
		"sans":  "ui-sans-serif, system-ui, sans-serif",
		"serif": "ui-serif, Georgia, serif",
		"mono":  "ui-monospace, monospace",
		"":      "ui-sans-serif, system-ui, sans-serif",
	}
	for family, stack := range cases {
		content.Theme.FontFamily = family
		out := renderer.Render(content, RenderOptions{Mode: ModePublished})
		if !strings.Contains(out, "font-family:"+stack) {
			t.Errorf("family %q: expected stack %q in output", family, stack)
		}
	}
}
