package builder

import (
	"testing"

	"bizhub-backend/internal/models"
)

func TestTemplateByID(t *testing.T) {
	template, ok := TemplateByID("restaurant-modern")
	if !ok {
		t.Fatal("expected restaurant-modern in the catalog")
	}
	if template.Name != "Restaurante Moderno" {
		t.Errorf("unexpected template name %q", template.Name)
	}

	if _, ok := TemplateByID("no-such-template"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestContentFromTemplateFreshIdentity(t *testing.T) {
	template, _ := TemplateByID("restaurant-modern")

	first := ContentFromTemplate(template)
	second := ContentFromTemplate(template)

	if len(first.Sections) != len(template.DefaultSections) {
		t.Fatalf("expected %d sections, got %d", len(template.DefaultSections), len(first.Sections))
	}

	for i := range first.Sections {
		if first.Sections[i].ID == template.DefaultSections[i].ID {
			t.Errorf("section %d kept the catalog id %q", i, first.Sections[i].ID)
		}
		if first.Sections[i].ID == second.Sections[i].ID {
			t.Errorf("two pages share section id %q", first.Sections[i].ID)
		}
		if first.Sections[i].Order != i {
			t.Errorf("section %d has rank %d", i, first.Sections[i].Order)
		}
	}
}

func TestPageEditsDoNotReachTemplateCatalog(t *testing.T) {
	template, _ := TemplateByID("restaurant-modern")
	page := &models.Page{ID: 1, Slug: "mi-restaurante", Content: ContentFromTemplate(template)}

	var featuresID string
	for _, section := range page.Content.Sections {
		if section.Type == models.SectionFeatures {
			featuresID = section.ID
		}
	}
	if featuresID == "" {
		t.Fatal("template has no features section")
	}

	session := NewEditorSession(nil, page)
	if !session.UpdateField(featuresID, ItemKey(CollectionFeatures, "title", 0), "Cocina nueva") {
		t.Fatal("UpdateField rejected a valid item key")
	}
	red := "#FF0000"
	if !session.UpdateStyle(featuresID, ItemKey(CollectionFeatures, ContainerField, 0), models.StyleConfig{TextColor: &red}) {
		t.Fatal("UpdateStyle rejected a valid item key")
	}

	catalog, _ := TemplateByID("restaurant-modern")
	var catalogFeatures []models.Feature
	for _, section := range catalog.DefaultSections {
		if section.Type == models.SectionFeatures {
			catalogFeatures = section.Content.Features
		}
	}
	if len(catalogFeatures) == 0 {
		t.Fatal("catalog lost its feature items")
	}
	if catalogFeatures[0].Title != "Cocina de autor" {
		t.Errorf("catalog feature title mutated through a page edit: %q", catalogFeatures[0].Title)
	}
	if catalogFeatures[0].Style != nil {
		t.Errorf("catalog feature style mutated through a page edit: %+v", catalogFeatures[0].Style)
	}
}
