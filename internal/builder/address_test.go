package builder

import (
	"testing"

	"bizhub-backend/internal/models"
)

func TestDecodeKeySectionFields(t *testing.T) {
	for _, key := range []string{"title", "description", "backgroundImage", "button", "content", "about-container"} {
		ref, ok := DecodeKey(key)
		if !ok {
			t.Fatalf("expected %q to decode", key)
		}
		if ref.IsItem() {
			t.Fatalf("expected %q to be a section-level ref", key)
		}
		if ref.Section != key {
			t.Fatalf("expected section field %q, got %q", key, ref.Section)
		}
	}
}

func TestItemKeyRoundTrip(t *testing.T) {
	cases := []struct {
		collection Collection
		field      string
		index      int
	}{
		{CollectionFeatures, "title", 0},
		{CollectionFeatures, "description", 2},
		{CollectionFeatures, ContainerField, 1},
		{CollectionProducts, "name", 0},
		{CollectionProducts, "description", 3},
		{CollectionProducts, "price", 0},
		{CollectionProducts, ContainerField, 5},
		{CollectionTestimonials, "name", 1},
		{CollectionTestimonials, "role", 1},
		{CollectionTestimonials, "text", 0},
		{CollectionTestimonials, ContainerField, 2},
		{CollectionStats, ContainerField, 3},
	}

	for _, tc := range cases {
		key := ItemKey(tc.collection, tc.field, tc.index)
		ref, ok := DecodeKey(key)
		if !ok {
			t.Fatalf("expected %q to decode", key)
		}
		if ref.Collection != tc.collection || ref.Field != tc.field || ref.Index != tc.index {
			t.Fatalf("round trip of %q gave %+v", key, ref)
		}
	}
}

func TestDecodeKeyRejectsMalformed(t *testing.T) {
	malformed := []string{
		"",
		"bogus-key",
		"feature-title-abc",
		"feature-title--1",
		"feature-title-",
		"product-unknownfield-0",
		"stat-title-0",
		"testimonial-price-1",
		"feature-0",
		"Title",
	}

	for _, key := range malformed {
		if _, ok := DecodeKey(key); ok {
			t.Errorf("expected %q to be rejected", key)
		}
	}
}

func TestValidateRefBounds(t *testing.T) {
	content := models.SectionContent{
		Features: []models.Feature{{Title: "a"}, {Title: "b"}},
	}

	inBounds, _ := DecodeKey("feature-title-1")
	if !ValidateRef(inBounds, content) {
		t.Fatalf("expected index 1 to be in bounds")
	}

	outOfBounds, _ := DecodeKey("feature-title-2")
	if ValidateRef(outOfBounds, content) {
		t.Fatalf("expected index 2 to be out of bounds")
	}

	sectionLevel, _ := DecodeKey("title")
	if !ValidateRef(sectionLevel, models.SectionContent{}) {
		t.Fatalf("section-level refs are always in bounds")
	}
}
