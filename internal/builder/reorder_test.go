package builder

import (
	"testing"

	"bizhub-backend/internal/models"
)

func sectionList(ids ...string) []models.Section {
	sections := make([]models.Section, len(ids))
	for i, id := range ids {
		sections[i] = models.Section{ID: id, Type: models.SectionFeatures, Visible: true, Order: i}
	}
	return sections
}

func assertOrder(t *testing.T, sections []models.Section, ids ...string) {
	t.Helper()
	if len(sections) != len(ids) {
		t.Fatalf("expected %d sections, got %d", len(ids), len(sections))
	}
	for i, id := range ids {
		if sections[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, sections[i].ID)
		}
		if sections[i].Order != i {
			t.Fatalf("position %d: expected dense rank %d, got %d", i, i, sections[i].Order)
		}
	}
}

func TestDropMovesSectionToFront(t *testing.T) {
	r := NewReorder()
	sections := sectionList("a", "b", "c")

	r.StartDrag("c")
	r.Hover(0)
	sections = r.Drop(sections, 0)

	assertOrder(t, sections, "c", "a", "b")
	if r.State() != DragIdle {
		t.Fatalf("expected engine to return to idle after drop")
	}
}

func TestDropMovesSectionToEnd(t *testing.T) {
	r := NewReorder()
	sections := sectionList("a", "b", "c")

	r.StartDrag("a")
	sections = r.Drop(sections, 3)

	assertOrder(t, sections, "b", "c", "a")
}

func TestSelfDropKeepsRelativeOrder(t *testing.T) {
	r := NewReorder()
	sections := sectionList("a", "b", "c")

	r.StartDrag("b")
	r.Hover(1)
	sections = r.Drop(sections, 1)

	assertOrder(t, sections, "a", "b", "c")
}

func TestDropInsertsNewSection(t *testing.T) {
	r := NewReorder()
	sections := sectionList("a", "b")

	r.StartDragNew(models.SectionTestimonials)
	r.Hover(1)
	sections = r.Drop(sections, 1)

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	inserted := sections[1]
	if inserted.Type != models.SectionTestimonials {
		t.Fatalf("expected testimonials section, got %q", inserted.Type)
	}
	if inserted.ID == "" || inserted.ID == "a" || inserted.ID == "b" {
		t.Fatalf("expected a fresh id, got %q", inserted.ID)
	}
	if len(inserted.Content.Testimonials) == 0 {
		t.Fatalf("expected default payload to seed testimonials")
	}
	assertRankDensity(t, sections)
}

func TestCancelMutatesNothing(t *testing.T) {
	r := NewReorder()
	sections := sectionList("a", "b")

	r.StartDrag("a")
	r.Hover(1)
	r.Cancel()

	if r.State() != DragIdle {
		t.Fatalf("expected idle after cancel")
	}
	assertOrder(t, sections, "a", "b")
}

func TestDropWhileIdleIsNoOp(t *testing.T) {
	r := NewReorder()
	sections := sectionList("a", "b")

	got := r.Drop(sections, 0)
	assertOrder(t, got, "a", "b")
}

func TestHoverIsReentrant(t *testing.T) {
	r := NewReorder()

	r.StartDrag("a")
	r.Hover(0)
	r.Hover(2)
	if r.State() != Hovering {
		t.Fatalf("expected hovering state")
	}
	r.Leave()
	if r.State() != Dragging {
		t.Fatalf("expected dragging state after leaving a zone")
	}
}

func TestDropClampsOutOfRangeIndex(t *testing.T) {
	r := NewReorder()
	sections := sectionList("a", "b")

	r.StartDrag("a")
	sections = r.Drop(sections, 99)
	assertOrder(t, sections, "b", "a")

	r.StartDrag("b")
	sections = r.Drop(sections, -5)
	assertOrder(t, sections, "a", "b")
}

func assertRankDensity(t *testing.T, sections []models.Section) {
	t.Helper()
	seen := make(map[int]bool, len(sections))
	for _, s := range sections {
		if s.Order < 0 || s.Order >= len(sections) {
			t.Fatalf("rank %d out of range for %d sections", s.Order, len(sections))
		}
		if seen[s.Order] {
			t.Fatalf("duplicate rank %d", s.Order)
		}
		seen[s.Order] = true
	}
}
