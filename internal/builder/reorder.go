package builder

import (
	"github.com/google/uuid"

	"bizhub-backend/internal/models"
)

// DragState is the reorder engine's phase. Drop zones exist before the first
// section, between every adjacent pair, and after the last, so a hover index
// ranges over 0..len(sections).
type DragState int

const (
	DragIdle DragState = iota
	Dragging
	Hovering
)

// Reorder is a small state machine driving drag-and-drop of sections. It is
// single-user interaction state: no locking, no timeout; a drag stays open
// until a drop or an explicit cancel.
type Reorder struct {
	state      DragState
	sourceID   string
	newType    models.SectionType
	isNew      bool
	hoverIndex int
}

func NewReorder() *Reorder {
	return &Reorder{state: DragIdle}
}

func (r *Reorder) State() DragState {
	return r.state
}

// StartDrag begins dragging an existing section.
func (r *Reorder) StartDrag(sectionID string) {
	r.state = Dragging
	r.sourceID = sectionID
	r.newType = ""
	r.isNew = false
	r.hoverIndex = -1
}

// StartDragNew begins dragging a palette entry: a section of the given type
// that does not exist yet and is only materialised on drop.
func (r *Reorder) StartDragNew(t models.SectionType) {
	r.state = Dragging
	r.sourceID = ""
	r.newType = t
	r.isNew = true
	r.hoverIndex = -1
}

// Hover marks the drop zone at ordinal position index as the current target.
// Moving between zones is re-entrant and commits nothing.
func (r *Reorder) Hover(index int) {
	if r.state == DragIdle {
		return
	}
	r.state = Hovering
	r.hoverIndex = index
}

// Leave clears the hover target without ending the drag.
func (r *Reorder) Leave() {
	if r.state != Hovering {
		return
	}
	r.state = Dragging
	r.hoverIndex = -1
}

// Cancel ends the drag without mutating anything.
func (r *Reorder) Cancel() {
	r.reset()
}

// Drop commits the drag into sections at the given drop-zone index and
// returns the new list. A dragged palette entry is inserted as a fresh
// section seeded with its variant's default payload; an existing section is
// removed from its current position and reinserted. Dropping a section back
// into its own slot is a no-op in relative order. Either way every section is
// re-ranked to a dense 0..n-1 sequence, so ranks are never sparse and never
// stale.
func (r *Reorder) Drop(sections []models.Section, targetIndex int) []models.Section {
	if r.state == DragIdle {
		return sections
	}
	defer r.reset()

	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(sections) {
		targetIndex = len(sections)
	}

	result := make([]models.Section, 0, len(sections)+1)

	if r.isNew {
		result = append(result, sections[:targetIndex]...)
		result = append(result, NewSection(r.newType))
		result = append(result, sections[targetIndex:]...)
		return Rerank(result)
	}

	sourceIndex := -1
	for i := range sections {
		if sections[i].ID == r.sourceID {
			sourceIndex = i
			break
		}
	}
	if sourceIndex == -1 {
		// Source vanished mid-drag (deleted in another panel); nothing to
		// move.
		return Rerank(append(result, sections...))
	}

	moved := sections[sourceIndex]
	without := make([]models.Section, 0, len(sections)-1)
	without = append(without, sections[:sourceIndex]...)
	without = append(without, sections[sourceIndex+1:]...)

	// Reinsertion happens at the drop-zone ordinal as-is: the zone index is
	// interpreted against the list with the dragged section already removed.
	if targetIndex > len(without) {
		targetIndex = len(without)
	}

	result = append(result, without[:targetIndex]...)
	result = append(result, moved)
	result = append(result, without[targetIndex:]...)

	return Rerank(result)
}

func (r *Reorder) reset() {
	r.state = DragIdle
	r.sourceID = ""
	r.newType = ""
	r.isNew = false
	r.hoverIndex = -1
}

// Rerank rewrites section ranks to a dense 0..n-1 sequence in list order.
func Rerank(sections []models.Section) []models.Section {
	for i := range sections {
		sections[i].Order = i
	}
	return sections
}

// NewSection creates a visible section of the given type with a fresh id and
// the variant's default payload.
func NewSection(t models.SectionType) models.Section {
	return models.Section{
		ID:      uuid.New().String(),
		Type:    t,
		Visible: true,
		Content: DefaultContent(t),
	}
}
