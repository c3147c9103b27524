package builder

import (
	"context"
	"errors"
	"strconv"

	"bizhub-backend/internal/models"
)

// ErrPublishInFlight is returned when a publish is requested while a previous
// one has not settled yet.
var ErrPublishInFlight = errors.New("publish already in progress")

// PageStore is the persistence collaborator the editor hands documents to.
// The session treats it as a document store keyed by slug.
type PageStore interface {
	GetPage(ctx context.Context, slug string) (*models.Page, error)
	PutPage(ctx context.Context, page *models.Page) error
}

// Selection is the transient editing focus: which section is active and,
// optionally, which sub-element inside it. Never persisted.
type Selection struct {
	SectionID string
	SubKey    string
	SubRef    SubElementRef
}

// EditorSession owns the working copy of one page during an edit session. It
// is single-user state: every mutation happens synchronously on the working
// copy, and nothing is written back until Save or Publish.
type EditorSession struct {
	store      PageStore
	page       *models.Page
	selection  Selection
	reorder    *Reorder
	dirty      bool
	publishing bool
}

func NewEditorSession(store PageStore, page *models.Page) *EditorSession {
	return &EditorSession{
		store:   store,
		page:    page,
		reorder: NewReorder(),
	}
}

func (s *EditorSession) Page() *models.Page {
	return s.page
}

func (s *EditorSession) Dirty() bool {
	return s.dirty
}

func (s *EditorSession) Selection() Selection {
	return s.selection
}

// SelectSection makes the given section the editing focus and clears any
// sub-element focus.
func (s *EditorSession) SelectSection(id string) {
	s.selection = Selection{SectionID: id}
}

// SelectSubElement focuses a sub-element inside a section. A key that fails
// to decode, or points outside the section's item lists, keeps the section
// selected and clears the sub-element half, so the caller falls back to the
// whole-section editor.
func (s *EditorSession) SelectSubElement(sectionID, key string) {
	s.selection = Selection{SectionID: sectionID}

	section := s.findSection(sectionID)
	if section == nil {
		return
	}

	ref, ok := DecodeKey(key)
	if !ok || !ValidateRef(ref, section.Content) {
		return
	}

	s.selection.SubKey = key
	s.selection.SubRef = ref
}

// UpdateField writes a new value into the field addressed by key inside the
// given section. Malformed keys and out-of-bounds item indexes leave the
// document untouched and report false. A non-numeric value for a price field
// keeps the previous price; the engine does not own form validation.
func (s *EditorSession) UpdateField(sectionID, key, value string) bool {
	section := s.findSection(sectionID)
	if section == nil {
		return false
	}

	ref, ok := DecodeKey(key)
	if !ok || !ValidateRef(ref, section.Content) {
		return false
	}

	if !ref.IsItem() {
		switch ref.Section {
		case KeyTitle:
			section.Content.Title = value
		case KeyDescription:
			section.Content.Description = value
		case KeyBackgroundImage:
			section.Content.BackgroundImage = value
		case KeyButton:
			section.Content.ButtonText = value
		case KeyContent, KeyAboutContainer:
			section.Content.Body = value
		default:
			return false
		}
		s.dirty = true
		return true
	}

	switch ref.Collection {
	case CollectionFeatures:
		item := &section.Content.Features[ref.Index]
		switch ref.Field {
		case "title":
			item.Title = value
		case "description":
			item.Description = value
		default:
			return false
		}
	case CollectionProducts:
		item := &section.Content.Products[ref.Index]
		switch ref.Field {
		case "name":
			item.Name = value
		case "description":
			item.Description = value
		case "price":
			price, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return false
			}
			item.Price = price
		default:
			return false
		}
	case CollectionTestimonials:
		item := &section.Content.Testimonials[ref.Index]
		switch ref.Field {
		case "name":
			item.Name = value
		case "role":
			item.Role = value
		case "text":
			item.Text = value
		default:
			return false
		}
	default:
		return false
	}

	s.dirty = true
	return true
}

// UpdateStyle shallow-merges patch into the style override addressed by
// target. Section-level targets are the named slots ("style", "titleStyle",
// "descriptionStyle", "buttonStyle", "contentStyle"); item-level targets use
// sub-element keys, where the "container" field means the item's own style
// and a named field means that field's style slot.
func (s *EditorSession) UpdateStyle(sectionID, target string, patch models.StyleConfig) bool {
	section := s.findSection(sectionID)
	if section == nil {
		return false
	}

	slot := s.styleSlot(section, target)
	if slot == nil {
		return false
	}

	*slot = (*slot).Merge(&patch)
	s.dirty = true
	return true
}

func (s *EditorSession) styleSlot(section *models.Section, target string) **models.StyleConfig {
	switch target {
	case "style":
		return &section.Content.Style
	case "titleStyle":
		return &section.Content.TitleStyle
	case "descriptionStyle":
		return &section.Content.DescriptionStyle
	case "buttonStyle":
		return &section.Content.ButtonStyle
	case "contentStyle":
		return &section.Content.ContentStyle
	}

	ref, ok := DecodeKey(target)
	if !ok || !ref.IsItem() || !ValidateRef(ref, section.Content) {
		return nil
	}

	switch ref.Collection {
	case CollectionFeatures:
		item := &section.Content.Features[ref.Index]
		switch ref.Field {
		case ContainerField:
			return &item.Style
		case "title":
			return &item.TitleStyle
		case "description":
			return &item.DescriptionStyle
		}
	case CollectionProducts:
		item := &section.Content.Products[ref.Index]
		switch ref.Field {
		case ContainerField:
			return &item.Style
		case "name":
			return &item.NameStyle
		case "description":
			return &item.DescriptionStyle
		case "price":
			return &item.PriceStyle
		}
	case CollectionTestimonials:
		item := &section.Content.Testimonials[ref.Index]
		if ref.Field == ContainerField {
			return &item.Style
		}
	case CollectionStats:
		item := &section.Content.Stats[ref.Index]
		if ref.Field == ContainerField {
			return &item.Style
		}
	}

	return nil
}

// AddSection appends a fresh section of the given variant, seeded with its
// default payload, re-ranks and selects it.
func (s *EditorSession) AddSection(t models.SectionType) (*models.Section, bool) {
	if !t.Valid() {
		return nil, false
	}

	section := NewSection(t)
	s.page.Content.Sections = Rerank(append(s.page.Content.Sections, section))
	s.selection = Selection{SectionID: section.ID}
	s.dirty = true

	return s.findSection(section.ID), true
}

// DeleteSection removes a section and re-ranks the remainder. The selection
// is cleared when it pointed at the deleted section; items inside the section
// go with it.
func (s *EditorSession) DeleteSection(id string) bool {
	sections := s.page.Content.Sections
	index := -1
	for i := range sections {
		if sections[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return false
	}

	s.page.Content.Sections = Rerank(append(sections[:index], sections[index+1:]...))
	if s.selection.SectionID == id {
		s.selection = Selection{}
	}
	s.dirty = true
	return true
}

// ToggleVisibility flips whether a section renders on the page without
// removing it from the document.
func (s *EditorSession) ToggleVisibility(id string) bool {
	section := s.findSection(id)
	if section == nil {
		return false
	}
	section.Visible = !section.Visible
	s.dirty = true
	return true
}

// StartDrag, StartDragNew, HoverZone, LeaveZone, CancelDrag and DropAt expose
// the reorder engine on the session's working copy.
func (s *EditorSession) StartDrag(sectionID string)        { s.reorder.StartDrag(sectionID) }
func (s *EditorSession) StartDragNew(t models.SectionType) { s.reorder.StartDragNew(t) }
func (s *EditorSession) HoverZone(index int)               { s.reorder.Hover(index) }
func (s *EditorSession) LeaveZone()                        { s.reorder.Leave() }
func (s *EditorSession) CancelDrag()                       { s.reorder.Cancel() }

// DropAt commits the current drag at the given drop-zone index.
func (s *EditorSession) DropAt(targetIndex int) {
	if s.reorder.State() == DragIdle {
		return
	}
	s.page.Content.Sections = s.reorder.Drop(s.page.Content.Sections, targetIndex)
	s.dirty = true
}

// Save persists the working copy as a draft. On failure the working copy is
// preserved as-is so the user can retry.
func (s *EditorSession) Save(ctx context.Context) error {
	s.page.Status = models.PageStatusDraft
	if err := s.store.PutPage(ctx, s.page); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Publish saves the draft if dirty, then flips the page to published and
// persists it under its slug. A publish requested while another is pending
// returns ErrPublishInFlight without touching anything. Failures leave the
// working copy intact.
func (s *EditorSession) Publish(ctx context.Context) error {
	if s.publishing {
		return ErrPublishInFlight
	}
	s.publishing = true
	defer func() { s.publishing = false }()

	if s.dirty {
		if err := s.Save(ctx); err != nil {
			return err
		}
	}

	previous := s.page.Status
	s.page.Status = models.PageStatusPublished
	if err := s.store.PutPage(ctx, s.page); err != nil {
		s.page.Status = previous
		return err
	}

	return nil
}

func (s *EditorSession) findSection(id string) *models.Section {
	for i := range s.page.Content.Sections {
		if s.page.Content.Sections[i].ID == id {
			return &s.page.Content.Sections[i]
		}
	}
	return nil
}
