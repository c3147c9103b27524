package builder

import (
	"context"
	"errors"
	"testing"

	"bizhub-backend/internal/models"
)

type fakeStore struct {
	puts    []models.Page
	putErr  error
	onPut   func(*models.Page) error
	pages   map[string]*models.Page
}

func newFakeStore() *fakeStore {
	return &fakeStore{pages: map[string]*models.Page{}}
}

func (f *fakeStore) GetPage(_ context.Context, slug string) (*models.Page, error) {
	page, ok := f.pages[slug]
	if !ok {
		return nil, errors.New("not found")
	}
	return page, nil
}

func (f *fakeStore) PutPage(_ context.Context, page *models.Page) error {
	if f.onPut != nil {
		if err := f.onPut(page); err != nil {
			return err
		}
	}
	if f.putErr != nil {
		return f.putErr
	}
	f.puts = append(f.puts, *page)
	return nil
}

func restaurantPage(t *testing.T) *models.Page {
	t.Helper()
	template, ok := TemplateByID("restaurant-modern")
	if !ok {
		t.Fatalf("restaurant template missing from catalog")
	}
	return &models.Page{
		Slug:       "la-esquina",
		Name:       "La Esquina",
		CompanyID:  1,
		TemplateID: template.ID,
		Status:     models.PageStatusDraft,
		Content:    ContentFromTemplate(template),
	}
}

func TestRestaurantEditFlow(t *testing.T) {
	store := newFakeStore()
	session := NewEditorSession(store, restaurantPage(t))

	sections := session.Page().Content.Sections
	if len(sections) != 2 {
		t.Fatalf("expected 2 template sections, got %d", len(sections))
	}
	if sections[0].Type != models.SectionHero || sections[1].Type != models.SectionFeatures {
		t.Fatalf("unexpected template section order: %s, %s", sections[0].Type, sections[1].Type)
	}
	if len(sections[1].Content.Features) != 3 {
		t.Fatalf("expected 3 feature items, got %d", len(sections[1].Content.Features))
	}
	heroID := sections[0].ID

	added, ok := session.AddSection(models.SectionTestimonials)
	if !ok {
		t.Fatalf("expected AddSection to succeed")
	}
	sections = session.Page().Content.Sections
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections after add, got %d", len(sections))
	}
	assertRankDensity(t, sections)
	if sections[2].ID != added.ID {
		t.Fatalf("expected new section appended last")
	}
	if session.Selection().SectionID != added.ID {
		t.Fatalf("expected new section to be selected")
	}

	session.StartDrag(added.ID)
	session.HoverZone(0)
	session.DropAt(0)

	sections = session.Page().Content.Sections
	assertRankDensity(t, sections)
	if sections[0].Type != models.SectionTestimonials {
		t.Fatalf("expected testimonials first after drop, got %s", sections[0].Type)
	}

	if !session.UpdateField(heroID, "title", "Bienvenidos") {
		t.Fatalf("expected title update to succeed")
	}
	if !session.Dirty() {
		t.Fatalf("expected session to be dirty before save")
	}

	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(store.puts) != 1 {
		t.Fatalf("expected exactly one put, got %d", len(store.puts))
	}

	saved := store.puts[0]
	if saved.Status != models.PageStatusDraft {
		t.Fatalf("expected draft status, got %s", saved.Status)
	}
	var hero *models.Section
	for i := range saved.Content.Sections {
		if saved.Content.Sections[i].ID == heroID {
			hero = &saved.Content.Sections[i]
		}
	}
	if hero == nil {
		t.Fatalf("hero section missing from saved document")
	}
	if hero.Content.Title != "Bienvenidos" {
		t.Fatalf("expected saved hero title %q, got %q", "Bienvenidos", hero.Content.Title)
	}
	if session.Dirty() {
		t.Fatalf("expected clean session after save")
	}
}

func TestUpdateFieldRejectsBadAddresses(t *testing.T) {
	session := NewEditorSession(newFakeStore(), restaurantPage(t))
	sections := session.Page().Content.Sections
	featuresID := sections[1].ID

	if session.UpdateField("missing-section", "title", "x") {
		t.Errorf("expected unknown section to be rejected")
	}
	if session.UpdateField(featuresID, "feature-title-abc", "x") {
		t.Errorf("expected malformed key to be rejected")
	}
	if session.UpdateField(featuresID, "feature-title-9", "x") {
		t.Errorf("expected out-of-bounds index to be rejected")
	}
	if session.Dirty() {
		t.Errorf("rejected updates must not dirty the session")
	}

	if !session.UpdateField(featuresID, "feature-title-1", "Ingredientes frescos") {
		t.Fatalf("expected in-bounds item update to succeed")
	}
	if got := session.Page().Content.Sections[1].Content.Features[1].Title; got != "Ingredientes frescos" {
		t.Fatalf("expected updated feature title, got %q", got)
	}
}

func TestUpdateFieldKeepsPriceOnGarbage(t *testing.T) {
	session := NewEditorSession(newFakeStore(), restaurantPage(t))
	added, _ := session.AddSection(models.SectionProducts)

	if session.UpdateField(added.ID, "product-price-0", "not-a-number") {
		t.Fatalf("expected garbage price to be rejected")
	}
	if got := session.Page().Content.Sections[2].Content.Products[0].Price; got != 99.99 {
		t.Fatalf("expected default price preserved, got %v", got)
	}

	if !session.UpdateField(added.ID, "product-price-0", "12.50") {
		t.Fatalf("expected numeric price to be accepted")
	}
	if got := session.Page().Content.Sections[2].Content.Products[0].Price; got != 12.50 {
		t.Fatalf("expected updated price, got %v", got)
	}
}

func TestUpdateStyleMergesShallowly(t *testing.T) {
	session := NewEditorSession(newFakeStore(), restaurantPage(t))
	heroID := session.Page().Content.Sections[0].ID

	red := "#ff0000"
	size := 32
	if !session.UpdateStyle(heroID, "titleStyle", models.StyleConfig{TextColor: &red, FontSize: &size}) {
		t.Fatalf("expected style update to succeed")
	}

	blue := "#0000ff"
	if !session.UpdateStyle(heroID, "titleStyle", models.StyleConfig{TextColor: &blue}) {
		t.Fatalf("expected second style update to succeed")
	}

	style := session.Page().Content.Sections[0].Content.TitleStyle
	if style == nil || style.TextColor == nil || *style.TextColor != blue {
		t.Fatalf("expected patch to overwrite text color")
	}
	if style.FontSize == nil || *style.FontSize != size {
		t.Fatalf("expected unpatched font size to survive the merge")
	}
}

func TestUpdateStyleItemContainer(t *testing.T) {
	session := NewEditorSession(newFakeStore(), restaurantPage(t))
	featuresID := session.Page().Content.Sections[1].ID

	pad := 24
	if !session.UpdateStyle(featuresID, "feature-container-2", models.StyleConfig{Padding: &pad}) {
		t.Fatalf("expected item container style update to succeed")
	}
	item := session.Page().Content.Sections[1].Content.Features[2]
	if item.Style == nil || item.Style.Padding == nil || *item.Style.Padding != pad {
		t.Fatalf("expected padding on the third feature's container style")
	}

	if session.UpdateStyle(featuresID, "feature-container-7", models.StyleConfig{Padding: &pad}) {
		t.Errorf("expected out-of-bounds container target to be rejected")
	}
}

func TestDeleteSectionClearsSelection(t *testing.T) {
	session := NewEditorSession(newFakeStore(), restaurantPage(t))
	featuresID := session.Page().Content.Sections[1].ID

	session.SelectSection(featuresID)
	if !session.DeleteSection(featuresID) {
		t.Fatalf("expected delete to succeed")
	}
	if session.Selection().SectionID != "" {
		t.Fatalf("expected selection cleared after deleting the selected section")
	}
	sections := session.Page().Content.Sections
	if len(sections) != 1 {
		t.Fatalf("expected 1 section left, got %d", len(sections))
	}
	assertRankDensity(t, sections)
}

func TestSelectSubElementFallsBackOnBadKey(t *testing.T) {
	session := NewEditorSession(newFakeStore(), restaurantPage(t))
	featuresID := session.Page().Content.Sections[1].ID

	session.SelectSubElement(featuresID, "feature-description-1")
	sel := session.Selection()
	if sel.SectionID != featuresID || sel.SubKey != "feature-description-1" {
		t.Fatalf("expected sub-element selection, got %+v", sel)
	}

	session.SelectSubElement(featuresID, "bogus-key")
	sel = session.Selection()
	if sel.SectionID != featuresID {
		t.Fatalf("expected section to stay selected")
	}
	if sel.SubKey != "" {
		t.Fatalf("expected sub-element focus cleared on a bad key")
	}
}

func TestSaveFailureKeepsWorkingCopy(t *testing.T) {
	store := newFakeStore()
	store.putErr = errors.New("connection reset")
	session := NewEditorSession(store, restaurantPage(t))
	heroID := session.Page().Content.Sections[0].ID

	session.UpdateField(heroID, "title", "Bienvenidos")
	if err := session.Save(context.Background()); err == nil {
		t.Fatalf("expected save to surface the store error")
	}

	if got := session.Page().Content.Sections[0].Content.Title; got != "Bienvenidos" {
		t.Fatalf("expected working copy preserved after failed save, got %q", got)
	}
	if !session.Dirty() {
		t.Fatalf("expected session to stay dirty after failed save")
	}

	store.putErr = nil
	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestPublishFlipsStatusAndGuardsReentry(t *testing.T) {
	store := newFakeStore()
	var session *EditorSession
	var reentrant error
	store.onPut = func(*models.Page) error {
		reentrant = session.Publish(context.Background())
		store.onPut = nil
		return nil
	}

	session = NewEditorSession(store, restaurantPage(t))
	if err := session.Publish(context.Background()); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if !errors.Is(reentrant, ErrPublishInFlight) {
		t.Fatalf("expected nested publish to be refused, got %v", reentrant)
	}
	if session.Page().Status != models.PageStatusPublished {
		t.Fatalf("expected published status, got %s", session.Page().Status)
	}
}

func TestPublishSavesDirtyDraftFirst(t *testing.T) {
	store := newFakeStore()
	session := NewEditorSession(store, restaurantPage(t))
	heroID := session.Page().Content.Sections[0].ID

	session.UpdateField(heroID, "title", "Bienvenidos")
	if err := session.Publish(context.Background()); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if len(store.puts) != 2 {
		t.Fatalf("expected draft save then publish, got %d puts", len(store.puts))
	}
	if store.puts[0].Status != models.PageStatusDraft {
		t.Fatalf("expected first put as draft, got %s", store.puts[0].Status)
	}
	if store.puts[1].Status != models.PageStatusPublished {
		t.Fatalf("expected second put as published, got %s", store.puts[1].Status)
	}
}

func TestPublishFailureRestoresStatus(t *testing.T) {
	store := newFakeStore()
	store.putErr = errors.New("connection reset")
	session := NewEditorSession(store, restaurantPage(t))

	if err := session.Publish(context.Background()); err == nil {
		t.Fatalf("expected publish to surface the store error")
	}
	if session.Page().Status != models.PageStatusDraft {
		t.Fatalf("expected status restored to draft, got %s", session.Page().Status)
	}
}
