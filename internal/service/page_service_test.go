package service

import (
	"context"
	"errors"
	"testing"

	"bizhub-backend/internal/builder"
	"bizhub-backend/internal/models"
)

type fakePageRepo struct {
	pages    map[uint]*models.Page
	slugs    map[string]uint
	onUpdate func(page *models.Page)
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: map[uint]*models.Page{}, slugs: map[string]uint{}}
}

func (r *fakePageRepo) add(page *models.Page) {
	r.pages[page.ID] = page
	r.slugs[page.Slug] = page.ID
}

func (r *fakePageRepo) Create(page *models.Page) error {
	r.add(page)
	return nil
}

func (r *fakePageRepo) Update(page *models.Page) error {
	if r.onUpdate != nil {
		r.onUpdate(page)
	}
	r.add(page)
	return nil
}

func (r *fakePageRepo) Delete(id uint) error {
	delete(r.pages, id)
	return nil
}

func (r *fakePageRepo) GetByID(id uint) (*models.Page, error) {
	p, ok := r.pages[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *p
	return &copied, nil
}

func (r *fakePageRepo) GetBySlug(slug string) (*models.Page, error) {
	p, err := r.GetBySlugAny(slug)
	if err != nil || p.Status != models.PageStatusPublished {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *fakePageRepo) GetBySlugAny(slug string) (*models.Page, error) {
	id, ok := r.slugs[slug]
	if !ok {
		return nil, errors.New("record not found")
	}
	return r.GetByID(id)
}

func (r *fakePageRepo) GetByCompany(companyID uint) ([]models.Page, error) {
	return nil, nil
}

func (r *fakePageRepo) ExistsBySlug(slug string) (bool, error) {
	_, ok := r.slugs[slug]
	return ok, nil
}

func (r *fakePageRepo) ExistsBySlugExceptID(slug string, excludeID uint) (bool, error) {
	id, ok := r.slugs[slug]
	return ok && id != excludeID, nil
}

func newPageFixture(pages ...*models.Page) (*PageService, *fakePageRepo) {
	repo := newFakePageRepo()
	for _, p := range pages {
		repo.add(p)
	}
	return NewPageService(repo, nil, nil), repo
}

func TestPublishGuardSpansRequests(t *testing.T) {
	svc, repo := newPageFixture(&models.Page{
		ID:     1,
		Slug:   "mi-negocio",
		Status: models.PageStatusDraft,
	})

	var reentrant error
	repo.onUpdate = func(page *models.Page) {
		if reentrant == nil {
			_, reentrant = svc.Publish(context.Background(), page.ID)
		}
	}

	published, err := svc.Publish(context.Background(), 1)
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if published.Status != models.PageStatusPublished {
		t.Errorf("expected published status, got %q", published.Status)
	}
	if !errors.Is(reentrant, builder.ErrPublishInFlight) {
		t.Fatalf("concurrent publish must be rejected, got %v", reentrant)
	}

	repo.onUpdate = nil
	if _, err := svc.Publish(context.Background(), 1); err != nil {
		t.Errorf("publish after completion must pass the guard, got %v", err)
	}
}

func TestUpdateMovesDraftSlug(t *testing.T) {
	svc, repo := newPageFixture(
		&models.Page{ID: 1, Slug: "mi-negocio", Name: "Mi Negocio", Status: models.PageStatusDraft},
		&models.Page{ID: 2, Slug: "otro-sitio", Status: models.PageStatusDraft},
	)

	if _, err := svc.Update(1, models.UpdatePageRequest{Slug: "Otro Sitio"}); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken for an occupied slug, got %v", err)
	}

	updated, err := svc.Update(1, models.UpdatePageRequest{Name: "Mi Café", Slug: "Mi Café"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Mi Café" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.Slug != "mi-cafe" {
		t.Errorf("expected normalised slug mi-cafe, got %q", updated.Slug)
	}

	if stored, _ := repo.GetBySlugAny("mi-cafe"); stored == nil || stored.ID != 1 {
		t.Error("page not reachable under the new slug")
	}
}

func TestUpdateKeepsPublishedSlug(t *testing.T) {
	svc, _ := newPageFixture(&models.Page{
		ID:     1,
		Slug:   "mi-negocio",
		Status: models.PageStatusPublished,
	})

	if _, err := svc.Update(1, models.UpdatePageRequest{Slug: "nueva-direccion"}); !errors.Is(err, ErrSlugLocked) {
		t.Fatalf("expected ErrSlugLocked, got %v", err)
	}

	updated, err := svc.Update(1, models.UpdatePageRequest{Name: "Nuevo Nombre"})
	if err != nil {
		t.Fatalf("rename of a published page failed: %v", err)
	}
	if updated.Slug != "mi-negocio" {
		t.Errorf("published slug changed to %q", updated.Slug)
	}
}
