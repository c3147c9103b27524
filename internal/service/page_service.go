package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"bizhub-backend/internal/builder"
	"bizhub-backend/internal/models"
	"bizhub-backend/internal/repository"
	"bizhub-backend/internal/sections"
	"bizhub-backend/pkg/cache"
	"bizhub-backend/pkg/logger"
	"bizhub-backend/pkg/utils"
)

var (
	ErrPageNotFound     = errors.New("page not found")
	ErrSlugTaken        = errors.New("page with this slug already exists")
	ErrSlugLocked       = errors.New("slug cannot change after publish")
	ErrTemplateUnknown  = errors.New("unknown template")
	ErrSectionNotFound  = errors.New("section not found")
	ErrInvalidKey       = errors.New("invalid sub-element key")
	ErrInvalidVariant   = errors.New("invalid section type")
	ErrPageNotPublished = errors.New("page is not published")
)

// PageService owns the page documents: creation from templates, the builder
// operations driven through per-request editor sessions, and the two render
// modes. It also implements builder.PageStore, so editor sessions persist
// through the same path the rest of the service uses.
type PageService struct {
	pageRepo repository.PageRepository
	cache    *cache.Cache
	renderer *sections.PageRenderer

	// publishing holds the ids of pages with a publish in flight. Sessions
	// live per request, so the guard has to span requests here.
	publishing sync.Map
}

func NewPageService(pageRepo repository.PageRepository, cacheService *cache.Cache, renderer *sections.PageRenderer) *PageService {
	return &PageService{
		pageRepo: pageRepo,
		cache:    cacheService,
		renderer: renderer,
	}
}

func (s *PageService) Create(companyID uint, req models.CreatePageRequest) (*models.Page, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("page name is required")
	}

	var slug string
	if strings.TrimSpace(req.Slug) != "" {
		slug = utils.GenerateSlug(req.Slug)
	} else {
		slug = utils.GenerateSlug(req.Name)
	}
	if slug == "" {
		return nil, errors.New("page slug is required")
	}

	exists, err := s.pageRepo.ExistsBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check page existence: %w", err)
	}
	if exists {
		return nil, ErrSlugTaken
	}

	template, ok := builder.TemplateByID(req.TemplateID)
	if !ok {
		return nil, ErrTemplateUnknown
	}

	page := &models.Page{
		Slug:       slug,
		Name:       strings.TrimSpace(req.Name),
		CompanyID:  companyID,
		TemplateID: template.ID,
		Status:     models.PageStatusDraft,
		Content:    builder.ContentFromTemplate(template),
	}

	if err := s.pageRepo.Create(page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	logger.Info("Page created", map[string]interface{}{
		"page_id":  page.ID,
		"slug":     page.Slug,
		"template": page.TemplateID,
	})

	return page, nil
}

func (s *PageService) GetByID(id uint) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		return nil, ErrPageNotFound
	}
	return page, nil
}

func (s *PageService) GetByCompany(companyID uint) ([]models.Page, error) {
	return s.pageRepo.GetByCompany(companyID)
}

// GetPublishedBySlug serves the public site. Drafts are invisible here.
func (s *PageService) GetPublishedBySlug(slug string) (*models.Page, error) {
	if s.cache != nil {
		var cached models.Page
		if err := s.cache.GetCachedPage(slug, &cached); err == nil {
			return &cached, nil
		}
	}

	page, err := s.pageRepo.GetBySlug(slug)
	if err != nil {
		return nil, ErrPageNotFound
	}

	if s.cache != nil {
		s.cache.CachePage(slug, page)
	}

	return page, nil
}

// Update renames a page and, while it is still a draft, can move it to a new
// slug. A published slug is the page's public address and never changes.
func (s *PageService) Update(pageID uint, req models.UpdatePageRequest) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(pageID)
	if err != nil {
		return nil, ErrPageNotFound
	}

	if strings.TrimSpace(req.Name) != "" {
		page.Name = strings.TrimSpace(req.Name)
	}

	if strings.TrimSpace(req.Slug) != "" {
		slug := utils.GenerateSlug(req.Slug)
		if slug != "" && slug != page.Slug {
			if page.Status == models.PageStatusPublished {
				return nil, ErrSlugLocked
			}

			taken, err := s.pageRepo.ExistsBySlugExceptID(slug, page.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check page existence: %w", err)
			}
			if taken {
				return nil, ErrSlugTaken
			}

			s.invalidate(page.Slug)
			page.Slug = slug
		}
	}

	if err := s.pageRepo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	s.invalidate(page.Slug)
	return page, nil
}

func (s *PageService) Delete(id uint) error {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		return ErrPageNotFound
	}

	if err := s.pageRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	s.invalidate(page.Slug)
	return nil
}

// Templates exposes the read-only template catalog.
func (s *PageService) Templates() []models.PageTemplate {
	return builder.Templates
}

// GetPage implements builder.PageStore.
func (s *PageService) GetPage(_ context.Context, slug string) (*models.Page, error) {
	page, err := s.pageRepo.GetBySlugAny(slug)
	if err != nil {
		return nil, ErrPageNotFound
	}
	return page, nil
}

// PutPage implements builder.PageStore: every editor save and publish lands
// here, so the public cache for the slug is always invalidated.
func (s *PageService) PutPage(_ context.Context, page *models.Page) error {
	if err := s.pageRepo.Update(page); err != nil {
		return fmt.Errorf("failed to persist page: %w", err)
	}
	s.invalidate(page.Slug)
	return nil
}

func (s *PageService) invalidate(slug string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePage(slug); err != nil {
		logger.Error(err, "Failed to invalidate page cache", map[string]interface{}{"slug": slug})
	}
}

// session opens a per-request editor session over a freshly loaded page.
func (s *PageService) session(pageID uint) (*builder.EditorSession, error) {
	page, err := s.pageRepo.GetByID(pageID)
	if err != nil {
		return nil, ErrPageNotFound
	}
	return builder.NewEditorSession(s, page), nil
}

func (s *PageService) AddSection(ctx context.Context, pageID uint, t models.SectionType) (*models.Page, error) {
	session, err := s.session(pageID)
	if err != nil {
		return nil, err
	}

	if _, ok := session.AddSection(t); !ok {
		return nil, ErrInvalidVariant
	}
	if err := session.Save(ctx); err != nil {
		return nil, err
	}
	return session.Page(), nil
}

func (s *PageService) DeleteSection(ctx context.Context, pageID uint, sectionID string) (*models.Page, error) {
	session, err := s.session(pageID)
	if err != nil {
		return nil, err
	}

	if !session.DeleteSection(sectionID) {
		return nil, ErrSectionNotFound
	}
	if err := session.Save(ctx); err != nil {
		return nil, err
	}
	return session.Page(), nil
}

func (s *PageService) ToggleSectionVisibility(ctx context.Context, pageID uint, sectionID string) (*models.Page, error) {
	session, err := s.session(pageID)
	if err != nil {
		return nil, err
	}

	if !session.ToggleVisibility(sectionID) {
		return nil, ErrSectionNotFound
	}
	if err := session.Save(ctx); err != nil {
		return nil, err
	}
	return session.Page(), nil
}

func (s *PageService) UpdateField(ctx context.Context, pageID uint, sectionID string, req models.UpdateFieldRequest) (*models.Page, error) {
	session, err := s.session(pageID)
	if err != nil {
		return nil, err
	}

	if !session.UpdateField(sectionID, req.Key, req.Value) {
		return nil, ErrInvalidKey
	}
	if err := session.Save(ctx); err != nil {
		return nil, err
	}
	return session.Page(), nil
}

func (s *PageService) UpdateStyle(ctx context.Context, pageID uint, sectionID string, req models.UpdateStyleRequest) (*models.Page, error) {
	session, err := s.session(pageID)
	if err != nil {
		return nil, err
	}

	if !session.UpdateStyle(sectionID, req.Target, req.Patch) {
		return nil, ErrInvalidKey
	}
	if err := session.Save(ctx); err != nil {
		return nil, err
	}
	return session.Page(), nil
}

// Reorder commits a drop: an existing section id moves to the target drop
// zone, or a new section of the requested variant materialises there.
func (s *PageService) Reorder(ctx context.Context, pageID uint, req models.ReorderRequest) (*models.Page, error) {
	session, err := s.session(pageID)
	if err != nil {
		return nil, err
	}

	switch {
	case req.SectionID != "":
		session.StartDrag(req.SectionID)
	case req.NewType != "":
		if !req.NewType.Valid() {
			return nil, ErrInvalidVariant
		}
		session.StartDragNew(req.NewType)
	default:
		return nil, errors.New("either section_id or new_type is required")
	}

	session.HoverZone(req.TargetIndex)
	session.DropAt(req.TargetIndex)

	if err := session.Save(ctx); err != nil {
		return nil, err
	}
	return session.Page(), nil
}

func (s *PageService) Save(ctx context.Context, pageID uint) (*models.Page, error) {
	session, err := s.session(pageID)
	if err != nil {
		return nil, err
	}
	if err := session.Save(ctx); err != nil {
		return nil, err
	}
	return session.Page(), nil
}

func (s *PageService) Publish(ctx context.Context, pageID uint) (*models.Page, error) {
	if _, inFlight := s.publishing.LoadOrStore(pageID, struct{}{}); inFlight {
		return nil, builder.ErrPublishInFlight
	}
	defer s.publishing.Delete(pageID)

	session, err := s.session(pageID)
	if err != nil {
		return nil, err
	}
	if err := session.Publish(ctx); err != nil {
		return nil, err
	}

	logger.Info("Page published", map[string]interface{}{
		"page_id": session.Page().ID,
		"slug":    session.Page().Slug,
	})

	return session.Page(), nil
}

// Preview renders the working document in editing mode with the given
// selection, for the builder's preview pane.
func (s *PageService) Preview(pageID uint, selectedSection, selectedKey, businessName string) (string, error) {
	page, err := s.pageRepo.GetByID(pageID)
	if err != nil {
		return "", ErrPageNotFound
	}

	return s.renderer.Render(page.Content, sections.RenderOptions{
		Mode:         sections.ModeEditing,
		Selection:    sections.Selection{SectionID: selectedSection, SubKey: selectedKey},
		BusinessName: businessName,
	}), nil
}

// RenderPublished renders the public page for a slug, with a rendered-HTML
// cache in front of the database.
func (s *PageService) RenderPublished(slug, businessName string) (string, error) {
	if s.cache != nil {
		if html, err := s.cache.GetRenderedPage(slug); err == nil && html != "" {
			return html, nil
		}
	}

	page, err := s.GetPublishedBySlug(slug)
	if err != nil {
		return "", err
	}
	if page.Status != models.PageStatusPublished {
		return "", ErrPageNotPublished
	}

	html := s.renderer.Render(page.Content, sections.RenderOptions{
		Mode:         sections.ModePublished,
		BusinessName: businessName,
	})

	if s.cache != nil {
		s.cache.CacheRenderedPage(slug, html)
	}

	return html, nil
}
