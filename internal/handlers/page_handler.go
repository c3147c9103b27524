package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bizhub-backend/internal/builder"
	"bizhub-backend/internal/models"
	"bizhub-backend/internal/service"
)

// PageHandler exposes page CRUD plus the builder operations: section
// add/delete, field and style edits, reorder commits and the save/publish
// lifecycle.
type PageHandler struct {
	pageService *service.PageService
}

func NewPageHandler(pageService *service.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

func (h *PageHandler) Create(c *gin.Context) {
	var req models.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.Create(companyID(c), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrSlugTaken):
			status = http.StatusConflict
		case errors.Is(err, service.ErrTemplateUnknown):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

func (h *PageHandler) List(c *gin.Context) {
	pages, err := h.pageService.GetByCompany(companyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *PageHandler) GetByID(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *PageHandler) Update(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	var req models.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.pageService.Update(page.ID, req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrSlugTaken):
			status = http.StatusConflict
		case errors.Is(err, service.ErrSlugLocked):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": updated})
}

func (h *PageHandler) Delete(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	if err := h.pageService.Delete(page.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "page deleted successfully"})
}

func (h *PageHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.pageService.Templates()})
}

func (h *PageHandler) AddSection(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	var req models.AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.pageService.AddSection(c.Request.Context(), page.ID, req.Type)
	if err != nil {
		h.builderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": updated})
}

func (h *PageHandler) DeleteSection(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	updated, err := h.pageService.DeleteSection(c.Request.Context(), page.ID, c.Param("sectionId"))
	if err != nil {
		h.builderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": updated})
}

func (h *PageHandler) ToggleSection(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	updated, err := h.pageService.ToggleSectionVisibility(c.Request.Context(), page.ID, c.Param("sectionId"))
	if err != nil {
		h.builderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": updated})
}

func (h *PageHandler) UpdateField(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	var req models.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.pageService.UpdateField(c.Request.Context(), page.ID, c.Param("sectionId"), req)
	if err != nil {
		h.builderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": updated})
}

func (h *PageHandler) UpdateStyle(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	var req models.UpdateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.pageService.UpdateStyle(c.Request.Context(), page.ID, c.Param("sectionId"), req)
	if err != nil {
		h.builderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": updated})
}

func (h *PageHandler) Reorder(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.pageService.Reorder(c.Request.Context(), page.ID, req)
	if err != nil {
		h.builderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": updated})
}

func (h *PageHandler) Save(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	updated, err := h.pageService.Save(c.Request.Context(), page.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": updated})
}

func (h *PageHandler) Publish(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	updated, err := h.pageService.Publish(c.Request.Context(), page.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, builder.ErrPublishInFlight) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": updated})
}

// Preview renders the working document in editing mode. The selection can be
// passed through query parameters so the preview pane highlights the focused
// element.
func (h *PageHandler) Preview(c *gin.Context) {
	page, ok := h.loadPage(c)
	if !ok {
		return
	}

	html, err := h.pageService.Preview(page.ID, c.Query("section"), c.Query("key"), c.Query("business"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// loadPage resolves the :id parameter and enforces company ownership.
func (h *PageHandler) loadPage(c *gin.Context) (*models.Page, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page id"})
		return nil, false
	}

	page, err := h.pageService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return nil, false
	}

	if page.CompanyID != companyID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "page belongs to another company"})
		return nil, false
	}

	return page, true
}

func (h *PageHandler) builderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrSectionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidKey), errors.Is(err, service.ErrInvalidVariant):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
