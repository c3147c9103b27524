package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bizhub-backend/internal/service"
)

// PublicHandler serves published pages on their public slug address. No
// authentication; drafts are never reachable here.
type PublicHandler struct {
	pageService    *service.PageService
	companyService *service.CompanyService
}

func NewPublicHandler(pageService *service.PageService, companyService *service.CompanyService) *PublicHandler {
	return &PublicHandler{pageService: pageService, companyService: companyService}
}

func (h *PublicHandler) Site(c *gin.Context) {
	slug := c.Param("slug")

	page, err := h.pageService.GetPublishedBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
		return
	}

	businessName := ""
	if company, err := h.companyService.GetByID(page.CompanyID); err == nil {
		businessName = company.Name
	}

	html, err := h.pageService.RenderPublished(slug, businessName)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) || errors.Is(err, service.ErrPageNotPublished) {
			c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
