package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizhub-backend/internal/service"
)

// CompanyHandler exposes the business settings of the authenticated account.
type CompanyHandler struct {
	companyService *service.CompanyService
}

func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyService.GetByID(companyID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

type updateCompanyRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LogoURL  string `json:"logo_url"`
	Category string `json:"category"`
}

// Update edits the business record. The RIF is the company's permanent tax
// identity and is not editable here.
func (h *CompanyHandler) Update(c *gin.Context) {
	company, err := h.companyService.GetByID(companyID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}

	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company.Name = req.Name
	company.Phone = req.Phone
	company.Address = req.Address
	company.LogoURL = req.LogoURL
	company.Category = req.Category

	if err := h.companyService.Update(company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}
