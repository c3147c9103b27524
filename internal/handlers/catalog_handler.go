package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bizhub-backend/internal/models"
	"bizhub-backend/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.catalogService.GetCatalog(companyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"catalog": catalog})
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product.CompanyID = companyID(c)
	if err := h.catalogService.CreateProduct(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	product, ok := h.loadProduct(c)
	if !ok {
		return
	}

	var req models.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.Stock = req.Stock

	if err := h.catalogService.UpdateProduct(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	product, ok := h.loadProduct(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(product.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}

type adjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (h *CatalogHandler) AdjustStock(c *gin.Context) {
	product, ok := h.loadProduct(c)
	if !ok {
		return
	}

	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.catalogService.AdjustStock(product.ID, req.Delta)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrNotEnoughStock) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": updated})
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc.CompanyID = companyID(c)
	if err := h.catalogService.CreateService(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	svc, ok := h.loadService(c)
	if !ok {
		return
	}

	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = req.Price

	if err := h.catalogService.UpdateService(svc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": svc})
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	svc, ok := h.loadService(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteService(svc.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "service deleted successfully"})
}

func (h *CatalogHandler) loadProduct(c *gin.Context) (*models.Product, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return nil, false
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return nil, false
	}
	if product.CompanyID != companyID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "product belongs to another company"})
		return nil, false
	}

	return product, true
}

func (h *CatalogHandler) loadService(c *gin.Context) (*models.Service, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return nil, false
	}

	svc, err := h.catalogService.GetService(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return nil, false
	}
	if svc.CompanyID != companyID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "service belongs to another company"})
		return nil, false
	}

	return svc, true
}
