package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizhub-backend/internal/models"
	"bizhub-backend/internal/service"
)

type CustomerHandler struct {
	customerService *service.CustomerService
}

func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer.CompanyID = companyID(c)
	if err := h.customerService.Create(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.GetByCompany(companyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	customer, ok := h.loadCustomer(c)
	if !ok {
		return
	}

	var req models.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer.Name = req.Name
	customer.Document = req.Document
	customer.Email = req.Email
	customer.Phone = req.Phone

	if err := h.customerService.Update(customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	customer, ok := h.loadCustomer(c)
	if !ok {
		return
	}

	if err := h.customerService.Delete(customer.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "customer deleted successfully"})
}

func (h *CustomerHandler) loadCustomer(c *gin.Context) (*models.Customer, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return nil, false
	}

	customer, err := h.customerService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return nil, false
	}
	if customer.CompanyID != companyID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "customer belongs to another company"})
		return nil, false
	}

	return customer, true
}
