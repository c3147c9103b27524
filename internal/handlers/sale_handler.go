package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bizhub-backend/internal/service"
)

type SaleHandler struct {
	saleService *service.SaleService
}

func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req service.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.saleService.Create(companyID(c), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNotEnoughStock) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sale": order})
}

func (h *SaleHandler) List(c *gin.Context) {
	orders, err := h.saleService.GetByCompany(companyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sales": orders})
}

func (h *SaleHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale id"})
		return
	}

	order, err := h.saleService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		return
	}
	if order.CompanyID != companyID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "sale belongs to another company"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sale": order})
}

func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale id"})
		return
	}

	order, err := h.saleService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		return
	}
	if order.CompanyID != companyID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "sale belongs to another company"})
		return
	}

	if err := h.saleService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sale deleted successfully"})
}

// Summary aggregates the ledger over a period given in days, defaulting to
// the last 30.
func (h *SaleHandler) Summary(c *gin.Context) {
	days := 30
	if value := c.Query("days"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			days = parsed
		}
	}

	since := time.Now().AddDate(0, 0, -days)
	summary, err := h.saleService.SummarySince(companyID(c), since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary, "since": since})
}
