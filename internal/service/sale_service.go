package service

import (
	"errors"
	"fmt"
	"time"

	"bizhub-backend/internal/models"
	"bizhub-backend/internal/repository"
	"bizhub-backend/pkg/logger"
)

var ErrSaleNotFound = errors.New("sale not found")

// SaleItemInput is one line of a new sale. Either a product, a service or a
// free-form line; the name and price are denormalised into the ledger so the
// record survives later catalog edits.
type SaleItemInput struct {
	ProductID *uint   `json:"product_id,omitempty"`
	ServiceID *uint   `json:"service_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unit_price"`
}

type CreateSaleRequest struct {
	CustomerID *uint           `json:"customer_id,omitempty"`
	Note       string          `json:"note"`
	Items      []SaleItemInput `json:"items" binding:"required,min=1"`
}

// SaleSummary aggregates the ledger for a dashboard period.
type SaleSummary struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// SaleService writes the append-oriented sales ledger. Creating a sale with
// product lines also decrements stock through the catalog.
type SaleService struct {
	saleRepo repository.SaleRepository
	catalog  *CatalogService
}

func NewSaleService(saleRepo repository.SaleRepository, catalog *CatalogService) *SaleService {
	return &SaleService{saleRepo: saleRepo, catalog: catalog}
}

func (s *SaleService) Create(companyID uint, req CreateSaleRequest) (*models.SaleOrder, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("a sale needs at least one item")
	}

	order := &models.SaleOrder{
		CompanyID:  companyID,
		CustomerID: req.CustomerID,
		Note:       req.Note,
	}

	for _, input := range req.Items {
		if input.Quantity <= 0 {
			return nil, errors.New("item quantity must be positive")
		}

		item := models.SaleOrderItem{
			ProductID: input.ProductID,
			ServiceID: input.ServiceID,
			Name:      input.Name,
			Quantity:  input.Quantity,
			UnitPrice: input.UnitPrice,
		}

		// Lines referencing the catalog pick up its current name and price;
		// free-form lines keep what the caller sent.
		if input.ProductID != nil {
			product, err := s.catalog.GetProduct(*input.ProductID)
			if err != nil {
				return nil, err
			}
			item.Name = product.Name
			item.UnitPrice = product.Price
		} else if input.ServiceID != nil {
			svc, err := s.catalog.GetService(*input.ServiceID)
			if err != nil {
				return nil, err
			}
			item.Name = svc.Name
			item.UnitPrice = svc.Price
		}

		if item.Name == "" {
			return nil, errors.New("item name is required")
		}

		order.Items = append(order.Items, item)
		order.Total += float64(item.Quantity) * item.UnitPrice
	}

	for _, item := range order.Items {
		if item.ProductID == nil {
			continue
		}
		if _, err := s.catalog.AdjustStock(*item.ProductID, -item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.saleRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	logger.Info("Sale recorded", map[string]interface{}{
		"sale_id":    order.ID,
		"company_id": companyID,
		"total":      order.Total,
		"items":      len(order.Items),
	})

	return order, nil
}

func (s *SaleService) GetByID(id uint) (*models.SaleOrder, error) {
	order, err := s.saleRepo.GetByID(id)
	if err != nil {
		return nil, ErrSaleNotFound
	}
	return order, nil
}

func (s *SaleService) GetByCompany(companyID uint) ([]models.SaleOrder, error) {
	return s.saleRepo.GetByCompany(companyID)
}

func (s *SaleService) Delete(id uint) error {
	if _, err := s.saleRepo.GetByID(id); err != nil {
		return ErrSaleNotFound
	}
	return s.saleRepo.Delete(id)
}

// SummarySince aggregates the ledger from the given instant to now.
func (s *SaleService) SummarySince(companyID uint, since time.Time) (*SaleSummary, error) {
	orders, err := s.saleRepo.GetByCompanySince(companyID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	total, err := s.saleRepo.TotalByCompanySince(companyID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to total sales: %w", err)
	}

	return &SaleSummary{Count: len(orders), Total: total}, nil
}
