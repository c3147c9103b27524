package service

import (
	"errors"
	"fmt"
	"strings"

	"bizhub-backend/internal/models"
	"bizhub-backend/internal/repository"
	"bizhub-backend/pkg/cache"
	"bizhub-backend/pkg/logger"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrNotEnoughStock  = errors.New("not enough stock")
)

// CatalogService manages a company's sellable products and services. Reads
// of the combined catalog go through the cache; every write invalidates it.
type CatalogService struct {
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	cache       *cache.Cache
}

// Catalog is the combined listing the console shows on one screen.
type Catalog struct {
	Products []models.Product `json:"products"`
	Services []models.Service `json:"services"`
}

func NewCatalogService(productRepo repository.ProductRepository, serviceRepo repository.ServiceRepository, cacheService *cache.Cache) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		cache:       cacheService,
	}
}

func (s *CatalogService) GetCatalog(companyID uint) (*Catalog, error) {
	if s.cache != nil {
		var cached Catalog
		if err := s.cache.GetCachedCatalog(companyID, &cached); err == nil {
			return &cached, nil
		}
	}

	products, err := s.productRepo.GetByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	services, err := s.serviceRepo.GetByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	catalog := &Catalog{Products: products, Services: services}
	if s.cache != nil {
		s.cache.CacheCatalog(companyID, catalog)
	}

	return catalog, nil
}

func (s *CatalogService) CreateProduct(product *models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return errors.New("product name is required")
	}
	if product.Price < 0 {
		return errors.New("product price cannot be negative")
	}

	if err := s.productRepo.Create(product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidate(product.CompanyID)
	return nil
}

func (s *CatalogService) UpdateProduct(product *models.Product) error {
	if err := s.productRepo.Update(product); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	s.invalidate(product.CompanyID)
	return nil
}

func (s *CatalogService) DeleteProduct(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.invalidate(product.CompanyID)
	return nil
}

func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// AdjustStock applies a signed delta to a product's stock. The stock never
// goes below zero.
func (s *CatalogService) AdjustStock(id uint, delta int) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if product.Stock+delta < 0 {
		return nil, ErrNotEnoughStock
	}

	product.Stock += delta
	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	logger.Debug("Stock adjusted", map[string]interface{}{
		"product_id": product.ID,
		"delta":      delta,
		"stock":      product.Stock,
	})

	s.invalidate(product.CompanyID)
	return product, nil
}

func (s *CatalogService) CreateService(svc *models.Service) error {
	if strings.TrimSpace(svc.Name) == "" {
		return errors.New("service name is required")
	}
	if svc.Price < 0 {
		return errors.New("service price cannot be negative")
	}

	if err := s.serviceRepo.Create(svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidate(svc.CompanyID)
	return nil
}

func (s *CatalogService) UpdateService(svc *models.Service) error {
	if err := s.serviceRepo.Update(svc); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	s.invalidate(svc.CompanyID)
	return nil
}

func (s *CatalogService) DeleteService(id uint) error {
	svc, err := s.serviceRepo.GetByID(id)
	if err != nil {
		return ErrServiceNotFound
	}
	if err := s.serviceRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	s.invalidate(svc.CompanyID)
	return nil
}

func (s *CatalogService) GetService(id uint) (*models.Service, error) {
	svc, err := s.serviceRepo.GetByID(id)
	if err != nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (s *CatalogService) invalidate(companyID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCatalog(companyID); err != nil {
		logger.Error(err, "Failed to invalidate catalog cache", map[string]interface{}{"company_id": companyID})
	}
}
