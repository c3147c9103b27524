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

var ErrCompanyNotFound = errors.New("company not found")

// CompanyService manages the business record behind an account. The business
// name is rendered into published page HTML, so updates drop every cached
// page.
type CompanyService struct {
	companyRepo repository.CompanyRepository
	cache       *cache.Cache
}

func NewCompanyService(companyRepo repository.CompanyRepository, cacheService *cache.Cache) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, cache: cacheService}
}

func (s *CompanyService) GetByID(id uint) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(id)
	if err != nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

func (s *CompanyService) Update(company *models.Company) error {
	if strings.TrimSpace(company.Name) == "" {
		return errors.New("company name is required")
	}

	if err := s.companyRepo.Update(company); err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidatePagesCache(); err != nil {
			logger.Error(err, "Failed to invalidate page caches", map[string]interface{}{"company_id": company.ID})
		}
	}
	return nil
}
