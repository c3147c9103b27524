package service

import (
	"errors"
	"fmt"
	"strings"

	"bizhub-backend/internal/models"
	"bizhub-backend/internal/repository"
	"bizhub-backend/pkg/validator"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidEmail     = errors.New("invalid email address")
)

type CustomerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) Create(customer *models.Customer) error {
	if err := s.normalize(customer); err != nil {
		return err
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (s *CustomerService) Update(customer *models.Customer) error {
	if err := s.normalize(customer); err != nil {
		return err
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

// normalize strips markup from the free-text fields and checks the email
// shape before anything is written.
func (s *CustomerService) normalize(customer *models.Customer) error {
	customer.Name = strings.TrimSpace(validator.SanitizeString(customer.Name))
	customer.Document = strings.TrimSpace(customer.Document)
	customer.Email = strings.TrimSpace(customer.Email)

	if customer.Name == "" {
		return errors.New("customer name is required")
	}
	if customer.Email != "" && !validator.ValidateEmail(customer.Email) {
		return ErrInvalidEmail
	}
	return nil
}

func (s *CustomerService) Delete(id uint) error {
	if _, err := s.customerRepo.GetByID(id); err != nil {
		return ErrCustomerNotFound
	}
	return s.customerRepo.Delete(id)
}

func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *CustomerService) GetByCompany(companyID uint) ([]models.Customer, error) {
	return s.customerRepo.GetByCompany(companyID)
}
