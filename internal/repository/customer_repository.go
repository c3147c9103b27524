package repository

import (
	"bizhub-backend/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	Delete(id uint) error
	GetByID(id uint) (*models.Customer, error)
	GetByCompany(companyID uint) ([]models.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Customer{}, id).Error
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByCompany(companyID uint) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Where("company_id = ?", companyID).
		Order("customers.name ASC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
