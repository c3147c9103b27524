package repository

import (
	"bizhub-backend/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(company *models.Company) error
	Update(company *models.Company) error
	GetByID(id uint) (*models.Company, error)
	GetByRIF(rif string) (*models.Company, error)
	ExistsByRIF(rif string) (bool, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

func (r *companyRepository) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) GetByRIF(rif string) (*models.Company, error) {
	var company models.Company
	if err := r.db.Where("rif = ?", rif).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) ExistsByRIF(rif string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Company{}).Where("rif = ?", rif).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
