package repository

import (
	"time"

	"bizhub-backend/internal/models"

	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(order *models.SaleOrder) error
	Delete(id uint) error
	GetByID(id uint) (*models.SaleOrder, error)
	GetByCompany(companyID uint) ([]models.SaleOrder, error)
	GetByCompanySince(companyID uint, since time.Time) ([]models.SaleOrder, error)
	TotalByCompanySince(companyID uint, since time.Time) (float64, error)
}

type saleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(order *models.SaleOrder) error {
	return r.db.Create(order).Error
}

func (r *saleRepository) Delete(id uint) error {
	return r.db.Select("Items").Delete(&models.SaleOrder{ID: id}).Error
}

func (r *saleRepository) GetByID(id uint) (*models.SaleOrder, error) {
	var order models.SaleOrder
	if err := r.db.Preload("Items").Preload("Customer").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *saleRepository) GetByCompany(companyID uint) ([]models.SaleOrder, error) {
	var orders []models.SaleOrder
	if err := r.db.Preload("Items").Preload("Customer").
		Where("company_id = ?", companyID).
		Order("sale_orders.created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *saleRepository) GetByCompanySince(companyID uint, since time.Time) ([]models.SaleOrder, error) {
	var orders []models.SaleOrder
	if err := r.db.Preload("Items").
		Where("company_id = ? AND created_at >= ?", companyID, since).
		Order("sale_orders.created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *saleRepository) TotalByCompanySince(companyID uint, since time.Time) (float64, error) {
	var total float64
	if err := r.db.Model(&models.SaleOrder{}).
		Where("company_id = ? AND created_at >= ?", companyID, since).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
