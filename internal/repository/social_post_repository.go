package repository

import (
	"time"

	"bizhub-backend/internal/models"

	"gorm.io/gorm"
)

type SocialPostRepository interface {
	Create(post *models.SocialPost) error
	Update(post *models.SocialPost) error
	Delete(id uint) error
	GetByID(id uint) (*models.SocialPost, error)
	GetByCompany(companyID uint) ([]models.SocialPost, error)
	GetDueScheduled(now time.Time) ([]models.SocialPost, error)
}

type socialPostRepository struct {
	db *gorm.DB
}

func NewSocialPostRepository(db *gorm.DB) SocialPostRepository {
	return &socialPostRepository{db: db}
}

func (r *socialPostRepository) Create(post *models.SocialPost) error {
	return r.db.Create(post).Error
}

func (r *socialPostRepository) Update(post *models.SocialPost) error {
	return r.db.Save(post).Error
}

func (r *socialPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.SocialPost{}, id).Error
}

func (r *socialPostRepository) GetByID(id uint) (*models.SocialPost, error) {
	var post models.SocialPost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *socialPostRepository) GetByCompany(companyID uint) ([]models.SocialPost, error) {
	var posts []models.SocialPost
	if err := r.db.Where("company_id = ?", companyID).
		Order("social_posts.created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetDueScheduled returns scheduled posts whose time has arrived.
func (r *socialPostRepository) GetDueScheduled(now time.Time) ([]models.SocialPost, error) {
	var posts []models.SocialPost
	if err := r.db.Where("status = ? AND scheduled_at <= ?", models.SocialPostScheduled, now).
		Order("social_posts.scheduled_at ASC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
