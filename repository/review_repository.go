package repository

import (
	"github.com/andyrob2215/AAASmores/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) ListLatest(limit int) ([]entity.Review, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Review
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) CreateFeedback(fb *entity.Feedback) error {
	return r.DB.Create(fb).Error
}
