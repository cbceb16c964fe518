package repository

import (
	"errors"
	"strings"

	"github.com/andyrob2215/AAASmores/entity"

	"gorm.io/gorm"
)

type DiscountRepository struct {
	DB *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) *DiscountRepository {
	return &DiscountRepository{DB: db}
}

// FindActiveByCode looks a code up case-insensitively among active codes.
// Returns (nil, nil) when no such code exists; that is not an error at the
// checkout path, just "no discount".
func (r *DiscountRepository) FindActiveByCode(code string) (*entity.DiscountCode, error) {
	var d entity.DiscountCode
	err := r.DB.
		Where("code = ? AND is_active = ?", strings.ToUpper(strings.TrimSpace(code)), true).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DiscountRepository) ListAll() ([]entity.DiscountCode, error) {
	var out []entity.DiscountCode
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}

func (r *DiscountRepository) Create(d *entity.DiscountCode) error {
	d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	return r.DB.Create(d).Error
}

func (r *DiscountRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.DiscountCode{}, id).Error
}
