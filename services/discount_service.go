package services

import (
	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"
)

type DiscountService struct {
	Repo *repository.DiscountRepository
}

func NewDiscountService(repo *repository.DiscountRepository) *DiscountService {
	return &DiscountService{Repo: repo}
}

// Validate resolves a coupon code. A missing or inactive code is not an
// error; the caller gets nil and reports {valid:false}.
func (s *DiscountService) Validate(code string) (*entity.DiscountCode, error) {
	if code == "" {
		return nil, nil
	}
	return s.Repo.FindActiveByCode(code)
}

// Amount computes the discount a code grants on the given pre-discount total.
// Percent codes scale with the total, flat codes do not.
func (s *DiscountService) Amount(d *entity.DiscountCode, total float64) float64 {
	switch d.Type {
	case entity.DiscountPercent:
		return total * (d.Value / 100)
	case entity.DiscountFlat:
		return d.Value
	default:
		return 0
	}
}

func (s *DiscountService) List() ([]entity.DiscountCode, error) {
	return s.Repo.ListAll()
}

func (s *DiscountService) Create(code, discountType string, value float64) error {
	return s.Repo.Create(&entity.DiscountCode{
		Code:  code,
		Type:  discountType,
		Value: value,
	})
}

func (s *DiscountService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
