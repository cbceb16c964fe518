package repository

import (
	"github.com/andyrob2215/AAASmores/entity"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	DB *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

// ListInStock feeds the public customization picker.
func (r *IngredientRepository) ListInStock() ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	err := r.DB.Where("is_in_stock = ?", true).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *IngredientRepository) ListAll() ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	err := r.DB.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *IngredientRepository) Create(name string) error {
	return r.DB.Create(&entity.Ingredient{Name: name}).Error
}

func (r *IngredientRepository) SetInStock(id uint, inStock bool) error {
	return r.DB.Model(&entity.Ingredient{}).
		Where("id = ?", id).
		Update("is_in_stock", inStock).Error
}

// Delete removes the ingredient and any recipe rows that referenced it, so
// dependent items simply lose that requirement.
func (r *IngredientRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("ingredient_id = ?", id).
			Delete(&entity.RecipeItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Ingredient{}, id).Error
	})
}
