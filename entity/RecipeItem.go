package entity

import (
	"gorm.io/gorm"
)

// RecipeItem links a menu item to a required ingredient with a baseline
// quantity. The baseline doubles as the zero-surcharge reference for
// customization.
type RecipeItem struct {
	gorm.Model
	MenuItemID   uint `gorm:"uniqueIndex:idx_recipe_item" json:"menu_item_id"`
	IngredientID uint `gorm:"uniqueIndex:idx_recipe_item" json:"ingredient_id"`
	Quantity     int  `gorm:"default:1" json:"quantity"`

	MenuItem   MenuItem   `json:"-"`
	Ingredient Ingredient `json:"-"`
}
