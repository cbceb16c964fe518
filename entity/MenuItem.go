package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`

	// ManualAvailability is the staff toggle; effective availability also
	// requires every recipe ingredient to be in stock (computed at read time).
	ManualAvailability bool `gorm:"default:true" json:"manual_availability"`
	IsVisible          bool `gorm:"default:true" json:"is_visible"`
	IsDeleted          bool `gorm:"default:false" json:"is_deleted"`

	Recipe []RecipeItem `json:"-"`
}
