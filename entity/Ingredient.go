package entity

import (
	"gorm.io/gorm"
)

type Ingredient struct {
	gorm.Model
	Name      string `json:"name"`
	IsInStock bool   `gorm:"default:true" json:"is_in_stock"`
}
