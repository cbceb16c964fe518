package entity

import (
	"gorm.io/gorm"
)

// Discount types.
const (
	DiscountPercent = "percent"
	DiscountFlat    = "flat"
)

type DiscountCode struct {
	gorm.Model
	Code     string  `gorm:"size:50;uniqueIndex;not null" json:"code"` // stored uppercase
	Type     string  `gorm:"size:20" json:"type"`
	Value    float64 `json:"value"`
	IsActive bool    `gorm:"default:true" json:"is_active"`
}
