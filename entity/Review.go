package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"` // 1..5
	Comment      string `json:"comment"`
}
