package entity

import (
	"gorm.io/gorm"
)

type Feedback struct {
	gorm.Model
	Name     string `json:"name"`
	Feedback string `json:"feedback"`
}
