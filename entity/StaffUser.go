package entity

import (
	"gorm.io/gorm"
)

type StaffUser struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"` // bcrypt hash
	Role     string `gorm:"default:staff" json:"role"`
}
