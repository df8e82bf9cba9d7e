package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:user" json:"role"`

	// Relations — preload เฉพาะตอนจำเป็น
	Cafes   []Cafe   `gorm:"foreignKey:UserID" json:"-"`
	Reviews []Review `json:"-"`
}
