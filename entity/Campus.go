package entity

import (
	"gorm.io/gorm"
)

type Campus struct {
	gorm.Model
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	Slug      string `gorm:"not null" json:"slug"`
	ImagePath string `json:"imagePath,omitempty"`

	Cafes []Cafe `gorm:"many2many:campus_cafe;" json:"-"`
}
