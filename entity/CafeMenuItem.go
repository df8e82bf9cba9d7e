package entity

import (
	"gorm.io/gorm"
)

type CafeMenuItem struct {
	gorm.Model
	Name     string  `gorm:"not null" json:"name"`
	Category string  `json:"category,omitempty"` // Food, Drink, Snack
	Price    float64 `json:"price"`

	CafeID uint `json:"cafeId"`
	Cafe   Cafe `json:"-"`
}
