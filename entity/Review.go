package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"` // 1-5
	Comment string `gorm:"not null" json:"comment"`

	// unique (user_id, cafe_id) — กันรีวิวซ้ำระดับ DB ไม่ใช่แค่เช็คใน service
	UserID uint `gorm:"uniqueIndex:idx_reviews_user_cafe" json:"userId"`
	User   User `json:"user,omitempty"`
	CafeID uint `gorm:"uniqueIndex:idx_reviews_user_cafe" json:"cafeId"`
	Cafe   Cafe `json:"-"`
}
