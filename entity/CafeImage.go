package entity

import (
	"gorm.io/gorm"
)

type CafeImage struct {
	gorm.Model
	ImagePath string `gorm:"not null" json:"imagePath"` // key ใน blob store ไม่ใช่ URL เต็ม

	CafeID uint `json:"cafeId"`
	Cafe   Cafe `json:"-"`
}
