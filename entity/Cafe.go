package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// สถานะร้าน — ร้านใหม่เริ่มที่ pending เสมอ
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusHidden   = "hidden"
)

const (
	PriceCheap     = "cheap"
	PriceModerate  = "moderate"
	PriceExpensive = "expensive"
)

type Cafe struct {
	gorm.Model
	Name          string                      `gorm:"not null" json:"name"`
	Description   string                      `json:"description"`
	Address       string                      `json:"address"`
	PriceCategory string                      `json:"priceCategory"`
	Facilities    datatypes.JSONSlice[string] `json:"facilities"`

	// rating คำนวณจากรีวิวเท่านั้น ห้าม set ตรง ๆ จาก input
	Rating float64 `gorm:"default:0" json:"rating"`
	Status string  `gorm:"not null;default:pending" json:"status"`

	UserID uint `json:"ownerUserId"` // owner (users.id)
	User   User `json:"-"`

	Campuses  []Campus       `gorm:"many2many:campus_cafe;" json:"campuses,omitempty"`
	Images    []CafeImage    `json:"images,omitempty"`
	MenuItems []CafeMenuItem `json:"menuItems,omitempty"`
	Reviews   []Review       `json:"reviews,omitempty"`
}

// GORM pluralize "Cafe" เป็น "caves" (กฎ knife→knives) เลยต้อง fix ชื่อตารางเอง
// query ที่ qualify คอลัมน์ (เช่น cafes.status) อิงชื่อนี้
func (Cafe) TableName() string { return "cafes" }
