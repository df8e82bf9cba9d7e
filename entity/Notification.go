package entity

import (
	"gorm.io/gorm"
)

// Notification ยังไม่มี endpoint ไหนเขียนลงตาราง (schema รอไว้ก่อน)
type Notification struct {
	gorm.Model
	Message    string `gorm:"not null" json:"message"`
	ReadStatus bool   `gorm:"default:false" json:"readStatus"`
	Type       string `json:"type,omitempty"` // e.g. "cafe_approved", "cafe_rejected"

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
