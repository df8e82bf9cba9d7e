package services

import (
	"github.com/ger123348/NgopiBareng/entity"
	"gorm.io/gorm"
)

// Visibility คือ policy ว่า requester เห็นร้านสถานะไหนได้บ้าง
// คำนวณครั้งเดียวต่อ request แล้วส่งเข้า query แทนการเช็ค role กระจัดกระจาย
type Visibility struct {
	admin        bool
	statusFilter string
}

// VisibilityFor derives the policy from the requester role and an optional
// status filter. Only an admin that explicitly asks for a status escapes the
// approved-only restriction — admin without a filter still sees approved only.
func VisibilityFor(role, statusFilter string) Visibility {
	return Visibility{admin: role == "admin", statusFilter: statusFilter}
}

// EffectiveStatus คืนสถานะที่ query ต้อง restrict
func (v Visibility) EffectiveStatus() string {
	if v.admin && v.statusFilter != "" {
		return v.statusFilter
	}
	return entity.StatusApproved
}

func (v Visibility) Apply(q *gorm.DB) *gorm.DB {
	return q.Where("cafes.status = ?", v.EffectiveStatus())
}
