// services/dashboard_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/ger123348/NgopiBareng/entity"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type DashboardStats struct {
	TotalCafes   int64 `json:"totalCafes"`
	PendingCafes int64 `json:"pendingCafes"`
	TotalReviews int64 `json:"totalReviews"`
	TotalUsers   int64 `json:"totalUsers"`
}

// Stats: ตัวเลขรวม ๆ สำหรับหน้า admin
func (s *DashboardService) Stats() (*DashboardStats, error) {
	var st DashboardStats
	if err := s.DB.Model(&entity.Cafe{}).Count(&st.TotalCafes).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Cafe{}).
		Where("status = ?", entity.StatusPending).
		Count(&st.PendingCafes).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Review{}).Count(&st.TotalReviews).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.User{}).Count(&st.TotalUsers).Error; err != nil {
		return nil, err
	}
	return &st, nil
}
