// repository/review_repository.go
package repository

import (
	"github.com/ger123348/NgopiBareng/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

// เคยรีวิวร้านนี้แล้วหรือยัง
func (r *ReviewRepository) Exists(userID, cafeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).
		Where("user_id = ? AND cafe_id = ?", userID, cafeID).
		Count(&count).Error
	return count > 0, err
}
