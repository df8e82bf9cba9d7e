// repository/cafe_repository.go
package repository

import (
	"github.com/ger123348/NgopiBareng/entity"
	"gorm.io/gorm"
)

type CafeRepository struct {
	DB *gorm.DB
}

func NewCafeRepository(db *gorm.DB) *CafeRepository {
	return &CafeRepository{DB: db}
}

// ดึงร้านตาม ID (ไม่ preload)
func (r *CafeRepository) FindByID(id uint) (*entity.Cafe, error) {
	var cafe entity.Cafe
	if err := r.DB.First(&cafe, id).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

// ดึงร้านแบบเต็มสำหรับหน้า detail
func (r *CafeRepository) FindDetail(id uint) (*entity.Cafe, error) {
	var cafe entity.Cafe
	err := r.DB.
		Preload("Images").
		Preload("Reviews.User").
		Preload("Campuses").
		Preload("MenuItems").
		First(&cafe, id).Error
	if err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (r *CafeRepository) ImagesOf(cafeID uint) ([]entity.CafeImage, error) {
	var images []entity.CafeImage
	err := r.DB.Where("cafe_id = ?", cafeID).Find(&images).Error
	return images, err
}
