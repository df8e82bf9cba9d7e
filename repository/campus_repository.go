// repository/campus_repository.go
package repository

import (
	"github.com/ger123348/NgopiBareng/entity"
	"gorm.io/gorm"
)

type CampusRepository struct {
	DB *gorm.DB
}

func NewCampusRepository(db *gorm.DB) *CampusRepository {
	return &CampusRepository{DB: db}
}

func (r *CampusRepository) FindAll() ([]entity.Campus, error) {
	var campuses []entity.Campus
	err := r.DB.Order("id ASC").Find(&campuses).Error
	return campuses, err
}

// นับว่า id ที่ส่งมามีอยู่จริงครบทุกตัวไหม
func (r *CampusRepository) CountByIDs(ids []uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Campus{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}
