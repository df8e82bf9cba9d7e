// services/review_service.go
package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/ger123348/NgopiBareng/entity"
	"github.com/ger123348/NgopiBareng/repository"
)

type ReviewService struct {
	DB   *gorm.DB
	Repo *repository.ReviewRepository
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db, Repo: repository.NewReviewRepository(db)}
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// Add สร้างรีวิว — หนึ่งคนต่อหนึ่งร้านเท่านั้น แล้วคำนวณ rating ร้านใหม่ทันที
func (s *ReviewService) Add(userID, cafeID uint, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrValidation)
	}

	var cafe entity.Cafe
	if err := s.DB.First(&cafe, cafeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown cafe", ErrValidation)
		}
		return nil, err
	}

	rev := entity.Review{
		UserID:  userID,
		CafeID:  cafeID,
		Rating:  rating,
		Comment: comment,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := repository.NewReviewRepository(tx).Exists(userID, cafeID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyReviewed
		}
		if err := tx.Create(&rev).Error; err != nil {
			// unique (user_id, cafe_id) ปิด race ที่ pre-check มองไม่เห็น
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyReviewed
			}
			return err
		}
		return recalcCafeRating(tx, cafeID)
	})
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

// Update แก้รีวิวตัวเอง — field ที่ส่งมาเท่านั้น
func (s *ReviewService) Update(reviewID, actorID uint, in UpdateReviewInput) (*entity.Review, error) {
	rev, err := s.Repo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: review", ErrNotFound)
		}
		return nil, err
	}
	if rev.UserID != actorID {
		return nil, ErrForbidden
	}

	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
		}
		rev.Rating = *in.Rating
	}
	if in.Comment != nil {
		if *in.Comment == "" {
			return nil, fmt.Errorf("%w: comment must not be empty", ErrValidation)
		}
		rev.Comment = *in.Comment
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(rev).Error; err != nil {
			return err
		}
		return recalcCafeRating(tx, rev.CafeID)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

// Delete ลบรีวิว — เจ้าของรีวิวหรือ admin
func (s *ReviewService) Delete(reviewID, actorID uint, role string) error {
	rev, err := s.Repo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: review", ErrNotFound)
		}
		return err
	}
	if rev.UserID != actorID && role != "admin" {
		return ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(rev).Error; err != nil {
			return err
		}
		return recalcCafeRating(tx, rev.CafeID)
	})
}

// recalcCafeRating เขียนค่าเฉลี่ยรีวิวลงร้านใน transaction เดียวกับตัว mutation
// ไม่มีรีวิวเหลือ = 0 เสมอ (ไม่ใช่ null)
func recalcCafeRating(tx *gorm.DB, cafeID uint) error {
	var avg float64
	if err := tx.Model(&entity.Review{}).
		Where("cafe_id = ?", cafeID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return err
	}
	avg = math.Round(avg*100) / 100
	return tx.Model(&entity.Cafe{}).Where("id = ?", cafeID).Update("rating", avg).Error
}
