// services/cafe_service.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ger123348/NgopiBareng/entity"
	"github.com/ger123348/NgopiBareng/pkg/storage"
	"github.com/ger123348/NgopiBareng/repository"
	"github.com/ger123348/NgopiBareng/utils"
)

type CafeService struct {
	DB         *gorm.DB
	Repo       *repository.CafeRepository
	CampusRepo *repository.CampusRepository
	Blobs      storage.ObjectStore
}

func NewCafeService(db *gorm.DB, blobs storage.ObjectStore) *CafeService {
	return &CafeService{
		DB:         db,
		Repo:       repository.NewCafeRepository(db),
		CampusRepo: repository.NewCampusRepository(db),
		Blobs:      blobs,
	}
}

// ===== Inputs =====

type CreateCafeInput struct {
	Name          string
	Description   string
	Address       string
	PriceCategory string
	Facilities    []string
	CampusIDs     []uint
}

type ListCafesFilter struct {
	CampusID      uint
	Status        string // มีผลเฉพาะ admin (ดู Visibility)
	PriceCategory string
	MinRating     float64
	Facilities    []string // AND ทุกตัว
	Sort          string   // rating | nearest | default latest
}

type MenuItemInput struct {
	Name     string
	Category string
	Price    float64
}

func validPriceCategory(p string) bool {
	return p == entity.PriceCheap || p == entity.PriceModerate || p == entity.PriceExpensive
}

// ===== Queries =====

// List คืนร้านตาม filter โดย Visibility คุมว่าเห็นสถานะไหน
func (s *CafeService) List(f ListCafesFilter, vis Visibility) ([]entity.Cafe, error) {
	q := s.DB.Model(&entity.Cafe{}).
		Preload("Images").
		Preload("Campuses")

	q = vis.Apply(q)

	if f.CampusID > 0 {
		q = q.Joins("JOIN campus_cafe ON campus_cafe.cafe_id = cafes.id").
			Where("campus_cafe.campus_id = ?", f.CampusID)
	}
	if f.PriceCategory != "" {
		q = q.Where("price_category = ?", f.PriceCategory)
	}
	if f.MinRating > 0 {
		q = q.Where("rating >= ?", f.MinRating)
	}

	switch f.Sort {
	case "rating":
		q = q.Order("rating DESC")
	case "nearest":
		// dummy nearest — ยังไม่มีพิกัดจริง ห้าม test ยึดลำดับนี้
		q = q.Order("RANDOM()")
	default:
		q = q.Order("cafes.created_at DESC")
	}

	var cafes []entity.Cafe
	if err := q.Find(&cafes).Error; err != nil {
		return nil, err
	}

	// facilities กรองใน Go เพราะ JSON containment ต่างกันระหว่าง sqlite/postgres
	if len(f.Facilities) > 0 {
		matched := make([]entity.Cafe, 0, len(cafes))
		for _, cafe := range cafes {
			if hasAllFacilities(cafe.Facilities, f.Facilities) {
				matched = append(matched, cafe)
			}
		}
		cafes = matched
	}
	return cafes, nil
}

func hasAllFacilities(have []string, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Detail คืนร้านแบบเต็ม (รูป รีวิวพร้อมชื่อคนเขียน แคมปัส เมนู)
func (s *CafeService) Detail(id uint) (*entity.Cafe, error) {
	cafe, err := s.Repo.FindDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cafe", ErrNotFound)
		}
		return nil, err
	}
	return cafe, nil
}

// ===== Submission =====

// Submit สร้างร้านสถานะ pending พร้อมผูกแคมปัสและบันทึกรูป
// รูปถูก validate มาก่อนแล้ว อัปโหลด blob นอก transaction แล้วค่อย commit row ทั้งหมดทีเดียว
func (s *CafeService) Submit(ctx context.Context, ownerID uint, in CreateCafeInput, images []*utils.UploadedImage) (*entity.Cafe, error) {
	if in.Name == "" || in.Description == "" || in.Address == "" {
		return nil, fmt.Errorf("%w: name, description and address are required", ErrValidation)
	}
	if !validPriceCategory(in.PriceCategory) {
		return nil, fmt.Errorf("%w: price_category must be cheap, moderate or expensive", ErrValidation)
	}
	if len(in.CampusIDs) == 0 {
		return nil, fmt.Errorf("%w: campus_ids is required", ErrValidation)
	}
	count, err := s.CampusRepo.CountByIDs(in.CampusIDs)
	if err != nil {
		return nil, err
	}
	if count != int64(len(in.CampusIDs)) {
		return nil, fmt.Errorf("%w: unknown campus id", ErrValidation)
	}
	if len(images) < 3 {
		return nil, fmt.Errorf("%w: at least 3 images are required", ErrValidation)
	}

	uploaded := make([]string, 0, len(images))
	for _, img := range images {
		if err := s.Blobs.Put(ctx, img.Key, bytes.NewReader(img.Data), int64(len(img.Data)), img.ContentType); err != nil {
			s.cleanupBlobs(ctx, uploaded)
			return nil, fmt.Errorf("store image: %w", err)
		}
		uploaded = append(uploaded, img.Key)
	}

	cafe := entity.Cafe{
		Name:          in.Name,
		Description:   in.Description,
		Address:       in.Address,
		PriceCategory: in.PriceCategory,
		Facilities:    in.Facilities,
		Status:        entity.StatusPending,
		UserID:        ownerID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cafe).Error; err != nil {
			return err
		}
		var campuses []entity.Campus
		if err := tx.Find(&campuses, in.CampusIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(&cafe).Association("Campuses").Append(&campuses); err != nil {
			return err
		}
		for _, key := range uploaded {
			img := entity.CafeImage{CafeID: cafe.ID, ImagePath: key}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.cleanupBlobs(ctx, uploaded)
		return nil, err
	}

	return s.Detail(cafe.ID)
}

func (s *CafeService) cleanupBlobs(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.Blobs.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("orphan blob cleanup failed")
		}
	}
}

// ===== Moderation =====

// SetStatus เปลี่ยนสถานะร้านตรง ๆ ไม่เช็คสถานะเดิม (permissive ตามพฤติกรรมเดิม)
func (s *CafeService) SetStatus(id uint, status string) (*entity.Cafe, error) {
	if status != entity.StatusApproved && status != entity.StatusRejected && status != entity.StatusHidden {
		return nil, fmt.Errorf("%w: must be approved, rejected or hidden", ErrInvalidStatus)
	}
	cafe, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cafe", ErrNotFound)
		}
		return nil, err
	}
	if err := s.DB.Model(cafe).Update("status", status).Error; err != nil {
		return nil, err
	}
	return cafe, nil
}

// ===== Deletion =====

// Delete ลบร้านพร้อมลูกทั้งหมด (รูป เมนู รีวิว ลิงก์แคมปัส)
// blob ลบแบบ best-effort — พังแค่ log warn ห้าม block การลบ row
func (s *CafeService) Delete(ctx context.Context, id uint) error {
	cafe, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: cafe", ErrNotFound)
		}
		return err
	}

	images, err := s.Repo.ImagesOf(cafe.ID)
	if err != nil {
		return err
	}
	for _, img := range images {
		if err := s.Blobs.Delete(ctx, img.ImagePath); err != nil {
			log.Warn().Err(err).Str("key", img.ImagePath).Uint("cafeId", cafe.ID).
				Msg("blob delete failed, continuing")
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("cafe_id = ?", cafe.ID).Delete(&entity.CafeImage{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("cafe_id = ?", cafe.ID).Delete(&entity.CafeMenuItem{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("cafe_id = ?", cafe.ID).Delete(&entity.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Model(cafe).Association("Campuses").Clear(); err != nil {
			return err
		}
		return tx.Unscoped().Delete(cafe).Error
	})
}

// ===== Menu =====

// AddMenuItem เพิ่มเมนู — เจ้าของร้านหรือ admin เท่านั้น
func (s *CafeService) AddMenuItem(actorID uint, role string, cafeID uint, in MenuItemInput) (*entity.CafeMenuItem, error) {
	cafe, err := s.Repo.FindByID(cafeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cafe", ErrNotFound)
		}
		return nil, err
	}
	if cafe.UserID != actorID && role != "admin" {
		return nil, ErrForbidden
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	item := entity.CafeMenuItem{
		CafeID:   cafe.ID,
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
