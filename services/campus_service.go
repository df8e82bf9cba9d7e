// services/campus_service.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ger123348/NgopiBareng/entity"
	"github.com/ger123348/NgopiBareng/pkg/storage"
	"github.com/ger123348/NgopiBareng/repository"
	"github.com/ger123348/NgopiBareng/utils"
)

type CampusService struct {
	DB    *gorm.DB
	Repo  *repository.CampusRepository
	Blobs storage.ObjectStore
}

func NewCampusService(db *gorm.DB, blobs storage.ObjectStore) *CampusService {
	return &CampusService{DB: db, Repo: repository.NewCampusRepository(db), Blobs: blobs}
}

func (s *CampusService) List() ([]entity.Campus, error) {
	return s.Repo.FindAll()
}

// Create สร้างแคมปัสใหม่ (admin) ชื่อซ้ำไม่ได้ (unique index) รูปมีหรือไม่มีก็ได้
func (s *CampusService) Create(ctx context.Context, name string, image *utils.UploadedImage) (*entity.Campus, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	campus := entity.Campus{Name: name, Slug: slug.Make(name)}

	if image != nil {
		if err := s.Blobs.Put(ctx, image.Key, bytes.NewReader(image.Data), int64(len(image.Data)), image.ContentType); err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		campus.ImagePath = image.Key
	}

	if err := s.DB.Create(&campus).Error; err != nil {
		// insert พังแล้วรูปที่อัปไปแล้วต้องตามลบ ไม่งั้นค้างเป็น orphan
		if image != nil {
			if derr := s.Blobs.Delete(ctx, image.Key); derr != nil {
				log.Warn().Err(derr).Str("key", image.Key).Msg("orphan blob cleanup failed")
			}
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCampusExists
		}
		return nil, err
	}
	return &campus, nil
}
