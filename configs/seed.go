package configs

import (
	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/ger123348/NgopiBareng/entity"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Warn().Msg("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Info().Str("email", email).Msg("admin already exists")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Name:     "Admin Ngopi",
		Email:    email,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// Seed แคมปัสเริ่มต้นสองแห่ง
func SeedCampuses() error {
	db := DB()
	names := []string{
		"Universitas Lampung (UNILA)",
		"Institut Teknologi Sumatera (ITERA)",
	}
	for _, name := range names {
		campus := entity.Campus{Name: name, Slug: slug.Make(name)}
		if err := db.Where(entity.Campus{Name: name}).FirstOrCreate(&campus).Error; err != nil {
			return err
		}
	}
	return nil
}
