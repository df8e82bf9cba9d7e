package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/ger123348/NgopiBareng/entity"
)

var testDBSeq atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         glogger.Default.LogMode(glogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Campus{}, &entity.Cafe{},
		&entity.CafeImage{}, &entity.CafeMenuItem{},
		&entity.Review{},
		&entity.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	user := entity.User{Name: email, Email: email, Password: "x", Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func createCampus(t *testing.T, db *gorm.DB, name string) *entity.Campus {
	t.Helper()
	campus := entity.Campus{Name: name, Slug: name}
	if err := db.Create(&campus).Error; err != nil {
		t.Fatalf("create campus: %v", err)
	}
	return &campus
}

type cafeOpts struct {
	status     string
	price      string
	facilities []string
	rating     float64
	createdAt  time.Time
	campuses   []*entity.Campus
}

func createCafe(t *testing.T, db *gorm.DB, owner *entity.User, name string, opts cafeOpts) *entity.Cafe {
	t.Helper()
	if opts.status == "" {
		opts.status = entity.StatusApproved
	}
	if opts.price == "" {
		opts.price = entity.PriceModerate
	}
	cafe := entity.Cafe{
		Name:          name,
		Description:   "test cafe",
		Address:       "Jalan Test No. 1",
		PriceCategory: opts.price,
		Facilities:    opts.facilities,
		Rating:        opts.rating,
		Status:        opts.status,
		UserID:        owner.ID,
	}
	if !opts.createdAt.IsZero() {
		cafe.CreatedAt = opts.createdAt
	}
	if err := db.Create(&cafe).Error; err != nil {
		t.Fatalf("create cafe: %v", err)
	}
	for _, campus := range opts.campuses {
		if err := db.Model(&cafe).Association("Campuses").Append(campus); err != nil {
			t.Fatalf("attach campus: %v", err)
		}
	}
	return &cafe
}

func cafeRating(t *testing.T, db *gorm.DB, id uint) float64 {
	t.Helper()
	var cafe entity.Cafe
	if err := db.First(&cafe, id).Error; err != nil {
		t.Fatalf("reload cafe: %v", err)
	}
	return cafe.Rating
}

// fakeBlobStore บันทึก put/delete ไว้เช็คใน test
type fakeBlobStore struct {
	puts       []string
	deletes    []string
	failDelete bool
}

func (f *fakeBlobStore) Put(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
	f.puts = append(f.puts, key)
	return nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	if f.failDelete {
		return errors.New("blob store unavailable")
	}
	return nil
}
