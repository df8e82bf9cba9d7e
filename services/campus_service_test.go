package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ger123348/NgopiBareng/utils"
)

func TestCreateCampus(t *testing.T) {
	db := setupTestDB(t)
	blobs := &fakeBlobStore{}
	svc := NewCampusService(db, blobs)

	campus, err := svc.Create(context.Background(), "Universitas Lampung", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if campus.Slug != "universitas-lampung" {
		t.Fatalf("slug = %q, want universitas-lampung", campus.Slug)
	}
	if campus.ImagePath != "" {
		t.Fatalf("image path = %q, want empty", campus.ImagePath)
	}
	if len(blobs.puts) != 0 {
		t.Fatalf("blob puts = %d, want 0", len(blobs.puts))
	}

	if _, err := svc.Create(context.Background(), "Universitas Lampung", nil); !errors.Is(err, ErrCampusExists) {
		t.Fatalf("duplicate err = %v, want ErrCampusExists", err)
	}
	if _, err := svc.Create(context.Background(), "", nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty name err = %v, want ErrValidation", err)
	}
}

func TestCreateCampusWithImage(t *testing.T) {
	db := setupTestDB(t)
	blobs := &fakeBlobStore{}
	svc := NewCampusService(db, blobs)

	img := &utils.UploadedImage{
		Key:         "campuses/itera.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 'P', 'N', 'G'},
	}
	campus, err := svc.Create(context.Background(), "ITERA", img)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if campus.ImagePath != "campuses/itera.png" {
		t.Fatalf("image path = %q", campus.ImagePath)
	}
	if len(blobs.puts) != 1 || blobs.puts[0] != "campuses/itera.png" {
		t.Fatalf("blob puts = %v", blobs.puts)
	}
}

func TestCreateCampusDuplicateCleansUpBlob(t *testing.T) {
	db := setupTestDB(t)
	blobs := &fakeBlobStore{}
	svc := NewCampusService(db, blobs)

	if _, err := svc.Create(context.Background(), "ITERA", nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	// ชื่อซ้ำ → insert พังที่ unique index รูปที่อัปไปแล้วต้องถูกตามลบ
	img := &utils.UploadedImage{
		Key:         "campuses/itera-dup.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 'P', 'N', 'G'},
	}
	if _, err := svc.Create(context.Background(), "ITERA", img); !errors.Is(err, ErrCampusExists) {
		t.Fatalf("duplicate err = %v, want ErrCampusExists", err)
	}
	if len(blobs.puts) != 1 || blobs.puts[0] != "campuses/itera-dup.png" {
		t.Fatalf("blob puts = %v", blobs.puts)
	}
	if len(blobs.deletes) != 1 || blobs.deletes[0] != "campuses/itera-dup.png" {
		t.Fatalf("blob deletes = %v, want the orphan removed", blobs.deletes)
	}
}

func TestListCampuses(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCampusService(db, &fakeBlobStore{})

	createCampus(t, db, "UNILA")
	createCampus(t, db, "ITERA")

	campuses, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(campuses) != 2 {
		t.Fatalf("got %d campuses, want 2", len(campuses))
	}
}
