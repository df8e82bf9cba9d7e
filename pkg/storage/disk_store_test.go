package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDiskStorePutDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new disk store: %v", err)
	}

	data := []byte("blob content")
	if err := store.Put(context.Background(), "cafes/a.png", bytes.NewReader(data), int64(len(data)), "image/png"); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(store.basePath, "cafes", "a.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("content = %q, want %q", got, data)
	}

	if err := store.Delete(context.Background(), "cafes/a.png"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.basePath, "cafes", "a.png")); !os.IsNotExist(err) {
		t.Fatalf("file still present after delete: %v", err)
	}
}

func TestDiskStoreDeleteMissing(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new disk store: %v", err)
	}
	if err := store.Delete(context.Background(), "cafes/nope.png"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestDiskStoreRequiresBasePath(t *testing.T) {
	if _, err := NewDiskStore("  "); err == nil {
		t.Fatal("expected error for blank base path")
	}
}
