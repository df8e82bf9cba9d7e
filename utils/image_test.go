package utils

import (
	"bytes"
	"mime/multipart"
	"strings"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func fileHeaderFor(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("images", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["images"][0]
}

func TestReadImagePNG(t *testing.T) {
	fh := fileHeaderFor(t, "cafe.png", pngHeader)

	img, err := ReadImage(fh, "cafes", 2<<20)
	if err != nil {
		t.Fatalf("read image: %v", err)
	}
	if img.ContentType != "image/png" {
		t.Fatalf("content type = %q, want image/png", img.ContentType)
	}
	if !strings.HasPrefix(img.Key, "cafes/") || !strings.HasSuffix(img.Key, ".png") {
		t.Fatalf("key = %q, want cafes/<uuid>.png", img.Key)
	}
	if !bytes.Equal(img.Data, pngHeader) {
		t.Fatal("data does not round trip")
	}
}

func TestReadImageRejectsNonImage(t *testing.T) {
	fh := fileHeaderFor(t, "notes.txt", []byte("bukan gambar"))
	if _, err := ReadImage(fh, "cafes", 2<<20); err == nil {
		t.Fatal("expected error for non-image file")
	}
}

func TestReadImageRejectsOversize(t *testing.T) {
	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...)
	fh := fileHeaderFor(t, "big.png", big)
	if _, err := ReadImage(fh, "cafes", 16); err == nil {
		t.Fatal("expected error for oversize file")
	}
}

func TestReadImageUniqueKeys(t *testing.T) {
	a, err := ReadImage(fileHeaderFor(t, "a.png", pngHeader), "cafes", 2<<20)
	if err != nil {
		t.Fatalf("read a: %v", err)
	}
	b, err := ReadImage(fileHeaderFor(t, "a.png", pngHeader), "cafes", 2<<20)
	if err != nil {
		t.Fatalf("read b: %v", err)
	}
	if a.Key == b.Key {
		t.Fatalf("keys collide: %q", a.Key)
	}
}
