package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"path"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var allowedImageMimes = []string{"image/webp", "image/jpg", "image/jpeg", "image/png"}

// UploadedImage คือรูปที่ validate แล้ว พร้อมอัปโหลดเข้า blob store
type UploadedImage struct {
	Key         string
	ContentType string
	Data        []byte
}

// ReadImage อ่านไฟล์จาก multipart, เช็คขนาดกับ mime แล้วตั้ง key ใต้ folder ที่ให้มา
func ReadImage(fh *multipart.FileHeader, folder string, maxBytes int64) (*UploadedImage, error) {
	if fh.Size > maxBytes {
		return nil, fmt.Errorf("image %s exceeds %d bytes", fh.Filename, maxBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("image %s exceeds %d bytes", fh.Filename, maxBytes)
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedImageMimes...) {
		return nil, fmt.Errorf("file %s is not an image", fh.Filename)
	}

	key := path.Join(folder, uuid.NewString()+mtype.Extension())
	return &UploadedImage{Key: key, ContentType: mtype.String(), Data: data}, nil
}
