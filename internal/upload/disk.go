package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"portfolio-api/internal/apperr"
)

// Disk writes uploads under PublicDir. Images land in images/ under a
// uuid-suffixed name with a forced .jpg extension; PDFs in pdf/ with the
// same uuid suffix so equal original names never overwrite each other.
type Disk struct {
	PublicDir string
	MaxBytes  int64
}

func NewDisk(publicDir string, maxBytes int64) *Disk {
	return &Disk{PublicDir: publicDir, MaxBytes: maxBytes}
}

func (d *Disk) Store(_ context.Context, fh *multipart.FileHeader, _ []string) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", apperr.BadRequest("No image file received")
	}
	if d.MaxBytes > 0 && fh.Size > d.MaxBytes {
		return "", apperr.BadRequest(fmt.Sprintf("file exceeds the %d byte limit", d.MaxBytes))
	}

	subdir, ext := "images", ".jpg"
	if isPDF(fh) {
		subdir, ext = "pdf", ".pdf"
	}
	dir := filepath.Join(d.PublicDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperr.Upload("could not prepare upload directory", err)
	}

	name := fmt.Sprintf("%s-%s%s", sanitizeName(fh.Filename), uuid.NewString(), ext)

	src, err := fh.Open()
	if err != nil {
		return "", apperr.Upload("could not read uploaded file", err)
	}
	defer src.Close()

	// Write to a temp file first; the final name only exists once complete.
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", apperr.Upload("could not store uploaded file", err)
	}
	limit := io.Reader(src)
	if d.MaxBytes > 0 {
		limit = io.LimitReader(src, d.MaxBytes+1)
	}
	n, err := io.Copy(tmp, limit)
	if err == nil && d.MaxBytes > 0 && n > d.MaxBytes {
		err = fmt.Errorf("file exceeds the %d byte limit", d.MaxBytes)
	}
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", apperr.Upload("could not store uploaded file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", apperr.Upload("could not store uploaded file", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		os.Remove(tmp.Name())
		return "", apperr.Upload("could not store uploaded file", err)
	}

	return path.Join("/public", subdir, name), nil
}
