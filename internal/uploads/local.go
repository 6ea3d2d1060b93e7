package uploads

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"

	"github.com/saamcabins/cms-backend/pkg/logger"
)

const thumbWidth = 480

// LocalStorage writes uploads under <baseDir>/images/<folder>/ and returns
// site-relative URLs ("/images/<folder>/<file>"), the layout the frontend
// serves statically. For jpeg/png payloads it also writes a downscaled
// "thumb_" copy next to the original; thumbnail failures are logged and do
// not fail the upload.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

func (l *LocalStorage) Save(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error) {
	dir := filepath.Join(l.baseDir, "images", folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := l.writeThumbnail(dir, filename, data); err != nil {
		logger.Warnf("uploads: thumbnail for %s skipped: %v", filename, err)
	}
	return "/images/" + folder + "/" + filename, nil
}

func (l *LocalStorage) writeThumbnail(dir, filename string, data []byte) error {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	if format != "jpeg" && format != "png" {
		return fmt.Errorf("unsupported format %q", format)
	}
	m := resize.Resize(thumbWidth, 0, img, resize.Lanczos3)

	out, err := os.Create(filepath.Join(dir, "thumb_"+filename))
	if err != nil {
		return err
	}
	defer out.Close()

	if format == "png" {
		return png.Encode(out, m)
	}
	return jpeg.Encode(out, m, nil)
}
