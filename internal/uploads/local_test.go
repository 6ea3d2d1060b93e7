package uploads

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveWritesFileAndURL(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)

	url, err := s.Save(context.Background(), "cabins", "office.jpg", []byte("not-really-a-jpeg"), "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "/images/cabins/office.jpg", url)

	b, err := os.ReadFile(filepath.Join(dir, "images", "cabins", "office.jpg"))
	require.NoError(t, err)
	require.Equal(t, "not-really-a-jpeg", string(b))
}

func TestLocalStorage_UndecodableDataSkipsThumbnail(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)

	_, err := s.Save(context.Background(), "uploads", "doc.bin", []byte{0x00, 0x01}, "application/octet-stream")
	require.NoError(t, err, "thumbnail failure must not fail the upload")

	_, err = os.Stat(filepath.Join(dir, "images", "uploads", "thumb_doc.bin"))
	require.True(t, os.IsNotExist(err))
}

func TestLocalStorage_WritesPNGThumbnail(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 640, 480))))

	_, err := s.Save(context.Background(), "gallery", "shot.png", buf.Bytes(), "image/png")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "images", "gallery", "thumb_shot.png"))
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, thumbWidth, cfg.Width)
}

func TestUniqueFilename(t *testing.T) {
	got := UniqueFilename("my site photo.jpg")
	require.True(t, strings.HasSuffix(got, "-my-site-photo.jpg"), got)

	prefix := strings.SplitN(got, "-", 2)[0]
	millis, err := strconv.ParseInt(prefix, 10, 64)
	require.NoError(t, err)
	require.Greater(t, millis, int64(0))
}
