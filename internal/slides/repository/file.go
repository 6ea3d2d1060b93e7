package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/saamcabins/cms-backend/internal/slides"
)

var ErrNotFound = errors.New("slide not found")

// FileStore persists slides as a flat JSON array in its own file, independent
// of the content store. Like the content store it re-reads the file on every
// call and serializes each read-modify-write cycle behind a mutex.
//
// A missing file yields the built-in seed slides, not an empty list: the
// fallback exists so the homepage slider has content on first run, and a
// Create against a fresh install appends after the seeds and persists all of
// them.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(ctx context.Context) ([]slides.Slide, error) {
	return f.read(), nil
}

func (f *FileStore) Mutate(ctx context.Context, fn func(list []slides.Slide) ([]slides.Slide, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	list, err := fn(f.read())
	if err != nil {
		return err
	}
	return f.write(list)
}

func (f *FileStore) read() []slides.Slide {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return slides.Seed()
	}
	var list []slides.Slide
	if err := json.Unmarshal(b, &list); err != nil {
		return slides.Seed()
	}
	if list == nil {
		list = []slides.Slide{}
	}
	return list
}

func (f *FileStore) write(list []slides.Slide) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode slides: %w", err)
	}
	if err := os.WriteFile(f.path, b, 0o644); err != nil {
		return fmt.Errorf("write slides file: %w", err)
	}
	return nil
}
