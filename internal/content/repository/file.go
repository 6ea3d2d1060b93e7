package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/saamcabins/cms-backend/internal/content"
)

// FileStore persists the content document as one pretty-printed JSON file.
// The file is read on every call (no in-memory cache) and rewritten whole on
// every mutation. A mutex serializes the read-modify-write cycle so two admin
// requests cannot interleave and lose each other's writes.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(ctx context.Context) (*content.Document, error) {
	doc := f.read()
	return doc, nil
}

func (f *FileStore) Replace(ctx context.Context, doc *content.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(doc)
}

func (f *FileStore) Mutate(ctx context.Context, fn func(doc *content.Document) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc := f.read()
	if err := fn(doc); err != nil {
		return err
	}
	return f.write(doc)
}

// read loads the document from disk. Missing or unparsable files yield the
// empty default shape; corruption never surfaces as an error to callers.
func (f *FileStore) read() *content.Document {
	doc := &content.Document{}
	b, err := os.ReadFile(f.path)
	if err == nil {
		if err := json.Unmarshal(b, doc); err != nil {
			doc = &content.Document{}
		}
	}
	doc.Normalize()
	return doc
}

func (f *FileStore) write(doc *content.Document) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	if err := os.WriteFile(f.path, b, 0o644); err != nil {
		return fmt.Errorf("write content file: %w", err)
	}
	return nil
}
