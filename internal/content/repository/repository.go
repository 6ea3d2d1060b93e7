package repository

import (
	"context"
	"errors"

	"github.com/saamcabins/cms-backend/internal/content"
)

var (
	ErrNotFound    = errors.New("entry not found")
	ErrUnknownType = errors.New("unknown collection type")
	ErrInvalidData = errors.New("invalid record data")
)

// Store is the persistence boundary for the content document. Every mutation
// goes through Mutate, which owns the read-modify-write critical section for
// its backend. The service layer never touches the underlying file or
// collection directly, so a different datastore can be swapped in without
// changing callers.
type Store interface {
	// Load returns the current document. A missing or unreadable backing
	// store is a valid empty document, never an error.
	Load(ctx context.Context) (*content.Document, error)
	// Replace overwrites the whole document with exactly doc.
	Replace(ctx context.Context, doc *content.Document) error
	// Mutate loads the document, applies fn and persists the result.
	// When fn returns an error nothing is written.
	Mutate(ctx context.Context, fn func(doc *content.Document) error) error
}
