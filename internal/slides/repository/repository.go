package repository

import (
	"context"

	"github.com/saamcabins/cms-backend/internal/slides"
)

// Store is the persistence boundary for the slide list. Mutate owns the
// read-modify-write critical section; fn receives the current list and
// returns the list to persist.
type Store interface {
	Load(ctx context.Context) ([]slides.Slide, error)
	Mutate(ctx context.Context, fn func(list []slides.Slide) ([]slides.Slide, error)) error
}
