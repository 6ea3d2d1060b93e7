package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/saamcabins/cms-backend/internal/slides"
	"github.com/saamcabins/cms-backend/internal/slides/repository"
	"github.com/saamcabins/cms-backend/pkg/metrics"
)

// Input carries the editable slide fields. IsActive is a pointer so "not
// sent" can be told apart from "set to false": creates default to active,
// updates keep the stored flag.
type Input struct {
	Image      string `json:"image"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
	IsActive   *bool  `json:"isActive"`
}

// Service defines the slide operations used by the handler layer. Unlike the
// content store, updates here replace the editable fields wholesale (only id
// and order are preserved); the admin slider form always submits every field.
type Service interface {
	List(ctx context.Context) ([]slides.Slide, error)
	Create(ctx context.Context, in Input) (slides.Slide, error)
	Update(ctx context.Context, id string, in Input) (slides.Slide, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, id, direction string) error
}

func New(store repository.Store) Service {
	return &slideService{store: store}
}

type slideService struct {
	store repository.Store
}

func (s *slideService) List(ctx context.Context) ([]slides.Slide, error) {
	metrics.StoreOps.WithLabelValues("slides", "list").Inc()
	return s.store.Load(ctx)
}

func (s *slideService) Create(ctx context.Context, in Input) (slides.Slide, error) {
	metrics.StoreOps.WithLabelValues("slides", "create").Inc()
	var created slides.Slide
	err := s.store.Mutate(ctx, func(list []slides.Slide) ([]slides.Slide, error) {
		created = slides.Slide{
			ID:         uuid.NewString(),
			Image:      in.Image,
			Title:      in.Title,
			Subtitle:   in.Subtitle,
			ButtonText: in.ButtonText,
			ButtonLink: in.ButtonLink,
			Order:      len(list) + 1,
			IsActive:   true,
		}
		if in.IsActive != nil {
			created.IsActive = *in.IsActive
		}
		return append(list, created), nil
	})
	return created, err
}

func (s *slideService) Update(ctx context.Context, id string, in Input) (slides.Slide, error) {
	metrics.StoreOps.WithLabelValues("slides", "update").Inc()
	var updated slides.Slide
	err := s.store.Mutate(ctx, func(list []slides.Slide) ([]slides.Slide, error) {
		for i := range list {
			if list[i].ID != id {
				continue
			}
			list[i].Image = in.Image
			list[i].Title = in.Title
			list[i].Subtitle = in.Subtitle
			list[i].ButtonText = in.ButtonText
			list[i].ButtonLink = in.ButtonLink
			if in.IsActive != nil {
				list[i].IsActive = *in.IsActive
			}
			updated = list[i]
			return list, nil
		}
		return nil, repository.ErrNotFound
	})
	return updated, err
}

// Delete removes the slide and renumbers the survivors so order stays a dense
// 1..N sequence in their existing relative order.
func (s *slideService) Delete(ctx context.Context, id string) error {
	metrics.StoreOps.WithLabelValues("slides", "delete").Inc()
	return s.store.Mutate(ctx, func(list []slides.Slide) ([]slides.Slide, error) {
		out := make([]slides.Slide, 0, len(list))
		for _, sl := range list {
			if sl.ID != id {
				out = append(out, sl)
			}
		}
		if len(out) == len(list) {
			return nil, repository.ErrNotFound
		}
		renumber(out)
		return out, nil
	})
}

// Reorder swaps the slide with its neighbor in the given direction ("up" or
// "down"). Moving the first slide up or the last slide down is a no-op, not
// an error; every path renumbers to keep the order dense.
func (s *slideService) Reorder(ctx context.Context, id, direction string) error {
	metrics.StoreOps.WithLabelValues("slides", "reorder").Inc()
	return s.store.Mutate(ctx, func(list []slides.Slide) ([]slides.Slide, error) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Order < list[j].Order })
		idx := -1
		for i := range list {
			if list[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, repository.ErrNotFound
		}
		switch {
		case direction == "up" && idx > 0:
			list[idx-1], list[idx] = list[idx], list[idx-1]
		case direction == "down" && idx < len(list)-1:
			list[idx], list[idx+1] = list[idx+1], list[idx]
		}
		renumber(list)
		return list, nil
	})
}

func renumber(list []slides.Slide) {
	for i := range list {
		list[i].Order = i + 1
	}
}
