package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/saamcabins/cms-backend/internal/content"
	"github.com/saamcabins/cms-backend/internal/content/repository"
	"github.com/saamcabins/cms-backend/pkg/metrics"
)

// Service defines the content operations used by the handler layer.
type Service interface {
	GetAll(ctx context.Context) (*content.Document, error)
	// Replace overwrites the entire document. Collections absent from doc are
	// dropped — callers must round-trip the full document. The explicit CRUD
	// actions below are the preferred path.
	Replace(ctx context.Context, doc *content.Document) error
	Create(ctx context.Context, typ string, data json.RawMessage) error
	Update(ctx context.Context, typ, id string, data json.RawMessage) error
	Delete(ctx context.Context, typ, id string) error
	UpdateSettings(ctx context.Context, settings json.RawMessage) error
	UpdateAboutUs(ctx context.Context, aboutUs json.RawMessage) error
}

func New(store repository.Store) Service {
	return &contentService{store: store}
}

type contentService struct {
	store repository.Store
}

func (s *contentService) GetAll(ctx context.Context) (*content.Document, error) {
	metrics.StoreOps.WithLabelValues("content", "get").Inc()
	return s.store.Load(ctx)
}

func (s *contentService) Replace(ctx context.Context, doc *content.Document) error {
	metrics.StoreOps.WithLabelValues("content", "replace").Inc()
	return s.store.Replace(ctx, doc)
}

// newID returns a collection-scoped id. The admin UI historically generated
// "<type>-<millis>" ids client-side; those are kept when supplied, but
// server-generated ids use a UUID so rapid sequential creates cannot collide.
func newID(typ string) string {
	return typ + "-" + uuid.NewString()
}

func (s *contentService) Create(ctx context.Context, typ string, data json.RawMessage) error {
	metrics.StoreOps.WithLabelValues("content", "create").Inc()
	return s.store.Mutate(ctx, func(doc *content.Document) error {
		switch typ {
		case content.TypeCabin:
			var rec content.Cabin
			if err := json.Unmarshal(data, &rec); err != nil {
				return fmt.Errorf("%w: cabin: %v", repository.ErrInvalidData, err)
			}
			if rec.ID == "" {
				rec.ID = newID(typ)
			}
			doc.Cabins = append(doc.Cabins, rec)
		case content.TypeAmenity:
			var rec content.Amenity
			if err := json.Unmarshal(data, &rec); err != nil {
				return fmt.Errorf("%w: amenity: %v", repository.ErrInvalidData, err)
			}
			if rec.ID == "" {
				rec.ID = newID(typ)
			}
			doc.Amenities = append(doc.Amenities, rec)
		case content.TypeGallery:
			var rec content.GalleryImage
			if err := json.Unmarshal(data, &rec); err != nil {
				return fmt.Errorf("%w: gallery image: %v", repository.ErrInvalidData, err)
			}
			if rec.ID == "" {
				rec.ID = newID(typ)
			}
			doc.Gallery = append(doc.Gallery, rec)
		default:
			return repository.ErrUnknownType
		}
		return nil
	})
}

// Update shallow-merges data onto the entry with the matching id: fields
// present in data overwrite, absent fields keep their stored value. The id
// itself can never be rewritten by a patch.
func (s *contentService) Update(ctx context.Context, typ, id string, data json.RawMessage) error {
	metrics.StoreOps.WithLabelValues("content", "update").Inc()
	return s.store.Mutate(ctx, func(doc *content.Document) error {
		switch typ {
		case content.TypeCabin:
			for i := range doc.Cabins {
				if doc.Cabins[i].ID != id {
					continue
				}
				rec := doc.Cabins[i]
				if err := json.Unmarshal(data, &rec); err != nil {
					return fmt.Errorf("%w: cabin patch: %v", repository.ErrInvalidData, err)
				}
				rec.ID = id
				doc.Cabins[i] = rec
				return nil
			}
		case content.TypeAmenity:
			for i := range doc.Amenities {
				if doc.Amenities[i].ID != id {
					continue
				}
				rec := doc.Amenities[i]
				if err := json.Unmarshal(data, &rec); err != nil {
					return fmt.Errorf("%w: amenity patch: %v", repository.ErrInvalidData, err)
				}
				rec.ID = id
				doc.Amenities[i] = rec
				return nil
			}
		case content.TypeGallery:
			for i := range doc.Gallery {
				if doc.Gallery[i].ID != id {
					continue
				}
				rec := doc.Gallery[i]
				if err := json.Unmarshal(data, &rec); err != nil {
					return fmt.Errorf("%w: gallery patch: %v", repository.ErrInvalidData, err)
				}
				rec.ID = id
				doc.Gallery[i] = rec
				return nil
			}
		default:
			return repository.ErrUnknownType
		}
		return repository.ErrNotFound
	})
}

// Delete removes the entry with the matching id. Deleting an id that does not
// exist succeeds and leaves the collection unchanged.
func (s *contentService) Delete(ctx context.Context, typ, id string) error {
	metrics.StoreOps.WithLabelValues("content", "delete").Inc()
	return s.store.Mutate(ctx, func(doc *content.Document) error {
		switch typ {
		case content.TypeCabin:
			out := doc.Cabins[:0]
			for _, rec := range doc.Cabins {
				if rec.ID != id {
					out = append(out, rec)
				}
			}
			doc.Cabins = out
		case content.TypeAmenity:
			out := doc.Amenities[:0]
			for _, rec := range doc.Amenities {
				if rec.ID != id {
					out = append(out, rec)
				}
			}
			doc.Amenities = out
		case content.TypeGallery:
			out := doc.Gallery[:0]
			for _, rec := range doc.Gallery {
				if rec.ID != id {
					out = append(out, rec)
				}
			}
			doc.Gallery = out
		default:
			return repository.ErrUnknownType
		}
		return nil
	})
}

// UpdateSettings merges the payload onto the stored singleton settings record.
func (s *contentService) UpdateSettings(ctx context.Context, settings json.RawMessage) error {
	metrics.StoreOps.WithLabelValues("content", "update_settings").Inc()
	return s.store.Mutate(ctx, func(doc *content.Document) error {
		cur := doc.SiteSettings
		if cur == nil {
			cur = &content.SiteSettings{}
		}
		if err := json.Unmarshal(settings, cur); err != nil {
			return fmt.Errorf("%w: settings: %v", repository.ErrInvalidData, err)
		}
		doc.SiteSettings = cur
		return nil
	})
}

func (s *contentService) UpdateAboutUs(ctx context.Context, aboutUs json.RawMessage) error {
	metrics.StoreOps.WithLabelValues("content", "update_about").Inc()
	return s.store.Mutate(ctx, func(doc *content.Document) error {
		cur := doc.AboutUs
		if cur == nil {
			cur = &content.AboutUs{}
		}
		if err := json.Unmarshal(aboutUs, cur); err != nil {
			return fmt.Errorf("%w: aboutUs: %v", repository.ErrInvalidData, err)
		}
		doc.AboutUs = cur
		return nil
	})
}
