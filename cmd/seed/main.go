// Command seed writes a starter content document and the default slide set to
// the configured store files, so a fresh deployment has something to show
// before the first admin edit. Existing files are left alone unless -force is
// given.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/saamcabins/cms-backend/internal/config"
	"github.com/saamcabins/cms-backend/internal/content"
	contentrepo "github.com/saamcabins/cms-backend/internal/content/repository"
	"github.com/saamcabins/cms-backend/internal/slides"
	sliderepo "github.com/saamcabins/cms-backend/internal/slides/repository"
)

func main() {
	force := flag.Bool("force", false, "overwrite existing store files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	if *force || !fileExists(cfg.Store.ContentFile) {
		store := contentrepo.NewFileStore(cfg.Store.ContentFile)
		if err := store.Replace(ctx, starterContent()); err != nil {
			log.Fatalf("seed content: %v", err)
		}
		log.Printf("wrote %s", cfg.Store.ContentFile)
	} else {
		log.Printf("%s exists, skipping (use -force to overwrite)", cfg.Store.ContentFile)
	}

	if *force || !fileExists(cfg.Store.SlidesFile) {
		store := sliderepo.NewFileStore(cfg.Store.SlidesFile)
		err := store.Mutate(ctx, func([]slides.Slide) ([]slides.Slide, error) {
			return slides.Seed(), nil
		})
		if err != nil {
			log.Fatalf("seed slides: %v", err)
		}
		log.Printf("wrote %s", cfg.Store.SlidesFile)
	} else {
		log.Printf("%s exists, skipping (use -force to overwrite)", cfg.Store.SlidesFile)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func starterContent() *content.Document {
	doc := &content.Document{
		Cabins: []content.Cabin{
			{
				ID:          "cabin-office-6m",
				Name:        "Standard Office Cabin 6m",
				Description: "Insulated single-room office cabin with electrical fit-out.",
				Price:       12500,
				Capacity:    4,
				Bedrooms:    0,
				Bathrooms:   0,
				Size:        "6m x 3m",
				Images:      []string{"/images/cabins/cabin1.jpg"},
				Amenities:   []string{"Air Conditioning", "Electrical Fit-out"},
				Featured:    true,
			},
			{
				ID:          "cabin-security-2m",
				Name:        "Security Guard Cabin 2m",
				Description: "Compact security cabin with panoramic windows.",
				Price:       4800,
				Capacity:    1,
				Size:        "2m x 2m",
				Images:      []string{"/images/cabins/cabin2.jpg"},
				Amenities:   []string{"Air Conditioning"},
			},
		},
		Amenities: []content.Amenity{
			{ID: "amenity-ac", Name: "Air Conditioning", Category: "Comfort", Description: "Split AC unit included", Icon: "❄️"},
			{ID: "amenity-electrical", Name: "Electrical Fit-out", Category: "Basic", Description: "Sockets, lighting and distribution board", Icon: "🔌"},
		},
		Gallery: []content.GalleryImage{
			{ID: "gallery-1", Title: "Office cabin exterior", Category: "Cabins", Image: "/images/cabins/cabin1.jpg"},
		},
		SiteSettings: &content.SiteSettings{
			SiteName: "SAAM Cabins",
			Tagline:  "Premium Porta Cabins in UAE",
			Contact:  &content.Contact{Phone: "+971-0-000-0000", Email: "info@saamcabins.example", Address: "Sharjah, UAE"},
		},
	}
	doc.Normalize()
	return doc
}
