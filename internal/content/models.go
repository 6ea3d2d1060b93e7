package content

// Collection type tags accepted by the content API.
const (
	TypeCabin   = "cabin"
	TypeAmenity = "amenity"
	TypeGallery = "gallery"
)

// Cabin is a catalog entry for a porta cabin product.
type Cabin struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Slug        string   `json:"slug,omitempty" bson:"slug,omitempty"`
	Description string   `json:"description" bson:"description"`
	Price       int      `json:"price" bson:"price"`
	Capacity    int      `json:"capacity" bson:"capacity"`
	Bedrooms    int      `json:"bedrooms" bson:"bedrooms"`
	Bathrooms   int      `json:"bathrooms" bson:"bathrooms"`
	Size        string   `json:"size,omitempty" bson:"size,omitempty"`
	Images      []string `json:"images" bson:"images"`
	Amenities   []string `json:"amenities" bson:"amenities"`
	Featured    bool     `json:"featured" bson:"featured"`
}

// Amenity is a labelled feature shown grouped by category on the site.
type Amenity struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Category    string `json:"category" bson:"category"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
	Image       string `json:"image" bson:"image"`
}

// GalleryImage is a single entry on the gallery page.
type GalleryImage struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Category    string `json:"category" bson:"category"`
	Image       string `json:"image" bson:"image"`
}

// Theme holds the site color palette as CSS color strings.
type Theme struct {
	PrimaryColor   string `json:"primaryColor" bson:"primaryColor"`
	SecondaryColor string `json:"secondaryColor" bson:"secondaryColor"`
	AccentColor    string `json:"accentColor" bson:"accentColor"`
}

// Fonts holds the heading/body font family names loaded by the frontend.
type Fonts struct {
	Heading string `json:"heading" bson:"heading"`
	Body    string `json:"body" bson:"body"`
}

// Contact holds the business contact details shown in the footer.
type Contact struct {
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email" bson:"email"`
	Address string `json:"address" bson:"address"`
}

// Social holds the social profile URLs.
type Social struct {
	Facebook  string `json:"facebook" bson:"facebook"`
	Instagram string `json:"instagram" bson:"instagram"`
	Twitter   string `json:"twitter" bson:"twitter"`
	LinkedIn  string `json:"linkedin" bson:"linkedin"`
}

// SiteSettings is the singleton site-wide configuration record. It has no id;
// the updateSettings action merges partial payloads onto it.
type SiteSettings struct {
	Logo     string   `json:"logo" bson:"logo"`
	SiteName string   `json:"siteName" bson:"siteName"`
	Tagline  string   `json:"tagline" bson:"tagline"`
	Theme    *Theme   `json:"theme,omitempty" bson:"theme,omitempty"`
	Fonts    *Fonts   `json:"fonts,omitempty" bson:"fonts,omitempty"`
	Contact  *Contact `json:"contact,omitempty" bson:"contact,omitempty"`
	Social   *Social  `json:"social,omitempty" bson:"social,omitempty"`
}

// AboutUs is the singleton about-page record.
type AboutUs struct {
	Content string `json:"content" bson:"content"`
	Image   string `json:"image,omitempty" bson:"image,omitempty"`
}

// Document is the full content store as persisted on disk: three collections
// plus the two singleton records.
type Document struct {
	Cabins       []Cabin        `json:"cabins" bson:"cabins"`
	Amenities    []Amenity      `json:"amenities" bson:"amenities"`
	Gallery      []GalleryImage `json:"gallery" bson:"gallery"`
	SiteSettings *SiteSettings  `json:"siteSettings,omitempty" bson:"siteSettings,omitempty"`
	AboutUs      *AboutUs       `json:"aboutUs,omitempty" bson:"aboutUs,omitempty"`
}

// Normalize replaces nil collection slices with empty ones so that readers
// always see arrays, even when the backing file was missing or partial.
func (d *Document) Normalize() {
	if d.Cabins == nil {
		d.Cabins = []Cabin{}
	}
	if d.Amenities == nil {
		d.Amenities = []Amenity{}
	}
	if d.Gallery == nil {
		d.Gallery = []GalleryImage{}
	}
}
