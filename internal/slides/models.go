package slides

// Slide is one homepage hero-slider entry. Order values form a gapless 1..N
// sequence across the whole store after every mutation.
type Slide struct {
	ID         string `json:"id"`
	Image      string `json:"image"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
	Order      int    `json:"order"`
	IsActive   bool   `json:"isActive"`
}

// Seed returns the built-in slides shown when no slides file exists yet, so
// the homepage is never empty on a fresh install.
func Seed() []Slide {
	return []Slide{
		{
			ID:         "1",
			Image:      "/images/cabins/cabin1.jpg",
			Title:      "Premium Porta Cabins in UAE",
			Subtitle:   "SAAM Cabins - Your Trusted Partner",
			ButtonText: "View Our Cabins",
			ButtonLink: "/cabins",
			Order:      1,
			IsActive:   true,
		},
		{
			ID:         "2",
			Image:      "/images/cabins/cabin2.jpg",
			Title:      "Office & Security Cabins",
			Subtitle:   "Quality Solutions for Every Need",
			ButtonText: "Explore Products",
			ButtonLink: "/cabins",
			Order:      2,
			IsActive:   true,
		},
		{
			ID:         "3",
			Image:      "/images/cabins/cabin3.jpg",
			Title:      "Fast Delivery Across UAE",
			Subtitle:   "Dubai • Sharjah • Abu Dhabi • Ajman",
			ButtonText: "Contact Us",
			ButtonLink: "/contact",
			Order:      3,
			IsActive:   true,
		},
	}
}
