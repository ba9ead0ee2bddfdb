package domain

// Location is a postcode resolved to coordinates. It is always fully
// resolved: a failed lookup produces an error, never a partial value.
type Location struct {
	Postcode string  `json:"postcode"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// Midpoint is the unweighted centroid of a set of locations. It is derived
// per request and never persisted.
type Midpoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Venue is a place returned by the venue index (or the mock fallback).
// Every venue has a name and resolvable coordinates; entries missing either
// are discarded before they reach a result set, because distance ranking is
// undefined without them.
type Venue struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Rating   float64 `json:"rating"`
	Phone    *string `json:"phone,omitempty"`
	Website  *string `json:"website,omitempty"`

	// DistanceMiles is relative to the midpoint of the request that
	// produced the venue.
	DistanceMiles float64 `json:"distance_miles"`
}

// VenueQuery describes a spatial search against the venue index.
type VenueQuery struct {
	Lat          float64
	Lon          float64
	RadiusMeters int
	Category     string
}

// Venue category constants - the closed set currently supported by the UI.
// Unrecognized categories are passed through to the single-tag query path.
const (
	VenueCategoryPub        = "pub"
	VenueCategoryCafe       = "cafe"
	VenueCategoryRestaurant = "restaurant"
	VenueCategoryBar        = "bar"
	VenueCategoryPark       = "park"
	VenueCategoryMuseum     = "museum"
	VenueCategoryCinema     = "cinema"
	VenueCategoryShopping   = "shopping"
)

// VenueCatalog holds the category configuration for venue search: the
// mapping from UI categories to OSM amenity tags and the name tables used
// by the mock fallback. It is passed into the components that need it
// rather than living as package state, so tests can substitute their own.
type VenueCatalog struct {
	// AmenityTags maps a venue category to the OSM amenity tag queried
	// for it. Categories absent from the map are queried literally.
	AmenityTags map[string]string

	// MockNames maps a venue category to the fixed names synthesized when
	// the venue index is unavailable.
	MockNames map[string][]string
}

// NewDefaultVenueCatalog returns the catalog used in production.
func NewDefaultVenueCatalog() *VenueCatalog {
	return &VenueCatalog{
		AmenityTags: map[string]string{
			VenueCategoryPub:        "pub",
			VenueCategoryCafe:       "cafe",
			VenueCategoryRestaurant: "restaurant",
			VenueCategoryBar:        "bar",
			VenueCategoryPark:       "park",
			VenueCategoryMuseum:     "museum",
			VenueCategoryCinema:     "cinema",
			VenueCategoryShopping:   "shopping_mall",
		},
		MockNames: map[string][]string{
			VenueCategoryPub:        {"The Red Lion", "The Crown", "The Kings Arms", "The White Hart", "The Rose & Crown"},
			VenueCategoryCafe:       {"Central Perk", "The Daily Grind", "Bean There", "Coffee Corner", "Brew & Co"},
			VenueCategoryRestaurant: {"The Ivy", "Bella Italia", "Nandos", "Pizza Express", "Wagamama"},
			VenueCategoryBar:        {"Sky Bar", "The Alchemist", "Be At One", "Revolution", "All Bar One"},
			VenueCategoryPark:       {"Hyde Park", "Regents Park", "Green Park", "St James Park", "Victoria Park"},
			VenueCategoryMuseum:     {"British Museum", "Natural History Museum", "Science Museum", "V&A", "Tate Modern"},
			VenueCategoryCinema:     {"Odeon", "Vue", "Cineworld", "Picturehouse", "Everyman"},
			VenueCategoryShopping:   {"Westfield", "Oxford Street", "Covent Garden", "Camden Market", "Carnaby Street"},
		},
	}
}

// AmenityTag resolves a category to its OSM amenity tag. Unrecognized
// categories pass through unchanged.
func (c *VenueCatalog) AmenityTag(category string) string {
	if tag, ok := c.AmenityTags[category]; ok {
		return tag
	}
	return category
}

// MockNamesFor returns the fallback name table for a category. Unknown
// categories fall back to the pub table so the fallback always produces
// a full result set.
func (c *VenueCatalog) MockNamesFor(category string) []string {
	if names, ok := c.MockNames[category]; ok {
		return names
	}
	return c.MockNames[VenueCategoryPub]
}
