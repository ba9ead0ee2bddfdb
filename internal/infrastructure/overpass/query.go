package overpass

import (
	"fmt"
	"strings"

	"github.com/midway/midway-backend/internal/domain"
)

// parkSelectors are the tag unions queried for the park category. The OSM
// taxonomy splits park-like places across several tag keys, so a single
// amenity=park query under-returns results.
var parkSelectors = [][2]string{
	{"amenity", "park"},
	{"leisure", "park"},
	{"leisure", "garden"},
	{"leisure", "recreation_ground"},
	{"landuse", "recreation_ground"},
}

// elementTypes are the OSM geometry kinds included in every query: points,
// areas and regions.
var elementTypes = []string{"node", "way", "relation"}

// BuildQuery renders the Overpass QL query for a venue search. The park
// category expands to a union over parkSelectors; every other category maps
// through the catalog to one amenity tag (unrecognized categories are
// queried literally).
func BuildQuery(catalog *domain.VenueCatalog, q domain.VenueQuery) string {
	var sb strings.Builder
	sb.WriteString("[out:json][timeout:25];\n(\n")

	if q.Category == domain.VenueCategoryPark {
		for _, sel := range parkSelectors {
			writeSelectors(&sb, sel[0], sel[1], q)
		}
	} else {
		writeSelectors(&sb, "amenity", catalog.AmenityTag(q.Category), q)
	}

	sb.WriteString(");\nout center;\n")
	return sb.String()
}

func writeSelectors(sb *strings.Builder, key, value string, q domain.VenueQuery) {
	for _, elem := range elementTypes {
		fmt.Fprintf(sb, "  %s[%q=%q](around:%d,%f,%f);\n",
			elem, key, value, q.RadiusMeters, q.Lat, q.Lon)
	}
}
