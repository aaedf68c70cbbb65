// internal/services/catalog_service.go
package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/store"
)

// DefaultVolumeMl is the fail-open volume applied when a listing's
// free-text volume cannot be parsed. No error is signaled.
const DefaultVolumeMl = 700

// accessoryCategories lists listing categories that never become
// canonical bottles (glassware, gift boxes, cellar accessories).
var accessoryCategories = map[string]struct{}{
	models.CategoryAccessory: {},
	models.CategoryGiftBox:   {},
}

var (
	volumeRe        = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(cl|ml|l)\b`)
	numberRe        = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	ageStatementRe  = regexp.MustCompile(`(?i)(\d+)\s*ans?\b`)
)

// knownCountries maps origin substrings to a fixed set of countries; the
// checks run in order and the first hit wins. Anything unmatched defaults
// to France, the marketplace's home market.
var knownCountries = []struct {
	substring string
	country   string
}{
	{"écosse", "Écosse"},
	{"ecosse", "Écosse"},
	{"scotland", "Écosse"},
	{"japon", "Japon"},
	{"japan", "Japon"},
	{"irlande", "Irlande"},
	{"ireland", "Irlande"},
	{"états-unis", "États-Unis"},
	{"etats-unis", "États-Unis"},
	{"usa", "États-Unis"},
	{"kentucky", "États-Unis"},
	{"italie", "Italie"},
	{"espagne", "Espagne"},
	{"portugal", "Portugal"},
	{"cuba", "Cuba"},
	{"jamaïque", "Jamaïque"},
	{"jamaique", "Jamaïque"},
	{"martinique", "Martinique"},
	{"guadeloupe", "Guadeloupe"},
}

const defaultCountry = "France"

// CatalogService turns raw listings into the canonical bottle catalog.
// Every parse failure degrades to a default or an absent value; the
// normalizer never returns an error.
type CatalogService struct {
	bottles *store.BottleStore
}

func NewCatalogService(bottles *store.BottleStore) *CatalogService {
	return &CatalogService{bottles: bottles}
}

// Normalize maps listings to canonical bottles, preserving listing order
// and skipping accessory categories. It is a pure function of its input.
func (s *CatalogService) Normalize(listings []models.Listing) []models.CanonicalBottle {
	out := make([]models.CanonicalBottle, 0, len(listings))
	for _, l := range listings {
		if _, skip := accessoryCategories[strings.ToLower(l.Category)]; skip {
			continue
		}
		out = append(out, normalizeListing(l))
	}
	return out
}

// Reload replaces the catalog with the normalized form of the listings.
func (s *CatalogService) Reload(listings []models.Listing) []models.CanonicalBottle {
	bottles := s.Normalize(listings)
	s.bottles.Load(bottles)
	return bottles
}

func (s *CatalogService) Get(id string) (models.CanonicalBottle, error) {
	return s.bottles.Get(id)
}

func (s *CatalogService) List(category string) []models.CanonicalBottle {
	if category != "" {
		return s.bottles.ListByCategory(category)
	}
	return s.bottles.List()
}

func normalizeListing(l models.Listing) models.CanonicalBottle {
	producer := l.Specs.Producer
	if producer == "" {
		producer = firstTitleWord(l.Title)
	}
	return models.CanonicalBottle{
		ID:           "bottle-" + l.ID,
		ListingID:    l.ID,
		Category:     l.Category,
		Producer:     producer,
		Name:         stripParenthetical(l.Title),
		Vintage:      l.Specs.Vintage,
		AgeStatement: extractAgeStatement(l.Title),
		Region:       l.Specs.Region,
		Country:      inferCountry(l.Specs.Origin),
		VolumeMl:     VolumeToMl(l.Volume),
		ABV:          parseABV(l.Specs.ABV),
		Packaging:    l.Packaging,
		ImageURL:     l.ImageURL,
		ListingPrice: l.Price,
		Stock:        l.Stock,
		Rarity:       l.Rarity,
	}
}

// VolumeToMl parses a free-text volume like "70cl", "700 ml" or "1L" into
// milliliters. Unparseable input falls open to DefaultVolumeMl.
func VolumeToMl(volume string) int {
	m := volumeRe.FindStringSubmatch(volume)
	if m == nil {
		return DefaultVolumeMl
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return DefaultVolumeMl
	}
	switch strings.ToLower(m[2]) {
	case "l":
		return int(math.Round(value * 1000))
	case "cl":
		return int(math.Round(value * 10))
	default:
		return int(math.Round(value))
	}
}

// parseABV extracts the first number of the free-text ABV ("40%", "43,2")
// or nil when absent.
func parseABV(abv string) *float64 {
	m := numberRe.FindString(abv)
	if m == "" {
		return nil
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &value
}

func inferCountry(origin string) string {
	lowered := strings.ToLower(origin)
	for _, kc := range knownCountries {
		if strings.Contains(lowered, kc.substring) {
			return kc.country
		}
	}
	return defaultCountry
}

// stripParenthetical removes a trailing "(...)" suffix, typically the
// vintage repeated in the listing title.
func stripParenthetical(title string) string {
	return parentheticalRe.ReplaceAllString(title, "")
}

// extractAgeStatement finds the first "<n> an(s)" mention in the title.
func extractAgeStatement(title string) string {
	m := ageStatementRe.FindStringSubmatch(title)
	if m == nil {
		return ""
	}
	return m[1] + " ans"
}

func firstTitleWord(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
