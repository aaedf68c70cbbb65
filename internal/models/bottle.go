// internal/models/bottle.go
package models

// Listing is a raw for-sale record as authored by a seller: free-text
// title, free-text volume, loosely structured specs. It is the input of
// the catalog normalizer and is never served directly.
type Listing struct {
	ID          string       `json:"id"`
	SellerID    string       `json:"seller_id"`
	Title       string       `json:"title"`
	Category    string       `json:"category"`
	Price       float64      `json:"price"`
	Stock       int          `json:"stock"`
	Rarity      string       `json:"rarity,omitempty"`
	Volume      string       `json:"volume"`
	Packaging   string       `json:"packaging,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	Description string       `json:"description,omitempty"`
	Specs       ListingSpecs `json:"specs"`
}

type ListingSpecs struct {
	Producer string `json:"producer,omitempty"`
	Origin   string `json:"origin,omitempty"`
	Region   string `json:"region,omitempty"`
	Vintage  string `json:"vintage,omitempty"`
	ABV      string `json:"abv,omitempty"`
}

// CanonicalBottle is the deduplicated product identity derived from a
// listing, independent of the listing's sale terms. Identity is 1:1 with
// the source listing (id = "bottle-"+listing id); no content-based merge
// of equivalent listings is attempted.
type CanonicalBottle struct {
	ID           string   `json:"id"`
	ListingID    string   `json:"listing_id"`
	Category     string   `json:"category"`
	Producer     string   `json:"producer"`
	Name         string   `json:"name"`
	Vintage      string   `json:"vintage,omitempty"`
	AgeStatement string   `json:"age_statement,omitempty"`
	Region       string   `json:"region,omitempty"`
	Country      string   `json:"country,omitempty"`
	VolumeMl     int      `json:"volume_ml"`
	ABV          *float64 `json:"abv,omitempty"`
	Packaging    string   `json:"packaging,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	ListingPrice float64  `json:"listing_price"`
	Stock        int      `json:"stock"`
	Rarity       string   `json:"rarity,omitempty"`
}

// SearchResult tags a matched bottle with how confident the match is:
// "strict" for exact identity matches, "fuzzy" for substring containment.
type SearchResult struct {
	Bottle     CanonicalBottle `json:"bottle"`
	Confidence MatchConfidence `json:"confidence"`
}

// UserSearchResult mirrors SearchResult for the people search box.
type UserSearchResult struct {
	User       User            `json:"user"`
	Confidence MatchConfidence `json:"confidence"`
}

// TrendingBottle is one entry of the trending ranking. TrendScore is
// unbounded; higher means more trending.
type TrendingBottle struct {
	BottleID   string  `json:"bottle_id"`
	Label      string  `json:"label"`
	Image      string  `json:"image,omitempty"`
	Category   string  `json:"category"`
	TrendScore float64 `json:"trend_score"`
}
