// internal/models/common.go
package models

// Enums

type MatchConfidence string

const (
	MatchStrict MatchConfidence = "strict"
	MatchFuzzy  MatchConfidence = "fuzzy"
)

type PriceRange string

const (
	Range1Y  PriceRange = "1y"
	Range3Y  PriceRange = "3y"
	Range5Y  PriceRange = "5y"
	RangeAll PriceRange = "all"
)

// ParsePriceRange is lenient: anything unrecognized falls back to the
// one-year range rather than returning an error.
func ParsePriceRange(s string) PriceRange {
	switch PriceRange(s) {
	case Range1Y, Range3Y, Range5Y, RangeAll:
		return PriceRange(s)
	default:
		return Range1Y
	}
}

type BucketSize string

const (
	BucketDay   BucketSize = "day"
	BucketWeek  BucketSize = "week"
	BucketMonth BucketSize = "month"
)

func ParseBucketSize(s string) BucketSize {
	switch BucketSize(s) {
	case BucketDay, BucketWeek, BucketMonth:
		return BucketSize(s)
	default:
		return BucketMonth
	}
}

// Catalog categories are free-form listing tags. The constants below are
// the tags used by the seed catalog; accessory tags never become bottles.
const (
	CategoryWhisky    = "whisky"
	CategoryRouge     = "rouge"
	CategoryBlanc     = "blanc"
	CategoryChampagne = "champagne"
	CategoryRhum      = "rhum"
	CategoryCognac    = "cognac"
	CategoryAccessory = "accessoires"
	CategoryGiftBox   = "coffret"
)

type ConversationStatus string

const (
	ConversationActive   ConversationStatus = "active"
	ConversationArchived ConversationStatus = "archived"
)
