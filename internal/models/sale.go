// internal/models/sale.go
package models

import "time"

// SaleRecord is one observed transaction for a bottle. In this mockup the
// records are generated at startup; in a real system they would be
// append-only and never mutated.
type SaleRecord struct {
	ID             string    `json:"id"`
	BottleID       string    `json:"bottle_id"`
	SoldAt         time.Time `json:"sold_at"`
	PriceAmount    float64   `json:"price_amount"`
	Currency       string    `json:"currency"`
	ConditionGrade string    `json:"condition_grade,omitempty"`
	VolumeMl       int       `json:"volume_ml"`
	LotSize        int       `json:"lot_size"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
}

// PriceSeriesPoint is one bucketed aggregate of sale prices. Date is the
// bucket key normalized for output: month buckets map to the first day of
// the month, day and pseudo-week buckets keep their key literally. The
// mean is computed alongside the percentiles but is not part of the wire
// output.
type PriceSeriesPoint struct {
	Date        string  `json:"date"`
	Median      float64 `json:"median"`
	P10         float64 `json:"p10"`
	P90         float64 `json:"p90"`
	Mean        float64 `json:"-"`
	Confidence  int     `json:"confidence"`
	TradesCount int     `json:"trades_count"`
}

// BottleSummary is the point-in-time Argus estimate for a bottle. Deltas
// are signed percentages rounded to one decimal; a nil delta means the
// corresponding comparison window had no sales.
type BottleSummary struct {
	CurrentEstimate float64  `json:"current_estimate"`
	Delta1M         *float64 `json:"delta_1m,omitempty"`
	Delta6M         *float64 `json:"delta_6m,omitempty"`
	Delta1Y         *float64 `json:"delta_1y,omitempty"`
	TradesCount     int      `json:"trades_count"`
	Confidence      int      `json:"confidence"`
	Currency        string   `json:"currency"`
}

// BottleDetail bundles everything the product page needs; its parts are
// fetched concurrently and are each valid "no data" states on their own.
type BottleDetail struct {
	Bottle      CanonicalBottle    `json:"bottle"`
	Series      []PriceSeriesPoint `json:"series"`
	Summary     *BottleSummary     `json:"summary,omitempty"`
	Comparables []SaleRecord       `json:"comparables"`
}
