// internal/mockdata/sales.go
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cavea-app/cavea-backend/internal/models"
)

// Sale-history volume per bottle, by availability profile.
const (
	salesPerRareBottle      = 12
	salesPerHighStockBottle = 15
	salesPerBottle          = 8
	highStockThreshold      = 10
)

var conditionGrades = []string{"neuf", "très bon", "bon", "étiquette abîmée"}

// GenerateSales synthesizes a plausible sale history for each bottle:
// prices vary ±15% around the listing price and dates spread over the
// trailing twelve months. The caller owns the *rand.Rand, so a fixed seed
// reproduces the exact same history.
func GenerateSales(r *rand.Rand, bottles []models.CanonicalBottle, now time.Time) []models.SaleRecord {
	var records []models.SaleRecord
	for _, bottle := range bottles {
		count := salesPerBottle
		switch {
		case bottle.Rarity == "rare":
			count = salesPerRareBottle
		case bottle.Stock >= highStockThreshold:
			count = salesPerHighStockBottle
		}

		for i := 0; i < count; i++ {
			soldAt := now.AddDate(0, 0, -r.Intn(365))
			soldAt = time.Date(soldAt.Year(), soldAt.Month(), soldAt.Day(), 0, 0, 0, 0, time.UTC)

			lotSize := 1
			volume := bottle.VolumeMl
			// Roughly one sale in eight is a multi-bottle lot; those are
			// excluded from the comparables view.
			if r.Intn(8) == 0 {
				lotSize = 2 + r.Intn(4)
				volume = bottle.VolumeMl * lotSize
			}

			records = append(records, models.SaleRecord{
				ID:             fmt.Sprintf("sale-%s-%02d", bottle.ListingID, i),
				BottleID:       bottle.ID,
				SoldAt:         soldAt,
				PriceAmount:    priceAround(r, bottle.ListingPrice),
				Currency:       "EUR",
				ConditionGrade: conditionGrades[r.Intn(len(conditionGrades))],
				VolumeMl:       volume,
				LotSize:        lotSize,
				Source:         "simulation",
				CreatedAt:      now,
			})
		}
	}
	return records
}

// priceAround draws uniformly in [0.85, 1.15] times the reference price,
// rounded to whole euros.
func priceAround(r *rand.Rand, reference float64) float64 {
	factor := 0.85 + r.Float64()*0.30
	price := float64(int(reference*factor + 0.5))
	if price < 1 {
		price = 1
	}
	return price
}
