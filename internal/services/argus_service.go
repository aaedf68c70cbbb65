// internal/services/argus_service.go
package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/store"
)

// Confidence scoring weights shared by the series and summary estimators.
// The recency term is a flat constant: recency only influences the
// trending ranking, not the confidence score.
const (
	maxCountScore     = 50
	recencyScore      = 30
	maxDispersion     = 20
	trendTotalWeight  = 10
	trendRecentDays   = 90
	trendRecentWeight = 20
	trendRecencyCap   = 30
)

// allRangeFloor bounds the "all" range; no sale in the system predates it.
var allRangeFloor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ArgusService computes the price-estimation views: bucketed price
// series, point-in-time summaries, trending rankings and comparable
// sales. Every operation is a pure function of the stores plus the
// injected clock; "no data" is expressed as empty slices or nil, never as
// an error.
type ArgusService struct {
	bottles *store.BottleStore
	sales   *store.SaleStore
	now     func() time.Time
}

func NewArgusService(bottles *store.BottleStore, sales *store.SaleStore) *ArgusService {
	return &ArgusService{bottles: bottles, sales: sales, now: time.Now}
}

// PriceSeries buckets the bottle's sale history by day, pseudo-week or
// month over the selected range and aggregates each bucket. Points come
// back sorted ascending by date; no sales in range yields an empty slice.
func (s *ArgusService) PriceSeries(bottleID string, priceRange models.PriceRange, bucket models.BucketSize) []models.PriceSeriesPoint {
	return PriceSeries(s.sales.ForBottle(bottleID), priceRange, bucket, s.now())
}

// Summarize computes the bottle's current estimate and window deltas, or
// nil when the bottle has no sales at all.
func (s *ArgusService) Summarize(bottleID string, priceRange models.PriceRange) *models.BottleSummary {
	return Summarize(s.sales.ForBottle(bottleID), priceRange, s.now())
}

// Trending ranks the catalog by sale activity, most trending first.
func (s *ArgusService) Trending(limit int) []models.TrendingBottle {
	return Trending(s.sales.All(), s.bottles.List(), limit, s.now())
}

// ComparableSales lists recent sales matching the bottle's nominal volume
// and single-unit lots, newest first, truncated to limit.
func (s *ArgusService) ComparableSales(bottleID string, limit int) []models.SaleRecord {
	bottle, err := s.bottles.Get(bottleID)
	if err != nil {
		return []models.SaleRecord{}
	}
	return ComparableSales(s.sales.ForBottle(bottleID), bottle, limit)
}

// BottleDetail fetches everything the product page shows. The parts are
// independent, so they are fetched concurrently the way the original
// client fanned out its requests.
func (s *ArgusService) BottleDetail(ctx context.Context, bottleID string, priceRange models.PriceRange, bucket models.BucketSize) (*models.BottleDetail, error) {
	bottle, err := s.bottles.Get(bottleID)
	if err != nil {
		return nil, err
	}

	detail := &models.BottleDetail{Bottle: bottle}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		detail.Series = s.PriceSeries(bottleID, priceRange, bucket)
		return nil
	})
	g.Go(func() error {
		detail.Summary = s.Summarize(bottleID, priceRange)
		return nil
	})
	g.Go(func() error {
		detail.Comparables = s.ComparableSales(bottleID, 10)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

// PriceSeries is the pure form of ArgusService.PriceSeries, computed
// relative to the supplied "now".
func PriceSeries(sales []models.SaleRecord, priceRange models.PriceRange, bucket models.BucketSize, now time.Time) []models.PriceSeriesPoint {
	cutoff := rangeCutoff(priceRange, now)
	grouped := make(map[string][]float64)
	for _, sale := range sales {
		if sale.SoldAt.Before(cutoff) {
			continue
		}
		key := bucketKey(sale.SoldAt, bucket)
		grouped[key] = append(grouped[key], sale.PriceAmount)
	}
	if len(grouped) == 0 {
		return []models.PriceSeriesPoint{}
	}

	points := make([]models.PriceSeriesPoint, 0, len(grouped))
	for key, prices := range grouped {
		points = append(points, aggregateBucket(bucketDate(key, bucket), prices))
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// Summarize is the pure form of ArgusService.Summarize.
//
// Window naming follows the shipped behavior, not the labels: the "1m"
// comparison window spans six months ago up to one month ago, and both
// the 6m and 1y deltas compare against the six-to-twelve-months-ago
// window. Changing this requires a product decision; see DESIGN.md.
func Summarize(sales []models.SaleRecord, priceRange models.PriceRange, now time.Time) *models.BottleSummary {
	if len(sales) == 0 {
		return nil
	}

	oneMonthAgo := now.AddDate(0, -1, 0)
	sixMonthsAgo := now.AddDate(0, -6, 0)
	oneYearAgo := now.AddDate(-1, 0, 0)

	var recent, mid, old []float64
	all := make([]float64, 0, len(sales))
	for _, sale := range sales {
		all = append(all, sale.PriceAmount)
		d := sale.SoldAt
		if !d.Before(oneYearAgo) {
			recent = append(recent, sale.PriceAmount)
		}
		if !d.After(sixMonthsAgo) && d.After(oneYearAgo) {
			old = append(old, sale.PriceAmount)
		}
		if !d.After(oneMonthAgo) && d.After(sixMonthsAgo) {
			mid = append(mid, sale.PriceAmount)
		}
	}

	estimate := upperMedian(recent)
	if len(recent) == 0 {
		// Only stale history: fall back to the full sample rather than
		// returning an undefined estimate.
		estimate = upperMedian(all)
	}

	countScore := len(recent) * 10
	if countScore > maxCountScore {
		countScore = maxCountScore
	}
	confidence := countScore + recencyScore
	if confidence > 100 {
		confidence = 100
	}

	return &models.BottleSummary{
		CurrentEstimate: estimate,
		Delta1M:         deltaPercent(estimate, mid),
		Delta6M:         deltaPercent(estimate, old),
		Delta1Y:         deltaPercent(estimate, old),
		TradesCount:     len(recent),
		Confidence:      confidence,
		Currency:        "EUR",
	}
}

// Trending is the pure form of ArgusService.Trending. Bottles without
// sales never appear; ties keep first-sale-seen order.
func Trending(sales []models.SaleRecord, bottles []models.CanonicalBottle, limit int, now time.Time) []models.TrendingBottle {
	type activity struct {
		total    int
		recent   int
		lastSale time.Time
	}

	recentCutoff := now.AddDate(0, 0, -trendRecentDays)
	byBottle := make(map[string]*activity)
	var order []string
	for _, sale := range sales {
		a, ok := byBottle[sale.BottleID]
		if !ok {
			a = &activity{}
			byBottle[sale.BottleID] = a
			order = append(order, sale.BottleID)
		}
		a.total++
		if !sale.SoldAt.Before(recentCutoff) {
			a.recent++
		}
		if sale.SoldAt.After(a.lastSale) {
			a.lastSale = sale.SoldAt
		}
	}

	bottleByID := make(map[string]models.CanonicalBottle, len(bottles))
	for _, b := range bottles {
		bottleByID[b.ID] = b
	}

	ranked := make([]models.TrendingBottle, 0, len(order))
	for _, id := range order {
		bottle, ok := bottleByID[id]
		if !ok {
			continue
		}
		a := byBottle[id]
		daysSinceLast := int(now.Sub(a.lastSale).Hours() / 24)
		recencyBonus := trendRecencyCap - daysSinceLast
		if recencyBonus < 0 {
			recencyBonus = 0
		}
		score := float64(a.total*trendTotalWeight + a.recent*trendRecentWeight + recencyBonus)
		ranked = append(ranked, models.TrendingBottle{
			BottleID:   id,
			Label:      trendingLabel(bottle),
			Image:      bottle.ImageURL,
			Category:   bottle.Category,
			TrendScore: score,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TrendScore > ranked[j].TrendScore })
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ComparableSales is the pure form of ArgusService.ComparableSales.
func ComparableSales(sales []models.SaleRecord, bottle models.CanonicalBottle, limit int) []models.SaleRecord {
	comparables := make([]models.SaleRecord, 0, len(sales))
	for _, sale := range sales {
		if sale.VolumeMl == bottle.VolumeMl && sale.LotSize == 1 {
			comparables = append(comparables, sale)
		}
	}
	sort.SliceStable(comparables, func(i, j int) bool {
		return comparables[i].SoldAt.After(comparables[j].SoldAt)
	})
	if limit > 0 && len(comparables) > limit {
		comparables = comparables[:limit]
	}
	return comparables
}

func rangeCutoff(priceRange models.PriceRange, now time.Time) time.Time {
	switch priceRange {
	case models.Range1Y:
		return now.AddDate(-1, 0, 0)
	case models.Range3Y:
		return now.AddDate(-3, 0, 0)
	case models.Range5Y:
		return now.AddDate(-5, 0, 0)
	default:
		return allRangeFloor
	}
}

// bucketKey builds the grouping key. The week key is day-of-month based
// ("2024-W2" is days 14-20 of any month in 2024), not an ISO calendar
// week; it resets at month boundaries.
func bucketKey(d time.Time, bucket models.BucketSize) string {
	switch bucket {
	case models.BucketDay:
		return d.Format("2006-01-02")
	case models.BucketWeek:
		return fmt.Sprintf("%04d-W%d", d.Year(), d.Day()/7)
	default:
		return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
	}
}

// bucketDate normalizes a bucket key for output: month buckets map to the
// first day of the month, day and week buckets keep the key literally.
func bucketDate(key string, bucket models.BucketSize) string {
	if bucket == models.BucketMonth {
		return key + "-01"
	}
	return key
}

func aggregateBucket(date string, prices []float64) models.PriceSeriesPoint {
	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)

	n := len(sorted)
	median := sorted[n/2]
	p10 := sorted[int(float64(n)*0.1)]
	p90 := sorted[int(float64(n)*0.9)]

	var sum float64
	for _, p := range sorted {
		sum += p
	}

	return models.PriceSeriesPoint{
		Date:        date,
		Median:      median,
		P10:         p10,
		P90:         p90,
		Mean:        sum / float64(n),
		Confidence:  bucketConfidence(n, p10, median, p90),
		TradesCount: n,
	}
}

// bucketConfidence scores 0-100 from sample count, a flat recency term
// and price dispersion (tighter p10..p90 band scores higher).
func bucketConfidence(n int, p10, median, p90 float64) int {
	countScore := float64(n * 10)
	if countScore > maxCountScore {
		countScore = maxCountScore
	}
	dispersion := float64(maxDispersion) - ((p90-p10)/median)*100
	if dispersion < 0 {
		dispersion = 0
	}
	confidence := countScore + recencyScore + dispersion
	if confidence > 100 {
		confidence = 100
	}
	return int(math.Round(confidence))
}

// upperMedian returns the value at index n/2 of the ascending-sorted
// sample: the upper median for even sizes, never an interpolated one.
func upperMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

// deltaPercent is the signed percentage difference between the current
// estimate and the window median, rounded to one decimal, or nil when the
// window is empty.
func deltaPercent(estimate float64, window []float64) *float64 {
	if len(window) == 0 {
		return nil
	}
	windowMedian := upperMedian(window)
	if windowMedian == 0 {
		return nil
	}
	delta := math.Round(((estimate-windowMedian)/windowMedian)*100*10) / 10
	return &delta
}

// trendingLabel avoids "Ardbeg Ardbeg 10 ans" when the producer already
// leads the listing title.
func trendingLabel(b models.CanonicalBottle) string {
	if b.Producer != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(b.Producer)) {
		return b.Producer + " " + b.Name
	}
	return b.Name
}
