// internal/handlers/argus.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cavea-app/cavea-backend/internal/config"
	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/services"
	"github.com/cavea-app/cavea-backend/internal/utils"
)

// ArgusHandler exposes the price-estimation views. Missing data is a
// valid answer everywhere: empty series, nil summary, empty rankings.
type ArgusHandler struct {
	argusService *services.ArgusService
	cfg          config.ArgusConfig
}

func NewArgusHandler(argusService *services.ArgusService, cfg config.ArgusConfig) *ArgusHandler {
	return &ArgusHandler{
		argusService: argusService,
		cfg:          cfg,
	}
}

// GET /bottles/:id/price-series
func (h *ArgusHandler) GetPriceSeries(c *gin.Context) {
	priceRange := models.ParsePriceRange(c.DefaultQuery("range", string(models.Range1Y)))
	bucket := models.ParseBucketSize(c.DefaultQuery("bucket", string(models.BucketMonth)))

	points := h.argusService.PriceSeries(c.Param("id"), priceRange, bucket)

	utils.SuccessResponse(c, gin.H{
		"range":  priceRange,
		"bucket": bucket,
		"points": points,
	})
}

// GET /bottles/:id/summary
func (h *ArgusHandler) GetSummary(c *gin.Context) {
	priceRange := models.ParsePriceRange(c.DefaultQuery("range", string(models.Range1Y)))

	summary := h.argusService.Summarize(c.Param("id"), priceRange)

	utils.SuccessResponse(c, gin.H{
		"summary": summary,
	})
}

// GET /bottles/trending
func (h *ArgusHandler) GetTrending(c *gin.Context) {
	limit := h.cfg.TrendingLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	utils.SuccessResponse(c, gin.H{
		"trending": h.argusService.Trending(limit),
	})
}

// GET /bottles/:id/comparables
func (h *ArgusHandler) GetComparables(c *gin.Context) {
	limit := h.cfg.ComparablesLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	utils.SuccessResponse(c, gin.H{
		"comparables": h.argusService.ComparableSales(c.Param("id"), limit),
	})
}
