// internal/handlers/bottle.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/services"
	"github.com/cavea-app/cavea-backend/internal/store"
	"github.com/cavea-app/cavea-backend/internal/utils"
)

type BottleHandler struct {
	catalogService *services.CatalogService
	argusService   *services.ArgusService
}

func NewBottleHandler(catalogService *services.CatalogService, argusService *services.ArgusService) *BottleHandler {
	return &BottleHandler{
		catalogService: catalogService,
		argusService:   argusService,
	}
}

// GET /bottles
func (h *BottleHandler) GetBottles(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	bottles := h.catalogService.List(params.Category)
	start, end := utils.PageBounds(len(bottles), params)

	result := utils.CreatePaginationResult(bottles[start:end], int64(len(bottles)), params)
	utils.PaginatedResponse(c, result)
}

// GET /bottles/:id
func (h *BottleHandler) GetBottle(c *gin.Context) {
	bottle, err := h.catalogService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "bottle")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"bottle": bottle,
	})
}

// GET /bottles/:id/detail
//
// Bundles the product page payload: the bottle plus its price series,
// summary and comparable sales, fetched concurrently.
func (h *BottleHandler) GetBottleDetail(c *gin.Context) {
	priceRange := models.ParsePriceRange(c.DefaultQuery("range", string(models.Range1Y)))
	bucket := models.ParseBucketSize(c.DefaultQuery("bucket", string(models.BucketMonth)))

	detail, err := h.argusService.BottleDetail(c.Request.Context(), c.Param("id"), priceRange, bucket)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "bottle")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"detail": detail,
	})
}

// GET /categories
func (h *BottleHandler) GetCategories(c *gin.Context) {
	categories := []map[string]interface{}{
		{"id": models.CategoryWhisky, "name": "Whisky", "icon": "glass"},
		{"id": models.CategoryRouge, "name": "Vin rouge", "icon": "wine"},
		{"id": models.CategoryBlanc, "name": "Vin blanc", "icon": "wine"},
		{"id": models.CategoryChampagne, "name": "Champagne", "icon": "sparkles"},
		{"id": models.CategoryRhum, "name": "Rhum", "icon": "glass"},
		{"id": models.CategoryCognac, "name": "Cognac", "icon": "glass"},
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}
