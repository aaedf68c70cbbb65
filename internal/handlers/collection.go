// internal/handlers/collection.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/cavea-app/cavea-backend/internal/i18n"
	"github.com/cavea-app/cavea-backend/internal/services"
	"github.com/cavea-app/cavea-backend/internal/store"
	"github.com/cavea-app/cavea-backend/internal/utils"
)

type CollectionHandler struct {
	collectionService *services.CollectionService
}

func NewCollectionHandler(collectionService *services.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// GET /me/favorites
func (h *CollectionHandler) GetFavorites(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"favorites": h.collectionService.Favorites(userID),
	})
}

// POST /me/favorites/:bottleId
func (h *CollectionHandler) AddFavorite(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	added, err := h.collectionService.AddFavorite(userID, c.Param("bottleId"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "bottle")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFavoriteAdded),
		"added":   added,
	})
}

// DELETE /me/favorites/:bottleId
func (h *CollectionHandler) RemoveFavorite(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if removed := h.collectionService.RemoveFavorite(userID, c.Param("bottleId")); !removed {
		utils.NotFoundResponse(c, "favorite")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFavoriteRemoved),
	})
}

// GET /me/cart
func (h *CollectionHandler) GetCart(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": h.collectionService.Cart(userID),
	})
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=99"`
}

// PUT /me/cart/:bottleId
func (h *CollectionHandler) UpdateCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.collectionService.SetCartQuantity(userID, c.Param("bottleId"), req.Quantity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "bottle")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartUpdated),
		"cart":    h.collectionService.Cart(userID),
	})
}
