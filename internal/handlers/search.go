// internal/handlers/search.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cavea-app/cavea-backend/internal/services"
	"github.com/cavea-app/cavea-backend/internal/utils"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// GET /search/bottles?q=
//
// An empty or whitespace query returns an empty result list, not an
// error; the UI debounces on its side.
func (h *SearchHandler) SearchBottles(c *gin.Context) {
	query := c.Query("q")
	results := h.searchService.SearchBottles(query)

	utils.SuccessResponse(c, gin.H{
		"query":   query,
		"results": results,
	})
}

// GET /search/users?q=
func (h *SearchHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	results := h.searchService.SearchUsers(query)

	utils.SuccessResponse(c, gin.H{
		"query":   query,
		"results": results,
	})
}
