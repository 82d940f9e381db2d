package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/franciscosanchezn/pizza-order-api/internal/stock"
	"github.com/gin-gonic/gin"
)

// StockController exposes the stock admin operations.
type StockController interface {
	Restock(c *gin.Context)
	SetAvailability(c *gin.Context)
}

type stockController struct {
	catalog services.CatalogService
}

func NewStockController(catalog services.CatalogService) StockController {
	return &stockController{catalog: catalog}
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type AvailabilityRequest struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

func stockKey(c *gin.Context) (stock.Key, bool) {
	kind, err := stock.ParseKind(c.Param("kind"))
	if err != nil {
		badRequest(c, "kind must be pizza or extra")
		return stock.Key{}, false
	}
	id, ok := parseID(c, "id")
	if !ok {
		return stock.Key{}, false
	}
	return stock.Key{Kind: kind, ID: id}, true
}

// Restock godoc
// @Summary Restock an item
// @Tags stock
// @Accept json
// @Produce json
// @Param kind path string true "pizza or extra"
// @Param id path int true "Item ID"
// @Param restock body RestockRequest true "Units to add"
// @Success 200 {object} stock.Level
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/admin/stock/{kind}/{id}/restock [post]
func (sc *stockController) Restock(c *gin.Context) {
	key, ok := stockKey(c)
	if !ok {
		return
	}
	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	level, err := sc.catalog.Restock(c.Request.Context(), key, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, level)
}

// SetAvailability godoc
// @Summary Withdraw an item from sale or return it
// @Description A disabled item stays unavailable regardless of stock. Re-enabling makes it available again only if it has stock.
// @Tags stock
// @Accept json
// @Produce json
// @Param kind path string true "pizza or extra"
// @Param id path int true "Item ID"
// @Param availability body AvailabilityRequest true "Disabled flag"
// @Success 200 {object} stock.Level
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/admin/stock/{kind}/{id}/availability [put]
func (sc *stockController) SetAvailability(c *gin.Context) {
	key, ok := stockKey(c)
	if !ok {
		return
	}
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	level, err := sc.catalog.SetDisabled(c.Request.Context(), key, *req.Disabled)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, level)
}
