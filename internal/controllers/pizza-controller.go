package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PizzaController handles HTTP requests for the catalog
type PizzaController interface {
	// GetCatalog lists every pizza and extra with its availability
	GetCatalog(c *gin.Context)
	// GetAllPizzas retrieves available pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CalculatePrice quotes an order for a pizza
	CalculatePrice(c *gin.Context)
	// GetExtras retrieves available extras
	GetExtras(c *gin.Context)
	// GetIngredients retrieves all ingredients
	GetIngredients(c *gin.Context)
}

type controller struct {
	catalog services.CatalogService
	orders  services.OrderService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(catalog services.CatalogService, orders services.OrderService) PizzaController {
	return &controller{catalog: catalog, orders: orders}
}

// CalculatePriceRequest is the body of a price quote.
type CalculatePriceRequest struct {
	Extras   []uint `json:"extras"`
	Quantity *int   `json:"quantity"`
}

// PriceQuoteResponse is a price quote with money rendered to two decimals.
type PriceQuoteResponse struct {
	PizzaID    uint   `json:"pizza_id"`
	PizzaName  string `json:"pizza_name"`
	BasePrice  string `json:"base_price"`
	Quantity   int    `json:"quantity"`
	Extras     []uint `json:"extras_ids"`
	TotalPrice string `json:"total_price"`
}

// GetCatalog godoc
// @Summary Get the catalog
// @Description List every pizza and extra with its price and current availability
// @Tags catalog
// @Produce json
// @Success 200 {array} models.CatalogEntry
// @Failure 503 {object} models.APIError
// @Router /api/v1/catalog [get]
func (c *controller) GetCatalog(ctx *gin.Context) {
	entries, err := c.catalog.GetCatalog(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// GetAllPizzas godoc
// @Summary Get available pizzas
// @Description Get pizzas currently in stock, optionally filtered by exact name or searched by name and description
// @Tags pizzas
// @Produce json
// @Param name query string false "Filter by exact pizza name"
// @Param search query string false "Case-insensitive search on name or description"
// @Success 200 {array} models.Pizza
// @Failure 503 {object} models.APIError
// @Router /api/v1/pizzas [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	filter := services.PizzaFilter{
		Name:   ctx.Query("name"),
		Search: ctx.Query("search"),
	}

	pizzas, err := c.catalog.ListPizzas(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with its ingredients and the extras currently available
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} services.PizzaDetail
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/pizzas/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	pizza, err := c.catalog.GetPizzaByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// CalculatePrice godoc
// @Summary Quote an order
// @Description Compute the total for a pizza, extras and quantity without reserving stock
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param quote body CalculatePriceRequest true "Extras and quantity (defaults to 1)"
// @Success 200 {object} PriceQuoteResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/pizzas/{id}/calculate-price [post]
func (c *controller) CalculatePrice(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req CalculatePriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(ctx, "Invalid request body")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	quote, err := c.orders.CalculatePrice(ctx.Request.Context(), id, req.Extras, quantity)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, PriceQuoteResponse{
		PizzaID:    quote.PizzaID,
		PizzaName:  quote.PizzaName,
		BasePrice:  money(quote.BasePrice),
		Quantity:   quote.Quantity,
		Extras:     quote.ExtraIDs,
		TotalPrice: money(quote.TotalPrice),
	})
}

// GetExtras godoc
// @Summary Get available extras
// @Tags extras
// @Produce json
// @Success 200 {array} models.Extra
// @Failure 503 {object} models.APIError
// @Router /api/v1/extras [get]
func (c *controller) GetExtras(ctx *gin.Context) {
	extras, err := c.catalog.ListExtras(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, extras)
}

// GetIngredients godoc
// @Summary Get ingredients
// @Tags ingredients
// @Produce json
// @Success 200 {array} models.Ingredient
// @Failure 503 {object} models.APIError
// @Router /api/v1/ingredients [get]
func (c *controller) GetIngredients(ctx *gin.Context) {
	ingredients, err := c.catalog.ListIngredients(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ingredients)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
