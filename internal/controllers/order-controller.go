package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader lets a client retry PlaceOrder safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// PlaceOrder commits a new order
	PlaceOrder(c *gin.Context)
	// GetOrders lists orders newest first
	GetOrders(c *gin.Context)
	// GetOrderByID retrieves an order by its ID
	GetOrderByID(c *gin.Context)
	// UpdateOrderStatus stores a new delivery status
	UpdateOrderStatus(c *gin.Context)
}

type orderController struct {
	orders        services.OrderService
	commitTimeout time.Duration
}

// NewOrderController creates a new instance of OrderController. A positive
// commitTimeout bounds each PlaceOrder call.
func NewOrderController(orders services.OrderService, commitTimeout time.Duration) OrderController {
	return &orderController{orders: orders, commitTimeout: commitTimeout}
}

// PlaceOrderRequest is the body of an order. Prices are never accepted from the client.
type PlaceOrderRequest struct {
	Pizza           uint   `json:"pizza" binding:"required"`
	Extras          []uint `json:"extras"`
	Quantity        *int   `json:"quantity"`
	CustomerName    string `json:"customer_name" binding:"required,max=100"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
}

// UpdateStatusRequest is the body of a status change.
type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// OrderResponse is an order with money rendered to two decimals.
type OrderResponse struct {
	ID              uint               `json:"id"`
	Pizza           PizzaSummary       `json:"pizza"`
	Extras          []ExtraSummary     `json:"extras"`
	Quantity        int                `json:"quantity"`
	TotalPrice      string             `json:"total_price"`
	Status          models.OrderStatus `json:"status"`
	CustomerName    string             `json:"customer_name"`
	DeliveryAddress string             `json:"delivery_address"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type PizzaSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BasePrice string `json:"base_price"`
}

type ExtraSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

func newOrderResponse(o *models.Order) OrderResponse {
	extras := make([]ExtraSummary, 0, len(o.Extras))
	for _, e := range o.Extras {
		extras = append(extras, ExtraSummary{ID: e.ID, Name: e.Name, Price: money(e.Price)})
	}
	return OrderResponse{
		ID:              o.ID,
		Pizza:           PizzaSummary{ID: o.PizzaID, Name: o.Pizza.Name, BasePrice: money(o.Pizza.BasePrice)},
		Extras:          extras,
		Quantity:        o.Quantity,
		TotalPrice:      money(o.TotalPrice),
		Status:          o.Status,
		CustomerName:    o.CustomerName,
		DeliveryAddress: o.DeliveryAddress,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// PlaceOrder godoc
// @Summary Place an order
// @Description Validate availability, price the order and deduct stock in one transaction
// @Tags orders
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client key for safe retries"
// @Param order body PlaceOrderRequest true "Order (quantity defaults to 1)"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 503 {object} models.APIError
// @Router /api/v1/orders [post]
func (oc *orderController) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid request body",
			map[string]interface{}{"error": err.Error()}))
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	ctx := c.Request.Context()
	if oc.commitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, oc.commitTimeout)
		defer cancel()
	}

	order, err := oc.orders.PlaceOrder(ctx, services.PlaceOrderRequest{
		PizzaID:         req.Pizza,
		ExtraIDs:        req.Extras,
		Quantity:        quantity,
		CustomerName:    req.CustomerName,
		DeliveryAddress: req.DeliveryAddress,
		IdempotencyKey:  c.GetHeader(IdempotencyKeyHeader),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOrderResponse(order))
}

// GetOrders godoc
// @Summary List orders
// @Description List orders, newest first
// @Tags orders
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} OrderResponse
// @Failure 503 {object} models.APIError
// @Router /api/v1/orders [get]
func (oc *orderController) GetOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, err := oc.orders.ListOrders(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, newOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/orders/{id} [get]
func (oc *orderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := oc.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Store a new status. Cancelling an order does not return its stock.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/orders/{id}/status [patch]
func (oc *orderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	order, err := oc.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}
