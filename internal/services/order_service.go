package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/franciscosanchezn/pizza-order-api/internal/events"
	"github.com/franciscosanchezn/pizza-order-api/internal/idempotency"
	"github.com/franciscosanchezn/pizza-order-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/franciscosanchezn/pizza-order-api/internal/pricing"
	"github.com/franciscosanchezn/pizza-order-api/internal/stock"
	"github.com/franciscosanchezn/pizza-order-api/internal/tracing"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel adjusts the verbosity of the services logger.
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// PlaceOrderRequest is everything needed to place an order. Prices are never
// part of the request; they are read from the catalog at commit time.
type PlaceOrderRequest struct {
	PizzaID         uint
	ExtraIDs        []uint
	Quantity        int
	CustomerName    string
	DeliveryAddress string
	// IdempotencyKey is optional. Requests repeating a key get the original order back.
	IdempotencyKey string
}

// PriceQuote is the read-only price of a prospective order.
type PriceQuote struct {
	PizzaID    uint            `json:"pizza_id"`
	PizzaName  string          `json:"pizza_name"`
	BasePrice  decimal.Decimal `json:"base_price"`
	Quantity   int             `json:"quantity"`
	ExtraIDs   []uint          `json:"extras_ids"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderService places orders and manages their status.
type OrderService interface {
	// PlaceOrder validates, prices, deducts stock and stores the order as one transaction.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error)
	// CalculatePrice quotes an order without touching stock.
	CalculatePrice(ctx context.Context, pizzaID uint, extraIDs []uint, quantity int) (*PriceQuote, error)
	// GetOrder retrieves an order with its pizza and extras
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	// ListOrders returns orders newest first
	ListOrders(ctx context.Context, limit, offset int) ([]models.Order, error)
	// UpdateStatus stores a new delivery status for an order
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	db          *gorm.DB
	ledger      *stock.Ledger
	idempotency idempotency.Store
	publisher   events.Publisher
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB, ledger *stock.Ledger, store idempotency.Store, publisher events.Publisher) OrderService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &orderService{
		db:          db,
		ledger:      ledger,
		idempotency: store,
		publisher:   publisher,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	ctx, span := tracing.StartSpan(ctx, "OrderService.PlaceOrder")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("order.pizza_id", int64(req.PizzaID)),
		attribute.Int("order.quantity", req.Quantity),
		attribute.Int("order.extras", len(req.ExtraIDs)),
	)

	logger := log.WithFields(logrus.Fields{
		"pizza_id":  req.PizzaID,
		"extra_ids": req.ExtraIDs,
		"quantity":  req.Quantity,
	})

	claimed := false
	if req.IdempotencyKey != "" && s.idempotency != nil {
		existingID, err := s.idempotency.Claim(ctx, req.IdempotencyKey)
		switch {
		case errors.Is(err, idempotency.ErrInFlight):
			return nil, s.rejected(logger, newOrderError(models.ErrDuplicateRequest,
				"an order with this idempotency key is already being placed", nil))
		case err != nil:
			return nil, s.rejected(logger, persistenceFailure(err))
		case existingID != 0:
			logger.WithField("order_id", existingID).Info("Duplicate order request, returning original order")
			return s.GetOrder(ctx, existingID)
		}
		claimed = true
	}

	order, err := s.commit(ctx, req)
	if err != nil {
		if claimed {
			if relErr := s.idempotency.Release(ctx, req.IdempotencyKey); relErr != nil {
				logger.WithError(relErr).Warn("Failed to release idempotency key")
			}
		}
		span.SetStatus(codes.Error, ErrorKind(err))
		return nil, s.rejected(logger, err)
	}

	if claimed {
		if err := s.idempotency.Complete(ctx, req.IdempotencyKey, order.ID); err != nil {
			logger.WithError(err).Warn("Failed to bind idempotency key to order")
		}
	}

	metrics.OrdersPlacedTotal.Inc()
	logger.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"total_price": order.TotalPrice.StringFixed(2),
	}).Info("Order placed")

	if err := s.publisher.PublishOrderPlaced(ctx, events.NewOrderPlacedEvent(order)); err != nil {
		metrics.EventsPublishFailedTotal.Inc()
		logger.WithError(err).Error("Failed to publish order placed event")
	}
	return order, nil
}

// rejected records a failed PlaceOrder and returns err unchanged.
func (s *orderService) rejected(logger *logrus.Entry, err error) error {
	kind := ErrorKind(err)
	if kind == "" {
		kind = models.ErrInternalServer
	}
	metrics.OrdersRejectedTotal.WithLabelValues(kind).Inc()

	entry := logger.WithField("kind", kind)
	if kind == models.ErrPersistenceFailure || kind == models.ErrInternalServer {
		entry.WithError(err).Error("Order placement failed")
	} else {
		entry.Info("Order rejected")
	}
	return err
}

// commit runs validation, pricing, stock reservation and the order insert in a
// single transaction. Any failure rolls every step back, so a rejected order
// leaves no stock change behind. Reservations are taken pizza first, then
// extras in ascending id order, so two orders sharing items always lock them in
// the same order.
func (s *orderService) commit(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	if req.Quantity < 1 {
		return nil, ValidateOrder(models.Pizza{}, nil, req.Quantity)
	}
	extraIDs := normalizeIDs(req.ExtraIDs)

	start := time.Now()
	defer func() {
		metrics.OrderCommitLatency.Observe(time.Since(start).Seconds())
	}()

	var order *models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pizza, extras, err := loadItems(tx, req.PizzaID, extraIDs)
		if err != nil {
			return err
		}
		if err := ValidateOrder(pizza, extras, req.Quantity); err != nil {
			return err
		}

		total, err := pricing.Calculate(pizza.UnitPrice(), extraPrices(extras), req.Quantity)
		if err != nil {
			return err
		}

		ledger := s.ledger.WithTx(tx)
		if err := ledger.Reserve(ctx, stock.Key{Kind: stock.KindPizza, ID: pizza.ID}, req.Quantity); err != nil {
			return stockRejection(err, pizza.Name)
		}
		for _, e := range extras {
			if err := ledger.Reserve(ctx, stock.Key{Kind: stock.KindExtra, ID: e.ID}, req.Quantity); err != nil {
				return stockRejection(err, e.Name)
			}
		}

		order = &models.Order{
			PizzaID:         pizza.ID,
			Extras:          extras,
			Quantity:        req.Quantity,
			TotalPrice:      total,
			Status:          models.OrderStatusPending,
			CustomerName:    req.CustomerName,
			DeliveryAddress: req.DeliveryAddress,
		}
		// Extras are referenced, not upserted; their stock columns belong to the ledger.
		if err := tx.Omit("Pizza", "Extras.*").Create(order).Error; err != nil {
			return persistenceFailure(fmt.Errorf("insert order: %w", err))
		}
		order.Pizza = pizza
		return nil
	})
	if err != nil {
		var oe *OrderError
		if errors.As(err, &oe) {
			return nil, oe
		}
		return nil, persistenceFailure(err)
	}
	return order, nil
}

func (s *orderService) CalculatePrice(ctx context.Context, pizzaID uint, extraIDs []uint, quantity int) (*PriceQuote, error) {
	if quantity < 1 {
		return nil, ValidateOrder(models.Pizza{}, nil, quantity)
	}
	ids := normalizeIDs(extraIDs)

	pizza, extras, err := loadItems(s.db.WithContext(ctx), pizzaID, ids)
	if err != nil {
		return nil, err
	}
	quote, err := pricing.NewQuote(pizza.UnitPrice(), extraPrices(extras), quantity)
	if err != nil {
		return nil, err
	}
	return &PriceQuote{
		PizzaID:    pizza.ID,
		PizzaName:  pizza.Name,
		BasePrice:  quote.BasePrice,
		Quantity:   quote.Quantity,
		ExtraIDs:   ids,
		TotalPrice: quote.Total,
	}, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Pizza").
		Preload("Extras", func(db *gorm.DB) *gorm.DB { return db.Order("extras.id") }).
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newOrderError(models.ErrOrderNotFound, fmt.Sprintf("order %d not found", id),
			map[string]interface{}{"order_id": id})
	}
	if err != nil {
		return nil, persistenceFailure(err)
	}
	return &order, nil
}

func (s *orderService) ListOrders(ctx context.Context, limit, offset int) ([]models.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Pizza").
		Preload("Extras").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, persistenceFailure(err)
	}
	return orders, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, newOrderError(models.ErrInvalidStatus, fmt.Sprintf("unknown order status %q", status),
			map[string]interface{}{"allowed": models.OrderStatuses()})
	}

	var previous models.OrderStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Select("id", "status").First(&order, id).Error; err != nil {
			return err
		}
		previous = order.Status
		return tx.Model(&order).Update("status", status).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newOrderError(models.ErrOrderNotFound, fmt.Sprintf("order %d not found", id),
			map[string]interface{}{"order_id": id})
	}
	if err != nil {
		return nil, persistenceFailure(err)
	}

	metrics.OrderStatusChangesTotal.WithLabelValues(string(status)).Inc()
	log.WithFields(logrus.Fields{"order_id": id, "from": previous, "to": status}).Info("Order status updated")
	if err := s.publisher.PublishOrderStatusChanged(ctx, events.NewOrderStatusChangedEvent(id, previous, status)); err != nil {
		metrics.EventsPublishFailedTotal.Inc()
		log.WithError(err).WithField("order_id", id).Error("Failed to publish status changed event")
	}
	return s.GetOrder(ctx, id)
}

// loadItems reads the pizza and the requested extras, rejecting unknown ids.
// Extras come back sorted by id.
func loadItems(db *gorm.DB, pizzaID uint, extraIDs []uint) (models.Pizza, []models.Extra, error) {
	var pizza models.Pizza
	if err := db.First(&pizza, pizzaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, nil, newOrderError(models.ErrItemNotFound,
				fmt.Sprintf("pizza %d does not exist", pizzaID),
				map[string]interface{}{"kind": "pizza", "item_id": pizzaID})
		}
		return models.Pizza{}, nil, persistenceFailure(err)
	}

	extras := []models.Extra{}
	if len(extraIDs) == 0 {
		return pizza, extras, nil
	}
	if err := db.Where("id IN ?", extraIDs).Order("id").Find(&extras).Error; err != nil {
		return models.Pizza{}, nil, persistenceFailure(err)
	}
	if len(extras) != len(extraIDs) {
		found := make(map[uint]bool, len(extras))
		for _, e := range extras {
			found[e.ID] = true
		}
		var missing []uint
		for _, id := range extraIDs {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		return models.Pizza{}, nil, newOrderError(models.ErrItemNotFound,
			fmt.Sprintf("extras do not exist: %v", missing),
			map[string]interface{}{"kind": "extra", "item_ids": missing})
	}
	return pizza, extras, nil
}

func extraPrices(extras []models.Extra) []decimal.Decimal {
	prices := make([]decimal.Decimal, len(extras))
	for i, e := range extras {
		prices[i] = e.UnitPrice()
	}
	return prices
}

// normalizeIDs drops duplicates and sorts ascending.
func normalizeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
