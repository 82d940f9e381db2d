package events

import (
	"time"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/google/uuid"
)

const (
	EventTypeOrderPlaced        = "order.placed"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// BaseEvent carries the envelope fields every event shares.
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

func newBase(eventType string) BaseEvent {
	return BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
	}
}

// OrderPlacedEvent is emitted once an order and its stock deduction are committed.
type OrderPlacedEvent struct {
	BaseEvent
	OrderID         uint   `json:"order_id"`
	PizzaID         uint   `json:"pizza_id"`
	ExtraIDs        []uint `json:"extra_ids"`
	Quantity        int    `json:"quantity"`
	TotalPrice      string `json:"total_price"`
	CustomerName    string `json:"customer_name"`
	DeliveryAddress string `json:"delivery_address"`
}

// NewOrderPlacedEvent builds the event for a committed order.
func NewOrderPlacedEvent(order *models.Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseEvent:       newBase(EventTypeOrderPlaced),
		OrderID:         order.ID,
		PizzaID:         order.PizzaID,
		ExtraIDs:        order.ExtraIDs(),
		Quantity:        order.Quantity,
		TotalPrice:      order.TotalPrice.StringFixed(2),
		CustomerName:    order.CustomerName,
		DeliveryAddress: order.DeliveryAddress,
	}
}

// OrderStatusChangedEvent is emitted after an order's status is updated.
type OrderStatusChangedEvent struct {
	BaseEvent
	OrderID uint               `json:"order_id"`
	From    models.OrderStatus `json:"from"`
	To      models.OrderStatus `json:"to"`
}

func NewOrderStatusChangedEvent(orderID uint, from, to models.OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseEvent: newBase(EventTypeOrderStatusChanged),
		OrderID:   orderID,
		From:      from,
		To:        to,
	}
}
