package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusBaking    OrderStatus = "baking"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusBaking,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// OrderStatuses returns every known status in lifecycle order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range orderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is a committed purchase of one pizza, at a quantity, with optional extras.
// TotalPrice is computed server-side at commit time and never taken from the client.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	PizzaID         uint            `gorm:"not null;index" json:"pizza_id"`
	Pizza           Pizza           `json:"pizza"`
	Extras          []Extra         `gorm:"many2many:order_extras" json:"extras"`
	Quantity        int             `gorm:"not null;check:quantity >= 1" json:"quantity"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status          OrderStatus     `gorm:"size:20;not null;default:pending;index" json:"status"`
	CustomerName    string          `gorm:"size:100;not null" json:"customer_name"`
	DeliveryAddress string          `gorm:"type:text;not null" json:"delivery_address"`
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ExtraIDs returns the ids of the extras attached to the order.
func (o Order) ExtraIDs() []uint {
	ids := make([]uint, 0, len(o.Extras))
	for _, e := range o.Extras {
		ids = append(ids, e.ID)
	}
	return ids
}
