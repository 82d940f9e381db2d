// Package stock is the system of record for item quantities and availability.
//
// Every mutation is a single conditional UPDATE that recomputes is_available in
// the same statement, so no caller ever performs a read-modify-write on stock.
package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/pizza-order-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-order-api/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrUnknownKind       = errors.New("unknown stock item kind")
)

// Kind distinguishes the stock-tracked tables.
type Kind string

const (
	KindPizza Kind = "pizza"
	KindExtra Kind = "extra"
)

// ParseKind maps a textual kind onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPizza, KindExtra:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) table() (string, error) {
	switch k {
	case KindPizza:
		return "pizzas", nil
	case KindExtra:
		return "extras", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}

// Key identifies one stock item.
type Key struct {
	Kind Kind
	ID   uint
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%d", k.Kind, k.ID)
}

// StockError describes a failed reservation.
type StockError struct {
	Key       Key
	Requested int
	Available int
	Err       error
}

func (e *StockError) Error() string {
	if errors.Is(e.Err, ErrItemNotFound) {
		return fmt.Sprintf("%s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v (requested %d, available %d)", e.Key, e.Err, e.Requested, e.Available)
}

func (e *StockError) Unwrap() error {
	return e.Err
}

// Level is the current stock state of an item.
type Level struct {
	Key             Key  `json:"-"`
	QuantityInStock int  `json:"quantity_in_stock"`
	IsAvailable     bool `json:"is_available"`
	Disabled        bool `json:"disabled"`
}

type levelRow struct {
	QuantityInStock int
	IsAvailable     bool
	Disabled        bool
}

// Ledger performs atomic stock mutations against the database.
type Ledger struct {
	db *gorm.DB
}

// NewLedger creates a ledger bound to db.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// WithTx returns a ledger whose mutations join the given transaction.
func (l *Ledger) WithTx(tx *gorm.DB) *Ledger {
	return &Ledger{db: tx}
}

// Reserve decrements the item's stock by quantity only if at least quantity
// units are in stock, and clears is_available when the result reaches zero.
// Rows are locked by the UPDATE itself, so concurrent reservations against the
// same item serialize and can never drive stock below zero.
func (l *Ledger) Reserve(ctx context.Context, key Key, quantity int) error {
	ctx, span := tracing.StartSpan(ctx, "stock.Reserve")
	defer span.End()
	span.SetAttributes(
		attribute.String("stock.kind", string(key.Kind)),
		attribute.Int64("stock.id", int64(key.ID)),
		attribute.Int("stock.quantity", quantity),
	)

	if quantity < 1 {
		return ErrInvalidQuantity
	}
	table, err := key.Kind.table()
	if err != nil {
		return err
	}

	res := l.db.WithContext(ctx).Table(table).
		Where("id = ? AND quantity_in_stock >= ?", key.ID, quantity).
		Updates(map[string]interface{}{
			"quantity_in_stock": gorm.Expr("quantity_in_stock - ?", quantity),
			"is_available":      gorm.Expr("(quantity_in_stock - ? > 0 AND disabled = ?)", quantity, false),
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		metrics.StockReservationsFailed.WithLabelValues(string(key.Kind), "error").Inc()
		return fmt.Errorf("reserve %s: %w", key, res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	// Nothing matched: either the row is missing or it holds too little stock.
	level, err := l.Level(ctx, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			metrics.StockReservationsFailed.WithLabelValues(string(key.Kind), "not_found").Inc()
			return &StockError{Key: key, Requested: quantity, Err: ErrItemNotFound}
		}
		return err
	}
	metrics.StockReservationsFailed.WithLabelValues(string(key.Kind), "insufficient_stock").Inc()
	return &StockError{Key: key, Requested: quantity, Available: level.QuantityInStock, Err: ErrInsufficientStock}
}

// Restock adds quantity units to an item and recomputes availability.
func (l *Ledger) Restock(ctx context.Context, key Key, quantity int) (Level, error) {
	if quantity < 1 {
		return Level{}, ErrInvalidQuantity
	}
	table, err := key.Kind.table()
	if err != nil {
		return Level{}, err
	}

	res := l.db.WithContext(ctx).Table(table).
		Where("id = ?", key.ID).
		Updates(map[string]interface{}{
			"quantity_in_stock": gorm.Expr("quantity_in_stock + ?", quantity),
			"is_available":      gorm.Expr("(quantity_in_stock + ? > 0 AND disabled = ?)", quantity, false),
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return Level{}, fmt.Errorf("restock %s: %w", key, res.Error)
	}
	if res.RowsAffected == 0 {
		return Level{}, &StockError{Key: key, Requested: quantity, Err: ErrItemNotFound}
	}
	return l.Level(ctx, key)
}

// SetDisabled withdraws an item from sale, or returns it to sale when stock allows.
func (l *Ledger) SetDisabled(ctx context.Context, key Key, disabled bool) (Level, error) {
	table, err := key.Kind.table()
	if err != nil {
		return Level{}, err
	}

	var available interface{} = false
	if !disabled {
		available = gorm.Expr("(quantity_in_stock > 0)")
	}
	res := l.db.WithContext(ctx).Table(table).
		Where("id = ?", key.ID).
		Updates(map[string]interface{}{
			"disabled":     disabled,
			"is_available": available,
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return Level{}, fmt.Errorf("set disabled %s: %w", key, res.Error)
	}
	if res.RowsAffected == 0 {
		return Level{}, &StockError{Key: key, Err: ErrItemNotFound}
	}
	return l.Level(ctx, key)
}

// Level reads the current stock state of an item.
func (l *Ledger) Level(ctx context.Context, key Key) (Level, error) {
	table, err := key.Kind.table()
	if err != nil {
		return Level{}, err
	}

	var row levelRow
	err = l.db.WithContext(ctx).Table(table).
		Select("quantity_in_stock", "is_available", "disabled").
		Where("id = ?", key.ID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Level{}, fmt.Errorf("%s: %w", key, ErrItemNotFound)
	}
	if err != nil {
		return Level{}, fmt.Errorf("read stock %s: %w", key, err)
	}
	return Level{
		Key:             key,
		QuantityInStock: row.QuantityInStock,
		IsAvailable:     row.IsAvailable,
		Disabled:        row.Disabled,
	}, nil
}
