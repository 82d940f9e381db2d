// Package pricing computes order totals in fixed-point decimal.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuantity is returned when the quantity is lower than one.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Calculate returns (base + sum(extras)) * quantity.
// It never reads or mutates anything outside its arguments.
func Calculate(base decimal.Decimal, extras []decimal.Decimal, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}
	unit := base
	for _, price := range extras {
		unit = unit.Add(price)
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// Quote is a priced line: one pizza at a quantity with its extras.
type Quote struct {
	BasePrice   decimal.Decimal
	ExtraPrices []decimal.Decimal
	Quantity    int
	Total       decimal.Decimal
}

// NewQuote prices a pizza unit price together with its extras.
func NewQuote(base decimal.Decimal, extras []decimal.Decimal, quantity int) (Quote, error) {
	total, err := Calculate(base, extras, quantity)
	if err != nil {
		return Quote{}, err
	}
	prices := make([]decimal.Decimal, len(extras))
	copy(prices, extras)
	return Quote{
		BasePrice:   base,
		ExtraPrices: prices,
		Quantity:    quantity,
		Total:       total,
	}, nil
}
