package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/franciscosanchezn/pizza-order-api/internal/stock"
)

// OrderError is a structured rejection. Kind is one of the models.Err* codes,
// Detail is human readable and Details carries machine-readable context such as
// the offending item names and available counts.
type OrderError struct {
	Kind      string
	Detail    string
	Details   map[string]interface{}
	Retryable bool
	Err       error
}

func (e *OrderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

func newOrderError(kind, detail string, details map[string]interface{}) *OrderError {
	return &OrderError{Kind: kind, Detail: detail, Details: details}
}

// persistenceFailure wraps a storage error. It is always safe to retry because
// the failed transaction was rolled back.
func persistenceFailure(err error) *OrderError {
	return &OrderError{
		Kind:      models.ErrPersistenceFailure,
		Detail:    "the order could not be stored, please retry",
		Retryable: true,
		Err:       err,
	}
}

// ErrorKind extracts the rejection kind from err, or "" if err is not an OrderError.
func ErrorKind(err error) string {
	var oe *OrderError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

// stockRejection translates a ledger failure into a rejection.
func stockRejection(err error, name string) *OrderError {
	var se *stock.StockError
	if !errors.As(err, &se) {
		return persistenceFailure(err)
	}
	details := map[string]interface{}{
		"kind":    string(se.Key.Kind),
		"item_id": se.Key.ID,
		"name":    name,
	}
	if errors.Is(se, stock.ErrItemNotFound) {
		return newOrderError(models.ErrItemNotFound,
			fmt.Sprintf("%s %d does not exist", se.Key.Kind, se.Key.ID), details)
	}
	details["requested"] = se.Requested
	details["available"] = se.Available
	return newOrderError(models.ErrInsufficientStock,
		fmt.Sprintf("not enough %s in stock: requested %d, available %d", name, se.Requested, se.Available), details)
}
