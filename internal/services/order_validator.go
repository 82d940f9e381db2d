package services

import (
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
)

// ValidateOrder is the pre-flight availability check. It stops at the first
// failing rule. The ledger makes the binding stock decision at commit time;
// this check exists to give the caller precise detail before that point.
//
// Rules, in order:
//  1. quantity >= 1
//  2. the pizza is available and has at least quantity units
//  3. every extra is available
//  4. every extra has at least quantity units
func ValidateOrder(pizza models.Pizza, extras []models.Extra, quantity int) error {
	if quantity < 1 {
		return newOrderError(models.ErrInvalidQuantity, "quantity must be at least 1",
			map[string]interface{}{"quantity": quantity})
	}

	if !pizza.IsAvailable {
		return newOrderError(models.ErrPizzaUnavailable,
			fmt.Sprintf("pizza %q is currently unavailable", pizza.Name),
			map[string]interface{}{
				"pizza_id":  pizza.ID,
				"available": pizza.QuantityInStock,
			})
	}
	if pizza.QuantityInStock < quantity {
		return newOrderError(models.ErrInsufficientStock,
			fmt.Sprintf("only %d %q left in stock", pizza.QuantityInStock, pizza.Name),
			map[string]interface{}{
				"kind":      "pizza",
				"item_id":   pizza.ID,
				"name":      pizza.Name,
				"requested": quantity,
				"available": pizza.QuantityInStock,
			})
	}

	var unavailable []string
	for _, e := range extras {
		if !e.IsAvailable {
			unavailable = append(unavailable, e.Name)
		}
	}
	if len(unavailable) > 0 {
		return newOrderError(models.ErrExtrasUnavailable,
			"these extras are unavailable: "+strings.Join(unavailable, ", "),
			map[string]interface{}{"extras": unavailable})
	}

	var short []map[string]interface{}
	var names []string
	for _, e := range extras {
		if e.QuantityInStock < quantity {
			short = append(short, map[string]interface{}{
				"id":        e.ID,
				"name":      e.Name,
				"available": e.QuantityInStock,
			})
			names = append(names, fmt.Sprintf("%s (%d available)", e.Name, e.QuantityInStock))
		}
	}
	if len(short) > 0 {
		return newOrderError(models.ErrInsufficientExtraStock,
			"not enough stock for extras: "+strings.Join(names, ", "),
			map[string]interface{}{"requested": quantity, "extras": short})
	}
	return nil
}
