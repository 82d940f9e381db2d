package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Catalog errors
	ErrPizzaNotFound = "PIZZA_NOT_FOUND"
	ErrItemNotFound  = "ITEM_NOT_FOUND"

	// Order placement rejections
	ErrInvalidQuantity        = "INVALID_QUANTITY"
	ErrPizzaUnavailable       = "PIZZA_UNAVAILABLE"
	ErrExtrasUnavailable      = "EXTRAS_UNAVAILABLE"
	ErrInsufficientExtraStock = "INSUFFICIENT_EXTRA_STOCK"
	ErrInsufficientStock      = "INSUFFICIENT_STOCK"
	ErrPersistenceFailure     = "PERSISTENCE_FAILURE"
	ErrDuplicateRequest       = "DUPLICATE_REQUEST"

	// Order management errors
	ErrOrderNotFound = "ORDER_NOT_FOUND"
	ErrInvalidStatus = "INVALID_STATUS"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
