package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/gin-gonic/gin"
)

// statusForKind maps a rejection kind onto an HTTP status.
func statusForKind(kind string) int {
	switch kind {
	case models.ErrInvalidQuantity, models.ErrInvalidStatus, models.ErrBadRequest, models.ErrValidationFailed:
		return http.StatusBadRequest
	case models.ErrPizzaNotFound, models.ErrItemNotFound, models.ErrOrderNotFound, models.ErrNotFound:
		return http.StatusNotFound
	case models.ErrPizzaUnavailable, models.ErrExtrasUnavailable, models.ErrInsufficientExtraStock,
		models.ErrInsufficientStock, models.ErrDuplicateRequest, models.ErrConflict:
		return http.StatusConflict
	case models.ErrPersistenceFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an APIError. Service rejections keep their kind
// and details; anything else becomes an opaque internal error.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var oe *services.OrderError
	if !errors.As(err, &oe) {
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "internal server error"))
		return
	}
	if oe.Retryable {
		c.Header("Retry-After", "1")
	}
	c.JSON(statusForKind(oe.Kind), models.NewAPIError(oe.Kind, oe.Detail, oe.Details))
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, message))
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		badRequest(c, "Invalid "+name+" format")
		return 0, false
	}
	return uint(id), true
}
