package httperr

import (
	"net/http"

	"commerce-ledger/internal/domain/inventory"
	"commerce-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// StatusFor maps error categories to HTTP statuses. Unclassified errors are 500.
func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrTransient):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Abort classifies err and answers with its own message for client errors.
// Server errors get fallback instead, so internals never leak.
func Abort(c *gin.Context, err error, fallback string) {
	status := StatusFor(err)
	msg := fallback
	var detail any

	switch status {
	case http.StatusInternalServerError:
		msg = "Internal server error"
	case http.StatusServiceUnavailable:
		msg = "Service temporarily unavailable, please retry"
	default:
		msg = rootMessage(err)
	}

	var insufficient *inventory.InsufficientStockError
	if errs.As(err, &insufficient) {
		detail = gin.H{
			"productId": insufficient.ProductID,
			"available": insufficient.Available,
			"requested": insufficient.Requested,
		}
	}

	AbortWithError(c, status, err, msg, detail)
}

func rootMessage(err error) string {
	var insufficient *inventory.InsufficientStockError
	if errs.As(err, &insufficient) {
		return inventory.ErrInsufficientStock.Error()
	}
	return err.Error()
}
