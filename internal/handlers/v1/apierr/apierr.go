// Package apierr converts service errors into huma problem responses.
package apierr

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transactions-report/internal/service"
)

// FromError maps err onto its HTTP status. The original error is kept as a
// problem detail; storeMessage titles store failures for the calling route.
func FromError(err error, storeMessage string) huma.StatusError {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		return huma.NewError(http.StatusBadRequest, validation.Message, &huma.ErrorDetail{
			Message:  validation.Error(),
			Location: validation.Location,
			Value:    validation.Value,
		})
	case errors.Is(err, service.ErrCancelled) && errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusGatewayTimeout, "request timed out", err)
	case errors.Is(err, service.ErrCancelled):
		return huma.NewError(http.StatusServiceUnavailable, "request cancelled", err)
	case errors.Is(err, service.ErrUpstreamFetch):
		return huma.NewError(http.StatusBadGateway, "failed to fetch seed data", err)
	default:
		return huma.NewError(http.StatusInternalServerError, storeMessage, err)
	}
}
