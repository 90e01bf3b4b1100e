package http

import (
	"errors"
	"net/http"

	"tasklens/internal/editor"
	"tasklens/internal/extraction"
	"tasklens/pkg/llmprovider"
)

// mapStatus translates domain/use-case errors into HTTP status codes. Each
// code points the extension at the remedy: 429 wait for tomorrow, 422 open
// settings or retry, 404 refresh the list, 502 the provider misbehaved.
func mapStatus(err error) int {
	var provErr *llmprovider.ProviderError

	switch {
	case errors.Is(err, extraction.ErrEmptyContent):
		return http.StatusBadRequest
	case errors.Is(err, extraction.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, extraction.ErrMissingAPIKey):
		return http.StatusUnprocessableEntity
	case errors.Is(err, extraction.ErrParse):
		return http.StatusUnprocessableEntity
	case errors.As(err, &provErr):
		return http.StatusBadGateway
	case errors.Is(err, extraction.ErrResultNotFound),
		errors.Is(err, editor.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrNothingToUndo):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
