package http

import (
	"errors"
	"net/http"

	"multilingual-chatbot/internal/chat"
	pkgErrors "multilingual-chatbot/pkg/errors"
)

var errGenerationFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to generate response")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything not listed becomes the generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrInvalidRequest),
		errors.Is(err, chat.ErrSessionIDRequired):
		return pkgErrors.ErrBadRequest
	case errors.Is(err, chat.ErrGenerationFailed):
		return errGenerationFailed
	default:
		return pkgErrors.ErrInternalServerError
	}
}
