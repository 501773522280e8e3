package http

import (
	"errors"
	"net/http"

	"argo-assistant/internal/chat"
	pkgErrors "argo-assistant/pkg/errors"
)

var (
	errNoData         = errors.New("request body is missing or not a JSON object")
	errInvalidMessage = errors.New("message is not a string")
)

// mapError translates request errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errNoData):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, MsgNoData)
	case errors.Is(err, errInvalidMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, chat.MsgNoMessage)
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// mapResult translates a failed chat.Result into an HTTP error. Validation failures are 400,
// every other reason is 500. The message is the caller-safe one chosen by the use case.
func (h *handler) mapResult(res chat.Result) error {
	if res.ErrorMessage == "" {
		return pkgErrors.ErrInternalServerError
	}

	switch res.Reason {
	case chat.ReasonValidation:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, res.ErrorMessage)
	case chat.ReasonUpstreamFailure, chat.ReasonNotConfigured, chat.ReasonProviderUnavailable:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, res.ErrorMessage)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
