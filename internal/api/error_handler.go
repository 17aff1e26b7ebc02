package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "invalid role"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrLoginInFlight):
		return http.StatusConflict, "a login attempt is already in progress"
	case errors.Is(err, domain.ErrInvalidSession), errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "session invalid or expired"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, domain.ErrPatientNotFound):
		return http.StatusNotFound, "patient record not found"
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, "inventory item not found"
	case errors.Is(err, domain.ErrFeedbackNotFound):
		return http.StatusNotFound, "feedback not found"
	case errors.Is(err, domain.ErrResourceNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, domain.ErrTestCostNotFound):
		return http.StatusNotFound, "test cost not found"
	case errors.Is(err, domain.ErrCancerResultNotFound):
		return http.StatusNotFound, "cancer result not found"
	case errors.Is(err, domain.ErrUnknownStage):
		return http.StatusNotFound, "unknown cancer stage"
	case errors.Is(err, domain.ErrPredictionUnavailable):
		return http.StatusServiceUnavailable, "risk model unavailable, please retry later"
	case errors.Is(err, domain.ErrSMSRejected):
		return http.StatusBadGateway, "sms gateway rejected the message"
	case errors.Is(err, domain.ErrInvalidPhoneNumber):
		return http.StatusBadRequest, "invalid kenyan phone number"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
