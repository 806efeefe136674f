// Package middleware contains the API-only echo middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"spoolmeter/internal/delivery/api/response"
	"spoolmeter/internal/delivery/api/validator"
	deliverycontext "spoolmeter/internal/delivery/context"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if verr, ok := errors.AsType[*validator.ValidationError](err); ok {
		_ = response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			verr.Fields)

		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("[HTTP] Request failed", slog.Any("error", err), slog.String("path", c.Path()))
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.log(c).Error("[HTTP] Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
