package middleware

import (
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/errors"

	"github.com/labstack/echo/v4"
)

func asHTTPError(err error, target **echo.HTTPError) bool {
	return errors.As(err, target)
}

func asAppError(err error) (domainerrors.AppError, bool) {
	return errors.AsType[domainerrors.AppError](err)
}
