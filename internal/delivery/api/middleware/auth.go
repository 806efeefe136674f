package middleware

import (
	"strings"

	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const accountIDKey = "account_id"

// AuthMiddleware authenticates account callers by their bearer access token.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate rejects requests without a valid access token and stores the account ID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return domainerrors.ErrAccountUnauthenticated
		}

		claims, err := m.tokenService.ValidateAccessToken(strings.TrimSpace(token))
		if err != nil {
			return domainerrors.ErrAccountUnauthenticated
		}

		c.Set(accountIDKey, claims.AccountID)

		return next(c)
	}
}

// GetAccountID returns the authenticated account of the request.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(accountIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}
