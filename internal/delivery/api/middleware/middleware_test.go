package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"spoolmeter/internal/delivery/api/validator"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/service"
	"spoolmeter/internal/errors"
	mockService "spoolmeter/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name      string
		header    string
		setup     func(m *mockService.MockTokenService)
		wantErr   error
		wantID    uuid.UUID
		wantFound bool
	}{
		{name: "missing header", wantErr: domainerrors.ErrAccountUnauthenticated},
		{name: "wrong scheme", header: "Basic abc", wantErr: domainerrors.ErrAccountUnauthenticated},
		{name: "empty token", header: "Bearer ", wantErr: domainerrors.ErrAccountUnauthenticated},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("expired"))
			},
			wantErr: domainerrors.ErrAccountUnauthenticated,
		},
		{
			name:   "valid token",
			header: "bearer good",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateAccessToken("good").Return(&service.Claims{AccountID: accountID}, nil)
			},
			wantID:    accountID,
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			var gotID uuid.UUID
			var found bool
			err := NewAuthMiddleware(tokens).Authenticate(func(c echo.Context) error {
				gotID, found = GetAccountID(c)

				return nil
			})(c)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantID, gotID)
		})
	}
}

func TestGetAccountID_Missing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetAccountID(c)
	assert.False(t, ok)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation error",
			err:        &validator.ValidationError{Fields: []validator.FieldError{{Field: "token", Detail: "is required"}}},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"VALIDATION_FAILED"`,
		},
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrSpoolMeterNotFound, "lookup"),
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"NOT_FOUND"`,
		},
		{
			name:       "storage failure hides the cause",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("pq: password leaked"), "find"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"STORAGE_FAILURE"`,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `"message":"nope"`,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "leaked")
		})
	}
}
