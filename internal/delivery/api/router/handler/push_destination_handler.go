package handler

import (
	"log/slog"
	"net/http"
	"time"

	"spoolmeter/internal/delivery/api/middleware"
	"spoolmeter/internal/delivery/api/response"
	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushDestinationHandlerParams holds dependencies for PushDestinationHandler, injected by Fx.
type PushDestinationHandlerParams struct {
	fx.In

	PushDestinationUC usecase.PushDestinationUsecase
	Logger            *slog.Logger
}

// PushDestinationHandler manages the caller's push destinations.
type PushDestinationHandler struct {
	pushDestinationUC usecase.PushDestinationUsecase
	logger            *slog.Logger
}

// NewPushDestinationHandler is the constructor for PushDestinationHandler
func NewPushDestinationHandler(params PushDestinationHandlerParams) *PushDestinationHandler {
	return &PushDestinationHandler{
		pushDestinationUC: params.PushDestinationUC,
		logger:            params.Logger,
	}
}

// WebPushKeys are the subscription keys a browser hands out with its endpoint.
type WebPushKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

// RegisterPushDestinationRequest registers an FCM token or a web push subscription.
type RegisterPushDestinationRequest struct {
	Platform string       `json:"platform" validate:"required,oneof=fcm webpush"`
	Token    string       `json:"token" validate:"required_if=Platform fcm"`
	Endpoint string       `json:"endpoint" validate:"required_if=Platform webpush"`
	Keys     *WebPushKeys `json:"keys" validate:"required_if=Platform webpush"`
}

// PushDestinationResponse is a registered destination. Subscription keys are never echoed.
type PushDestinationResponse struct {
	ID        uuid.UUID `json:"id"`
	Platform  string    `json:"platform"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPushDestinationResponse(d *entity.PushDestination) PushDestinationResponse {
	return PushDestinationResponse{
		ID:        d.ID,
		Platform:  string(d.Platform),
		Token:     d.Token,
		CreatedAt: d.CreatedAt,
	}
}

// RegisterDestination handles POST /api/v1/push-destinations
func (h *PushDestinationHandler) RegisterDestination(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return domainerrors.ErrAccountUnauthenticated
	}

	var req RegisterPushDestinationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), domainerrors.ErrInvalidInput.Message())
	}
	if err := c.Validate(&req); err != nil {
		return err //nolint:wrapcheck // rendered by the error middleware
	}

	input := &usecase.PushDestinationInput{
		Platform: entity.PushPlatform(req.Platform),
		Token:    req.Token,
	}
	if input.Platform == entity.PushPlatformWebPush {
		input.Token = req.Endpoint
		input.P256dhKey = req.Keys.P256dh
		input.AuthKey = req.Keys.Auth
	}

	destination, err := h.pushDestinationUC.RegisterDestination(c.Request().Context(), accountID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPushDestinationResponse(destination))
}

// ListDestinations handles GET /api/v1/push-destinations
func (h *PushDestinationHandler) ListDestinations(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return domainerrors.ErrAccountUnauthenticated
	}

	destinations, err := h.pushDestinationUC.ListDestinations(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]PushDestinationResponse, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, toPushDestinationResponse(d))
	}

	return response.Success(c, http.StatusOK, out)
}

// RemoveDestination handles DELETE /api/v1/push-destinations/:id
func (h *PushDestinationHandler) RemoveDestination(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return domainerrors.ErrAccountUnauthenticated
	}

	destinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid push destination ID")
	}

	if err := h.pushDestinationUC.RemoveDestination(c.Request().Context(), accountID, destinationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
