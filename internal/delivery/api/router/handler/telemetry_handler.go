// Package handler holds the echo handlers of the API.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"spoolmeter/internal/delivery/api/response"
	deliverycontext "spoolmeter/internal/delivery/context"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/errors"
	"spoolmeter/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TelemetryHandlerParams holds dependencies for TelemetryHandler, injected by Fx.
type TelemetryHandlerParams struct {
	fx.In

	TelemetryUC usecase.TelemetryUsecase
	Logger      *slog.Logger
}

// TelemetryHandler receives spool meter updates.
type TelemetryHandler struct {
	telemetryUC usecase.TelemetryUsecase
	logger      *slog.Logger
}

// NewTelemetryHandler is the constructor for TelemetryHandler
func NewTelemetryHandler(params TelemetryHandlerParams) *TelemetryHandler {
	return &TelemetryHandler{
		telemetryUC: params.TelemetryUC,
		logger:      params.Logger,
	}
}

// UpdateRemainingAmountRequest is sent by a spool meter after weighing its spool.
// Values stay strings so parsing failures get their own messages.
type UpdateRemainingAmountRequest struct {
	MeterID   string `json:"meterId"`
	Password  string `json:"password"`
	NewAmount string `json:"newAmount"`
}

// UpdateBatteryLevelRequest is sent by a spool meter when its battery level changes.
type UpdateBatteryLevelRequest struct {
	MeterID         string `json:"meterId"`
	Password        string `json:"password"`
	NewBatteryLevel string `json:"newBatteryLevel"`
}

// UpdateRemainingAmount handles PUT /api/v1/telemetry/remaining-amount
func (h *TelemetryHandler) UpdateRemainingAmount(c echo.Context) error {
	var req UpdateRemainingAmountRequest
	if err := c.Bind(&req); err != nil {
		return response.Device(c, http.StatusBadRequest, false, domainerrors.ErrInvalidInput.Message())
	}

	ctx := deliverycontext.WithSpoolMeter(c.Request().Context(), strings.TrimSpace(req.MeterID), h.logger)
	result, err := h.telemetryUC.ReportRemainingAmount(ctx, req.MeterID, req.Password, req.NewAmount)

	return h.respond(ctx, c, result, err)
}

// UpdateBatteryLevel handles PUT /api/v1/telemetry/battery-level
func (h *TelemetryHandler) UpdateBatteryLevel(c echo.Context) error {
	var req UpdateBatteryLevelRequest
	if err := c.Bind(&req); err != nil {
		return response.Device(c, http.StatusBadRequest, false, domainerrors.ErrInvalidInput.Message())
	}

	ctx := deliverycontext.WithSpoolMeter(c.Request().Context(), strings.TrimSpace(req.MeterID), h.logger)
	result, err := h.telemetryUC.ReportBatteryStatus(ctx, req.MeterID, req.Password, req.NewBatteryLevel)

	return h.respond(ctx, c, result, err)
}

// respond renders every outcome as a DeviceResult; devices never see the error envelope.
func (h *TelemetryHandler) respond(ctx context.Context, c echo.Context, result *usecase.IngestResult, err error) error {
	if err == nil {
		return response.Device(c, http.StatusOK, result.Success, result.Message)
	}

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		appErr = domainerrors.ErrInternalError
	}
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("[Ingest] Update failed", slog.Any("error", err))
	}

	return response.Device(c, appErr.HTTPCode(), false, appErr.Message())
}
