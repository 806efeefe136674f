package handler

import (
	"log/slog"
	"net/http"
	"time"

	"spoolmeter/internal/delivery/api/middleware"
	"spoolmeter/internal/delivery/api/response"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SpoolMeterHandlerParams holds dependencies for SpoolMeterHandler, injected by Fx.
type SpoolMeterHandlerParams struct {
	fx.In

	UsageUC usecase.UsageUsecase
	Logger  *slog.Logger
}

// SpoolMeterHandler serves the account-facing read side of a spool meter.
type SpoolMeterHandler struct {
	usageUC usecase.UsageUsecase
	logger  *slog.Logger
}

// NewSpoolMeterHandler is the constructor for SpoolMeterHandler
func NewSpoolMeterHandler(params SpoolMeterHandlerParams) *SpoolMeterHandler {
	return &SpoolMeterHandler{
		usageUC: params.UsageUC,
		logger:  params.Logger,
	}
}

// UsageLogResponse is one entry of a usage history.
type UsageLogResponse struct {
	Timestamp         time.Time `json:"timestamp"`
	RemainingFraction float64   `json:"remainingFraction"`
}

// PredictionResponse is the projected run-out of a spool meter.
type PredictionResponse struct {
	Determinable        bool       `json:"determinable"`
	PredictedRunOutDate *time.Time `json:"predictedRunOutDate"`
	PredictedDays       *float64   `json:"predictedDays"`
	SessionCount        int        `json:"sessionCount"`
	PointCount          int        `json:"pointCount"`
}

// GetUsage handles GET /api/v1/spoolmeters/:id/usage
func (h *SpoolMeterHandler) GetUsage(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return domainerrors.ErrAccountUnauthenticated
	}

	spoolMeterID := c.Param("id")
	if spoolMeterID == "" {
		return domainerrors.ErrMissingSpoolMeterID
	}

	entries, err := h.usageUC.GetUsageHistory(c.Request().Context(), accountID, spoolMeterID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]UsageLogResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, UsageLogResponse{
			Timestamp:         entry.Timestamp,
			RemainingFraction: entry.RemainingFraction,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// GetPrediction handles GET /api/v1/spoolmeters/:id/prediction
func (h *SpoolMeterHandler) GetPrediction(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return domainerrors.ErrAccountUnauthenticated
	}

	spoolMeterID := c.Param("id")
	if spoolMeterID == "" {
		return domainerrors.ErrMissingSpoolMeterID
	}

	prediction, err := h.usageUC.GetPredictedRunOutDate(c.Request().Context(), accountID, spoolMeterID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := PredictionResponse{
		Determinable: prediction.Determinable,
		SessionCount: prediction.SessionCount,
		PointCount:   prediction.PointCount,
	}
	if prediction.Determinable {
		runOut := prediction.RunOutDate
		days := prediction.PredictedDays
		out.PredictedRunOutDate = &runOut
		out.PredictedDays = &days
	}

	return response.Success(c, http.StatusOK, out)
}
