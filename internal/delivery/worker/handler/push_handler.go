// Package handler holds the notifier's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"spoolmeter/config"
	deliverycontext "spoolmeter/internal/delivery/context"
	"spoolmeter/internal/domain/constants"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/service"
	"spoolmeter/internal/errors"
	"spoolmeter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler turns Pub/Sub push deliveries into notification dispatches.
type PushHandler struct {
	verifyPushAuth bool
	verify         TokenVerifier
	logger         *slog.Logger
	notifier       usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier usecase.NotificationUsecase
	Verifier TokenVerifier `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google signs push requests, and develop runs against the emulator.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	verify := params.Verifier
	if verify == nil {
		verify = verifyPubSubToken
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verify:         verify,
		logger:         params.Logger,
		notifier:       params.Notifier,
	}
}

// HandlePush acks with 200 unless redelivery could help, in which case it answers 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	event, pushMsg, err := decodeAlertEvent(c)
	if err != nil {
		// Redelivering a malformed payload never succeeds.
		logger.Error("[Worker] Dropping malformed alert event", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, pushMsg, event)
	ctx, reqLogger := deliverycontext.Scope(ctx, requestID, h.logger)

	reqLogger.Info("[Worker] Processing alert event",
		slog.String("event_id", event.EventID),
		slog.String("spool_meter_id", event.SpoolMeterID),
		slog.String("alert_kind", event.AlertKind.String()),
	)

	report, err := h.process(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process alert event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alert event processed",
		slog.String("event_id", event.EventID),
		slog.Int("recipients", report.Recipients),
		slog.Int("delivered", report.Delivered),
		slog.Int("removed", report.Removed),
		slog.Int("failed", report.Failed),
	)

	return c.NoContent(http.StatusOK)
}

func decodeAlertEvent(c echo.Context) (*service.AlertEvent, *PubSubMessage, error) {
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		return nil, nil, errors.Wrap(err, "parse push message")
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode message data")
	}

	var event service.AlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "parse alert event")
	}

	if event.SpoolMeterID == "" {
		return nil, nil, errors.New("alert event without spool meter id")
	}
	if !event.AlertKind.IsValid() {
		return nil, nil, errors.Errorf("unknown alert kind %q", event.AlertKind)
	}

	return &event, &pushMsg, nil
}

// extractRequestID prefers message attributes, then the event body, then the inbound request.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AlertEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) process(ctx context.Context, event *service.AlertEvent) (*usecase.NotifyReport, error) {
	report, err := h.notifier.Notify(ctx, event.SpoolMeterID, event.AlertKind)
	if err != nil {
		if domainerrors.IsStorageFailure(err) || errors.Is(err, context.DeadlineExceeded) {
			return nil, newRetryableError(err)
		}

		return nil, err
	}

	return report, nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL configured on the subscription.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
