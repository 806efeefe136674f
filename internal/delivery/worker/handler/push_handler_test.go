package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"spoolmeter/config"
	deliverycontext "spoolmeter/internal/delivery/context"
	"spoolmeter/internal/domain/constants"
	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/service"
	"spoolmeter/internal/errors"
	mockUsecase "spoolmeter/internal/mocks/usecase"
	"spoolmeter/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pushBody(t *testing.T, data []byte, attrs map[string]string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/s"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func eventBody(t *testing.T, event *service.AlertEvent, attrs map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return pushBody(t, data, attrs)
}

func serve(t *testing.T, h *PushHandler, body []byte) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec.Code
}

func newHandler(notifier usecase.NotificationUsecase, cfg *config.Config, verifier TokenVerifier) *PushHandler {
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   testLogger(),
		Notifier: notifier,
		Verifier: verifier,
	})
}

func TestHandlePush_Outcomes(t *testing.T) {
	event := &service.AlertEvent{
		EventID:      "e-1",
		SpoolMeterID: "meter-1",
		AlertKind:    entity.AlertMaterialLow,
	}

	tests := []struct {
		name       string
		notifyErr  error
		wantStatus int
	}{
		{name: "delivered", wantStatus: http.StatusOK},
		{
			name:       "storage failure is redelivered",
			notifyErr:  domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find owners"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "deadline is redelivered",
			notifyErr:  errors.Wrap(context.DeadlineExceeded, "notify"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "other errors are acked",
			notifyErr:  errors.New("boom"),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := mockUsecase.NewMockNotificationUsecase(t)
			call := notifier.EXPECT().Notify(mock.Anything, "meter-1", entity.AlertMaterialLow)
			if tt.notifyErr != nil {
				call.Return(nil, tt.notifyErr)
			} else {
				call.Return(&usecase.NotifyReport{Recipients: 1, Attempted: 1, Delivered: 1}, nil)
			}

			code := serve(t, newHandler(notifier, nil, nil), eventBody(t, event, nil))
			assert.Equal(t, tt.wantStatus, code)
		})
	}
}

func TestHandlePush_MalformedPayloadsAreAcked(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "not json", body: []byte("{")},
		{name: "bad base64", body: []byte(`{"message":{"data":"%%%"}}`)},
		{name: "bad event json", body: pushBody(t, []byte("nope"), nil)},
		{name: "missing meter", body: eventBody(t, &service.AlertEvent{AlertKind: entity.AlertBatteryLow}, nil)},
		{name: "unknown kind", body: eventBody(t, &service.AlertEvent{SpoolMeterID: "m", AlertKind: "nope"}, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := mockUsecase.NewMockNotificationUsecase(t)

			code := serve(t, newHandler(notifier, nil, nil), tt.body)
			assert.Equal(t, http.StatusOK, code)
		})
	}
}

func TestHandlePush_RequestIDPrecedence(t *testing.T) {
	event := &service.AlertEvent{
		RequestID:    "from-event",
		SpoolMeterID: "meter-1",
		AlertKind:    entity.AlertBatteryDead,
	}

	tests := []struct {
		name  string
		attrs map[string]string
		want  string
	}{
		{name: "attribute wins", attrs: map[string]string{"request_id": "from-attrs"}, want: "from-attrs"},
		{name: "event fallback", want: "from-event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := mockUsecase.NewMockNotificationUsecase(t)
			notifier.EXPECT().Notify(mock.Anything, "meter-1", entity.AlertBatteryDead).
				Run(func(ctx context.Context, _ string, _ entity.AlertKind) {
					assert.Equal(t, tt.want, deliverycontext.GetRequestIDFromContext(ctx))
				}).
				Return(&usecase.NotifyReport{}, nil)

			assert.Equal(t, http.StatusOK, serve(t, newHandler(notifier, nil, nil), eventBody(t, event, tt.attrs)))
		})
	}
}

func TestHandlePush_VerifiesTokenForGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	notifier := mockUsecase.NewMockNotificationUsecase(t)
	rejecting := func(*http.Request) error { return errors.New("bad token") }

	event := &service.AlertEvent{SpoolMeterID: "meter-1", AlertKind: entity.AlertBatteryLow}
	code := serve(t, newHandler(notifier, cfg, rejecting), eventBody(t, event, nil))
	assert.Equal(t, http.StatusUnauthorized, code)

	cfg.Env.Env = constants.EnvDevelop
	notifier.EXPECT().Notify(mock.Anything, "meter-1", entity.AlertBatteryLow).Return(&usecase.NotifyReport{}, nil)
	code = serve(t, newHandler(notifier, cfg, rejecting), eventBody(t, event, nil))
	assert.Equal(t, http.StatusOK, code)
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	err := verifyPubSubToken(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid authorization header format")
}
