// Package mqtt ingests spool meter telemetry published to an MQTT broker.
//
// Devices publish {"password","value"} to <prefix>/<meterId>/remaining-amount or
// <prefix>/<meterId>/battery-level and read the outcome back from <prefix>/<meterId>/result.
package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"spoolmeter/config"
	"spoolmeter/internal/delivery"
	deliverycontext "spoolmeter/internal/delivery/context"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/lifecycle"
	"spoolmeter/internal/errors"
	"spoolmeter/internal/usecase"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	topicRemainingAmount = "remaining-amount"
	topicBatteryLevel    = "battery-level"
	topicResult          = "result"

	publishTimeout          = 5 * time.Second
	disconnectQuiesceMillis = 250
)

// Payload is what a device publishes.
type Payload struct {
	Password string `json:"password"`
	Value    string `json:"value"`
}

// Result is published back to the device.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubscriberParams holds dependencies for the subscriber, injected by Fx.
type SubscriberParams struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	TelemetryUC usecase.TelemetryUsecase
}

type subscriber struct {
	client      paho.Client
	prefix      string
	qos         byte
	telemetryUC usecase.TelemetryUsecase
	logger      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

type disabled struct{}

func (disabled) Serve(context.Context) error { return nil }

// NewSubscriber returns the MQTT ingest surface, or a no-op delivery when mqtt.enabled is false.
func NewSubscriber(params SubscriberParams) (delivery.Delivery, error) {
	cfg := params.Config.MQTT
	if cfg == nil || !cfg.Enabled {
		return disabled{}, nil
	}
	if strings.TrimSpace(cfg.Broker) == "" {
		return nil, errors.New("mqtt broker is required when mqtt is enabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &subscriber{
		prefix:      strings.TrimSuffix(cfg.TopicPrefix, "/"),
		qos:         normalizeQoS(cfg.QoS),
		telemetryUC: params.TelemetryUC,
		logger:      params.Logger,
		ctx:         ctx,
		cancel:      cancel,
	}

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "spoolmeter-" + uuid.NewString()[:8]
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(clientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	// Handlers block on storage, so they must not hold up the router.
	opts.SetOrderMatters(false)
	// A clean session drops subscriptions, so every (re)connect subscribes again.
	opts.SetOnConnectHandler(s.subscribe)
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		s.logger.Warn("[MQTT] Connection lost", slog.Any("error", err))
	})
	s.client = paho.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func normalizeQoS(qos byte) byte {
	if qos > 2 {
		return 1
	}

	return qos
}

// Serve connects and then blocks until stop; reconnects are handled by the client.
func (s *subscriber) Serve(context.Context) error {
	token := s.client.Connect()
	if !token.WaitTimeout(lifecycle.DefaultTimeout) {
		return errors.New("mqtt connect timed out")
	}
	if err := token.Error(); err != nil {
		return errors.Wrap(err, "mqtt connect")
	}

	<-s.ctx.Done()

	return nil
}

func (s *subscriber) subscribe(client paho.Client) {
	filters := map[string]byte{
		s.prefix + "/+/" + topicRemainingAmount: s.qos,
		s.prefix + "/+/" + topicBatteryLevel:    s.qos,
	}

	token := client.SubscribeMultiple(filters, s.onMessage)
	if !token.WaitTimeout(lifecycle.DefaultTimeout) || token.Error() != nil {
		s.logger.Error("[MQTT] Failed to subscribe", slog.Any("error", token.Error()))

		return
	}

	s.logger.Info("[MQTT] Subscribed", slog.String("prefix", s.prefix), slog.Int("qos", int(s.qos)))
}

func (s *subscriber) onMessage(client paho.Client, msg paho.Message) {
	ctx, cancel := context.WithTimeout(s.ctx, lifecycle.DefaultTimeout)
	defer cancel()
	ctx, logger := deliverycontext.Scope(ctx, uuid.NewString(), s.logger)

	meterID, result, ok := s.handle(ctx, msg.Topic(), msg.Payload())
	if !ok {
		logger.Warn("[MQTT] Ignoring message on unexpected topic", slog.String("topic", msg.Topic()))

		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		logger.Error("[MQTT] Failed to encode result", slog.Any("error", err))

		return
	}

	resultTopic := s.prefix + "/" + meterID + "/" + topicResult
	token := client.Publish(resultTopic, s.qos, false, body)
	if !token.WaitTimeout(publishTimeout) || token.Error() != nil {
		logger.Warn("[MQTT] Failed to publish result",
			slog.String("spool_meter_id", meterID),
			slog.Any("error", token.Error()))
	}
}

// handle runs one device message through the ingestion gateway. ok is false when
// the topic is not one of ours.
func (s *subscriber) handle(ctx context.Context, topic string, payload []byte) (string, Result, bool) {
	meterID, kind, ok := s.parseTopic(topic)
	if !ok {
		return "", Result{}, false
	}
	ctx = deliverycontext.WithSpoolMeter(ctx, meterID, s.logger)

	var p Payload
	if err := json.Unmarshal(payload, &p); err != nil {
		return meterID, Result{Message: domainerrors.ErrInvalidInput.Message()}, true
	}

	var (
		result *usecase.IngestResult
		err    error
	)
	switch kind {
	case topicRemainingAmount:
		result, err = s.telemetryUC.ReportRemainingAmount(ctx, meterID, p.Password, p.Value)
	default:
		result, err = s.telemetryUC.ReportBatteryStatus(ctx, meterID, p.Password, p.Value)
	}
	if err != nil {
		appErr, isApp := errors.AsType[domainerrors.AppError](err)
		if !isApp {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("[MQTT] Update failed", slog.Any("error", err))

			return meterID, Result{Message: domainerrors.ErrInternalError.Message()}, true
		}

		return meterID, Result{Message: appErr.Message()}, true
	}

	return meterID, Result{Success: result.Success, Message: result.Message}, true
}

// parseTopic splits <prefix>/<meterId>/<kind>.
func (s *subscriber) parseTopic(topic string) (meterID, kind string, ok bool) {
	rest, found := strings.CutPrefix(topic, s.prefix+"/")
	if !found {
		return "", "", false
	}

	meterID, kind, found = strings.Cut(rest, "/")
	if !found || meterID == "" || strings.Contains(kind, "/") {
		return "", "", false
	}
	if kind != topicRemainingAmount && kind != topicBatteryLevel {
		return "", "", false
	}

	return meterID, kind, true
}

func (s *subscriber) stop(context.Context) error {
	s.logger.Info("[MQTT] Disconnecting")
	s.cancel()
	if s.client.IsConnectionOpen() {
		s.client.Disconnect(disconnectQuiesceMillis)
	}

	return nil
}
