package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"spoolmeter/config"
	"spoolmeter/internal/domain/entity"
	"spoolmeter/internal/domain/service"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
)

const defaultWebPushTTL = 86400

// webPushPayload is the JSON body decrypted by the browser service worker.
type webPushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

type webPushService struct {
	publicKey  string
	privateKey string
	subscriber string
	ttl        int
	httpClient webpush.HTTPClient
}

// NewWebPushService creates a VAPID-signed browser push delivery service.
func NewWebPushService(cfg *config.WebPushConfig) (service.PushService, error) {
	if cfg == nil || cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		return nil, errors.New("vapid key pair must be provided")
	}

	ttl := cfg.TTLSeconds
	if ttl <= 0 {
		ttl = defaultWebPushTTL
	}

	subscriber := cfg.Subscriber
	if subscriber != "" && !strings.HasPrefix(subscriber, "mailto:") && !strings.HasPrefix(subscriber, "https:") {
		subscriber = "mailto:" + subscriber
	}

	return &webPushService{
		publicKey:  cfg.VAPIDPublicKey,
		privateKey: cfg.VAPIDPrivateKey,
		subscriber: subscriber,
		ttl:        ttl,
		httpClient: http.DefaultClient,
	}, nil
}

// Deliver encrypts the payload for the subscription and posts it to the push endpoint.
// 404 and 410 mean the subscription is gone for good.
func (s *webPushService) Deliver(ctx context.Context, destination *entity.PushDestination, title, body string, data map[string]string) (entity.DeliveryOutcome, error) {
	if destination.P256dhKey == "" || destination.AuthKey == "" {
		return entity.DeliveryPermanentlyInvalid, errors.New("web push destination has no encryption keys")
	}

	payload, err := json.Marshal(webPushPayload{Title: title, Body: body, Data: data})
	if err != nil {
		return entity.DeliveryTransientFailure, errors.Wrap(err, "marshal web push payload")
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: destination.Token,
		Keys: webpush.Keys{
			P256dh: destination.P256dhKey,
			Auth:   destination.AuthKey,
		},
	}, &webpush.Options{
		HTTPClient:      s.httpClient,
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             s.ttl,
		Urgency:         webpush.UrgencyHigh,
	})
	if err != nil {
		return entity.DeliveryTransientFailure, errors.Wrap(err, "send web push")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound:
		return entity.DeliveryPermanentlyInvalid, errors.Errorf("push subscription expired: status %d", resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return entity.DeliveryTransientFailure, errors.Errorf("push service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return entity.DeliveryDelivered, nil
}
