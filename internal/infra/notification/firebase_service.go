package notification

import (
	"context"

	"spoolmeter/config"
	"spoolmeter/internal/domain/entity"
	"spoolmeter/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// fcmSender is the subset of *messaging.Client used for delivery.
type fcmSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client fcmSender
}

// NewFirebaseService creates a new Firebase Cloud Messaging delivery service.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	if cfg == nil || cfg.CredentialsPath == "" {
		return nil, errors.New("firebase credentials path must be provided")
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// Deliver sends one notification to an FCM registration token.
func (s *firebaseService) Deliver(ctx context.Context, destination *entity.PushDestination, title, body string, data map[string]string) (entity.DeliveryOutcome, error) {
	message := &messaging.Message{
		Token: destination.Token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return classifyFCMError(err), errors.Wrap(err, "failed to send notification")
	}

	return entity.DeliveryDelivered, nil
}

// classifyFCMError treats unregistered and malformed tokens as permanently invalid.
func classifyFCMError(err error) entity.DeliveryOutcome {
	if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) || messaging.IsSenderIDMismatch(err) {
		return entity.DeliveryPermanentlyInvalid
	}

	return entity.DeliveryTransientFailure
}
