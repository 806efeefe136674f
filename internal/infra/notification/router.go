// Package notification delivers alert pushes to FCM and browser push destinations.
package notification

import (
	"context"
	"log/slog"

	"spoolmeter/config"
	"spoolmeter/internal/domain/entity"
	"spoolmeter/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Router picks the transport matching a destination's platform.
type Router struct {
	transports map[entity.PushPlatform]service.PushService
}

// NewRouter builds a Router. A nil transport leaves its platform unconfigured.
func NewRouter(fcm, webPush service.PushService) *Router {
	transports := make(map[entity.PushPlatform]service.PushService, 2)
	if fcm != nil {
		transports[entity.PushPlatformFCM] = fcm
	}
	if webPush != nil {
		transports[entity.PushPlatformWebPush] = webPush
	}

	return &Router{transports: transports}
}

// Deliver implements service.PushService.
func (r *Router) Deliver(ctx context.Context, destination *entity.PushDestination, title, body string, data map[string]string) (entity.DeliveryOutcome, error) {
	transport, ok := r.transports[destination.Platform]
	if !ok {
		// Unconfigured transports are an operator problem, not a dead destination.
		return entity.DeliveryTransientFailure, errors.Errorf("no transport configured for platform %q", destination.Platform)
	}

	return transport.Deliver(ctx, destination, title, body, data)
}

// Params holds what NewPushService needs, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService builds a Router from whichever transports are configured.
// Neither being configured is allowed; every delivery is then a transient failure.
func NewPushService(params Params) (service.PushService, error) {
	var fcm, webPush service.PushService
	var err error

	if cfg := params.Config.Firebase; cfg != nil && cfg.CredentialsPath != "" {
		if fcm, err = NewFirebaseService(params.Ctx, cfg); err != nil {
			return nil, err
		}
		params.Logger.Info("[Notification] FCM transport enabled", slog.String("project_id", cfg.ProjectID))
	}

	if cfg := params.Config.WebPush; cfg != nil && cfg.VAPIDPublicKey != "" {
		if webPush, err = NewWebPushService(cfg); err != nil {
			return nil, err
		}
		params.Logger.Info("[Notification] Web push transport enabled")
	}

	if fcm == nil && webPush == nil {
		params.Logger.Warn("[Notification] No push transport configured")
	}

	return NewRouter(fcm, webPush), nil
}
