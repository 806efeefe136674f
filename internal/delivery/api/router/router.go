// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"spoolmeter/config"
	"spoolmeter/internal/delivery/api/middleware"
	"spoolmeter/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TelemetryHandler       *handler.TelemetryHandler
	SpoolMeterHandler      *handler.SpoolMeterHandler
	PushDestinationHandler *handler.PushDestinationHandler
	AuthMiddleware         *middleware.AuthMiddleware
	Config                 *config.Config
	Registry               *prometheus.Registry `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	telemetryHandler       *handler.TelemetryHandler
	spoolMeterHandler      *handler.SpoolMeterHandler
	pushDestinationHandler *handler.PushDestinationHandler
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
	registry               *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		telemetryHandler:       params.TelemetryHandler,
		spoolMeterHandler:      params.SpoolMeterHandler,
		pushDestinationHandler: params.PushDestinationHandler,
		authMiddleware:         params.AuthMiddleware,
		config:                 params.Config,
		registry:               params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Spool meters authenticate with their own credential in the body.
	telemetryGroup := apiV1.Group("/telemetry")
	{
		telemetryGroup.PUT("/remaining-amount", r.telemetryHandler.UpdateRemainingAmount)
		telemetryGroup.PUT("/battery-level", r.telemetryHandler.UpdateBatteryLevel)
	}

	spoolMetersGroup := apiV1.Group("/spoolmeters", r.authMiddleware.Authenticate)
	{
		spoolMetersGroup.GET("/:id/usage", r.spoolMeterHandler.GetUsage)
		spoolMetersGroup.GET("/:id/prediction", r.spoolMeterHandler.GetPrediction)
	}

	destinationsGroup := apiV1.Group("/push-destinations", r.authMiddleware.Authenticate)
	{
		destinationsGroup.POST("", r.pushDestinationHandler.RegisterDestination)
		destinationsGroup.GET("", r.pushDestinationHandler.ListDestinations)
		destinationsGroup.DELETE("/:id", r.pushDestinationHandler.RemoveDestination)
	}
}

// RegisterMetricsRoute exposes the registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.registry == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
}
