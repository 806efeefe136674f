// Package worker serves the notifier's Pub/Sub push endpoint.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"spoolmeter/config"
	"spoolmeter/internal/delivery"
	"spoolmeter/internal/delivery/middleware"
	"spoolmeter/internal/delivery/worker/handler"
	"spoolmeter/internal/domain/lifecycle"
	"spoolmeter/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Registry    *prometheus.Registry `optional:"true"`
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	if params.Registry != nil && params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{})))
	}

	e.POST("/push", params.PushHandler.HandlePush)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("[Worker] Starting HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("[Worker] Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
