// Package api serves the account and device facing HTTP API.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"spoolmeter/config"
	"spoolmeter/internal/delivery"
	apimiddleware "spoolmeter/internal/delivery/api/middleware"
	"spoolmeter/internal/delivery/api/router"
	"spoolmeter/internal/delivery/api/validator"
	"spoolmeter/internal/delivery/middleware"
	"spoolmeter/internal/domain/lifecycle"
	"spoolmeter/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params.Cfg, params.Logger, params.RouterParams),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the configured echo instance with every route mounted.
func NewEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: recover first, request ID before the logger.
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(middleware.NewRequestIDMiddleware(logger).Process)
	echoServer.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	echoServer.Use(echomiddleware.CORS())
	if cfg.HTTP.MaxRequestBodySize != "" {
		echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	echoServer.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	echoServer.Validator = validator.New()

	r := router.NewRouter(routerParams)
	r.RegisterRoutes(echoServer)
	r.RegisterMetricsRoute(echoServer)

	return echoServer
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("[HTTP] Starting API server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("[HTTP] Shutting down API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
