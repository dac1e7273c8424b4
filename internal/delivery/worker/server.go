package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"passport/config"
	"passport/internal/delivery"
	"passport/internal/delivery/middleware"
	"passport/internal/delivery/worker/handler"
	"passport/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPushPath = "/push"

type workerServer struct {
	hostPort string
	logger   *slog.Logger
	server   *echo.Echo
}

// ServerParams holds dependencies for the mail worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the HTTP server that receives email events from Pub/Sub.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	// 4. Push envelopes carry a rendered HTML body
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	port, pushPath := listenSettings(params.Cfg)
	e.POST(pushPath, params.PushHandler.HandlePush)

	srv := &workerServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		logger:   params.Logger.With(slog.String("push_path", pushPath)),
		server:   e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// listenSettings prefers the mailWorker section and falls back to http.port.
func listenSettings(cfg *config.Config) (port int, pushPath string) {
	port, pushPath = cfg.HTTP.Port, defaultPushPath
	if mw := cfg.MailWorker; mw != nil {
		if mw.Port > 0 {
			port = mw.Port
		}
		if mw.PushPath != "" {
			pushPath = mw.PushPath
		}
	}

	return port, pushPath
}

func (s *workerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting mail worker HTTP server", slog.String("host_port", s.hostPort))
	if err := s.server.Start(s.hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down mail worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
