package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rotenkr/roten-api/internal/apperr"
	mw "github.com/rotenkr/roten-api/pkg/middleware"
	pkgserver "github.com/rotenkr/roten-api/pkg/server"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg           *Config
	healthChecker pkgserver.HealthChecker
	ctx           context.Context
	stop          context.CancelFunc
}

func New(cfg *Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	return &Server{
		Echo: e,
		cfg:  cfg,
		ctx:  ctx,
		stop: stop,
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.RequestID())
	s.Echo.Use(mw.Logger())
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))
	return s
}

// SetupHealthChecks registers /healthz backed by the given checker. The
// checker is bound late so the pg backend can report store reachability.
func (s *Server) SetupHealthChecks(hc pkgserver.HealthChecker) *Server {
	s.healthChecker = hc
	s.Echo.GET("/healthz", func(c echo.Context) error {
		if !s.healthChecker.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi() *Server {
	s.Echo.GET("/swagger/*", echoSwagger.WrapHandler)
	return s
}

// Context is canceled on the first interrupt signal.
func (s *Server) Context() context.Context {
	return s.ctx
}

// ShutdownSignal lets callers clean up resources when shutdown starts.
func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.ctx.Done()
}

func (s *Server) Start() error {
	defer s.stop()

	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Echo.Logger.Fatal("shutting down the server")
		}
	}()

	<-s.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := s.Echo.Shutdown(ctx); err != nil {
		s.Echo.Logger.Fatal(err)
		return err
	}
	return nil
}
