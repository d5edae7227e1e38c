// Package dashboard serves the interactive launch dashboard: a payload mass
// range control driving three chart panels, plus health and metrics
// endpoints.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/launch-data-pipeline/internal/domain"
	"github.com/couchcryptid/launch-data-pipeline/internal/observability"
)

// Server serves a fixed dataset over HTTP. The dataset is joined once at
// startup; the range control filters it per request.
type Server struct {
	echo            *echo.Echo
	data            *domain.Dataset
	logger          *slog.Logger
	metrics         *observability.Metrics
	addr            string
	shutdownTimeout time.Duration
}

// NewServer wires routes and middleware around the dataset.
func NewServer(data *domain.Dataset, addr string, shutdownTimeout time.Duration,
	logger *slog.Logger, metrics *observability.Metrics) *Server {

	s := &Server{
		data:            data,
		logger:          logger,
		metrics:         metrics,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"status", v.Status,
				"method", v.Method,
				"uri", v.URI,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", attrs...)
			case v.Status >= 400:
				logger.Warn("http request", attrs...)
			default:
				logger.Info("http request", attrs...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())

	e.GET("/", s.handleIndex)
	e.GET("/healthz", s.handleHealthz)
	e.GET("/readyz", s.handleReadyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	s.echo = e
	return s
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.metrics.DashboardServing.Set(1)
		errCh <- s.echo.Start(s.addr)
	}()
	s.logger.Info("dashboard listening", "addr", s.addr, "launches", len(s.data.Launches))

	select {
	case err := <-errCh:
		s.metrics.DashboardServing.Set(0)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("dashboard server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down dashboard")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	err := s.echo.Shutdown(shutdownCtx)
	s.metrics.DashboardServing.Set(0)
	if err != nil {
		return fmt.Errorf("dashboard shutdown: %w", err)
	}
	return nil
}

// handleIndex renders the three panels for the requested payload mass range.
// Absent bounds default to the dataset's full range.
func (s *Server) handleIndex(c echo.Context) error {
	s.metrics.DashboardRequests.WithLabelValues("index").Inc()

	lo, hi := s.data.MassRange()
	var err error
	if raw := c.QueryParam("min"); raw != "" {
		if lo, err = strconv.ParseFloat(raw, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min parameter")
		}
	}
	if raw := c.QueryParam("max"); raw != "" {
		if hi, err = strconv.ParseFloat(raw, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid max parameter")
		}
	}
	if lo > hi {
		return echo.NewHTTPError(http.StatusBadRequest, "min exceeds max")
	}

	filtered := s.data.FilterByMass(lo, hi)
	page := buildPage(filtered, lo, hi)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return page.Render(c.Response())
}

func (s *Server) handleHealthz(c echo.Context) error {
	s.metrics.DashboardRequests.WithLabelValues("healthz").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadyz reports ready only once the dataset holds launches, so a
// deployment with a failed join is never routed traffic.
func (s *Server) handleReadyz(c echo.Context) error {
	s.metrics.DashboardRequests.WithLabelValues("readyz").Inc()
	if len(s.data.Launches) == 0 {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "no data"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
