package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

var errNoDatabase = errors.New("database not configured")

// Pinger is anything whose reachability the health check reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	db      Pinger
	timeout time.Duration
	enabled bool
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		timeout: 5 * time.Second,
		enabled: true,
	}
	if s.DB != nil {
		h.db = s.DB
	}
	if obs := s.Config.Observability; obs != nil {
		h.enabled = obs.HealthChecks.Enabled
		if obs.HealthChecks.Timeout > 0 {
			h.timeout = obs.HealthChecks.Timeout
		}
	}
	return h
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth pings the database. It answers 200 when every check passes
// and 503 otherwise. With health checks disabled it only reports liveness.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().Str("operation", "health_check").Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]checkResult{},
	}

	if !h.enabled {
		return c.JSON(http.StatusOK, response)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	dbStart := time.Now()
	check := checkResult{Status: "healthy"}
	var err error
	if h.db == nil {
		err = errNoDatabase
	} else {
		err = h.db.Ping(ctx)
	}
	check.ResponseTime = time.Since(dbStart).String()

	if err != nil {
		check.Status = "unhealthy"
		check.Error = err.Error()
		response.Status = "unhealthy"
		logger.Error().Err(err).Dur("response_time", time.Since(dbStart)).Msg("database health check failed")
	} else {
		logger.Debug().Dur("response_time", time.Since(dbStart)).Msg("database health check passed")
	}
	response.Checks["database"] = check

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
	}

	return c.JSON(status, response)
}
