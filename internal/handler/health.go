package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/newsroom/internal/middleware"
	"github.com/deppfellow/newsroom/internal/server"
	"github.com/labstack/echo/v4"
)

// Pinger is implemented by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

var errNoDatabase = errors.New("database not configured")

// checkFailedMessage is reported for a failed check; the cause is logged only.
const checkFailedMessage = "check failed"

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	db Pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}
	if s.DB != nil {
		h.db = s.DB.Pool
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

// CheckHealth returns 200 when every configured check passes and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult),
	}

	if obs.HealthCheckEnabled("database") {
		ctx, cancel := context.WithTimeout(c.Request().Context(), obs.HealthChecks.Timeout)
		defer cancel()

		dbStart := time.Now()
		err := h.ping(ctx)
		elapsed := time.Since(dbStart)

		if err != nil {
			response.Status = "unhealthy"
			response.Checks["database"] = checkResult{
				Status:       "unhealthy",
				ResponseTime: elapsed.String(),
				Error:        checkFailedMessage,
			}

			logger.Error().Err(err).Dur("response_time", elapsed).Msg("database health check failed")
			h.recordFailure("database", elapsed, err)
		} else {
			response.Checks["database"] = checkResult{
				Status:       "healthy",
				ResponseTime: elapsed.String(),
			}

			logger.Debug().Dur("response_time", elapsed).Msg("database health check passed")
		}
	}

	if response.Status != "healthy" {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) ping(ctx context.Context) error {
	if h.db == nil {
		return errNoDatabase
	}
	return h.db.Ping(ctx)
}

func (h *HealthHandler) recordFailure(check string, elapsed time.Duration, err error) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	h.server.LoggerService.GetApplication().RecordCustomEvent(
		"HealthCheckError",
		map[string]interface{}{
			"check_type":       check,
			"operation":        "health_check",
			"error_type":       check + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		},
	)
}
