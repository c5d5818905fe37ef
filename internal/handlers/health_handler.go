package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"family-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 2 * time.Second

// Pinger is the storage side of /health.
type Pinger interface {
	Ping(ctx context.Context) error
	Driver() string
}

type HealthCheckHandler struct {
	store Pinger
}

func NewHealthCheckHandler(store Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{store: store}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// HealthCheck pings the database with a short deadline. An unreachable
// database answers 503 SYSTEM_003.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "Health check ping failed", "driver", h.store.Driver(), "error", err)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status:   "healthy",
		Database: h.store.Driver(),
		Time:     time.Now().UTC().Format(time.RFC3339),
	})
}
