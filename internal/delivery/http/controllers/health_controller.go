package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"techscene/internal/delivery/http/helpers"
	"techscene/internal/lib/logger/sl"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthStatus is the data for GET /healthz.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type HealthController struct {
	Logger *slog.Logger
	DB     Pinger
}

func NewHealthController(logger *slog.Logger, db Pinger) *HealthController {
	return &HealthController{Logger: logger, DB: db}
}

// Health godoc
// @Summary Liveness and database reachability
// @Description Always 200 while the process is serving; listings fail open, so a down database is reported rather than fatal.
// @Tags ops
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{Status: "ok", Database: "ok"}
	if err := c.DB.PingContext(r.Context()); err != nil {
		c.Logger.WarnContext(r.Context(), "database ping failed", sl.Err(err))
		status.Database = "unreachable"
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, status)
}
