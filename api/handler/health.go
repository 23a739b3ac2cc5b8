package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/todo/api/transport"
	"github.com/fastygo/todo/internal/infrastructure/monitor"
	"github.com/fastygo/todo/internal/services/uptime"
	"github.com/fastygo/todo/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
	uptime  *uptime.Counter
}

func NewHealthHandler(mon *monitor.Monitor, counter *uptime.Counter, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
		uptime:      counter,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"storage": map[string]interface{}{
			"backend": status.Backend,
			"online":  status.Storage,
			"tasks":   status.TaskCount,
		},
		"uptime_seconds": int64(h.uptime.Elapsed().Seconds()),
	}

	if status.Storage {
		h.respondSuccess(ctx, http.StatusOK, payload)
		return
	}
	h.respondJSON(ctx, http.StatusServiceUnavailable, transport.NewError("DEGRADED", "storage unhealthy", payload))
}

// @Summary Session uptime
// @Tags health
// @Router /api/v1/uptime [get]
func (h *HealthHandler) Uptime(ctx *fasthttp.RequestCtx) {
	elapsed := h.uptime.Elapsed()
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"uptime_seconds": int64(elapsed.Seconds()),
		"ticks":          h.uptime.Ticks(),
	})
}
