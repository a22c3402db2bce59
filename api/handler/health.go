package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/Pawankumarhr/prime-trade/api/transport"
	"github.com/Pawankumarhr/prime-trade/internal/monitor"
	"github.com/Pawankumarhr/prime-trade/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// @Summary Liveness check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	payload := transport.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	}

	if h.monitor != nil && !h.monitor.GetStatus().Store {
		payload.Status = "degraded"
		h.respondJSON(ctx, http.StatusServiceUnavailable, payload)
		return
	}
	h.respondJSON(ctx, http.StatusOK, payload)
}
