package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/Pawankumarhr/prime-trade/pkg/httpcontext"
	analyticsUC "github.com/Pawankumarhr/prime-trade/usecase/analytics"
	insightUC "github.com/Pawankumarhr/prime-trade/usecase/insight"
)

type AnalyticsHandler struct {
	baseHandler
	analytics *analyticsUC.UseCase
	insights  *insightUC.UseCase
}

func NewAnalyticsHandler(analytics *analyticsUC.UseCase, insights *insightUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		analytics:   analytics,
		insights:    insights,
	}
}

// @Summary Productivity metrics for the caller's tasks
// @Tags analytics
// @Router /analytics [get]
func (h *AnalyticsHandler) Summary(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	summary, err := h.analytics.Overview(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, summary)
}

// @Summary Rule-derived observations and a suggestion
// @Tags analytics
// @Router /insights [get]
func (h *AnalyticsHandler) Insights(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	report, err := h.insights.Report(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, report)
}
