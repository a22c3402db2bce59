package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/Pawankumarhr/prime-trade/api/transport"
	"github.com/Pawankumarhr/prime-trade/domain"
	"github.com/Pawankumarhr/prime-trade/pkg/httpcontext"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload interface{}) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if payload == nil {
		return
	}
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondInvalid(ctx *fasthttp.RequestCtx, message string) {
	h.respondJSON(ctx, http.StatusBadRequest,
		transport.NewErrorResponse(string(domain.ErrCodeInvalid), message))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, code, message := mapError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.respondJSON(ctx, status, transport.NewErrorResponse(code, message))
}

// userID reads the identity the auth middleware stamped after verifying
// the bearer token.
func (h baseHandler) userID(ctx *fasthttp.RequestCtx) string {
	userID := string(ctx.Request.Header.Peek("X-User-ID"))
	if userID == "" {
		h.respondJSON(ctx, http.StatusUnauthorized,
			transport.NewErrorResponse(string(domain.ErrCodeUnauthorized), "unauthorized"))
	}
	return userID
}

// mapError translates the error taxonomy into stable statuses with
// generic messages; internal detail stays in logs.
func mapError(err error) (int, string, string) {
	var dErr *domain.Error
	if errors.As(err, &dErr) {
		switch dErr.Code {
		case domain.ErrCodeInvalid, domain.ErrCodeEmailTaken:
			return http.StatusBadRequest, string(dErr.Code), dErr.Message
		case domain.ErrCodeInvalidCredentials, domain.ErrCodeUnauthorized:
			return http.StatusUnauthorized, string(dErr.Code), dErr.Message
		case domain.ErrCodeNotFound:
			return http.StatusNotFound, string(dErr.Code), dErr.Message
		case domain.ErrCodeUpstream:
			return http.StatusBadGateway, string(dErr.Code), dErr.Message
		}
	}
	return http.StatusInternalServerError, string(domain.ErrCodeInternal), "internal error"
}
