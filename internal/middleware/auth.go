package middleware

import (
	"encoding/json"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/Pawankumarhr/prime-trade/api/transport"
	"github.com/Pawankumarhr/prime-trade/domain"
	"github.com/Pawankumarhr/prime-trade/pkg/token"
)

// Auth validates the bearer session token and stamps the verified subject
// into X-User-ID for downstream handlers. Any inbound value of that header
// is overwritten, verified or not.
func Auth(codec *token.Codec, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			ctx.Request.Header.Del("X-User-ID")

			raw := extractToken(ctx)
			if raw == "" {
				reject(ctx)
				return
			}

			userID, err := codec.Verify(raw)
			if err != nil {
				logger.Warn("session token rejected", zap.Error(err))
				reject(ctx)
				return
			}

			ctx.Request.Header.Set("X-User-ID", userID)
			next(ctx)
		}
	}
}

func reject(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
	body, _ := json.Marshal(transport.NewErrorResponse(string(domain.ErrCodeUnauthorized), "invalid token"))
	ctx.SetBody(body)
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
