package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/todo/api/transport"
	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/pkg/httpcontext"
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

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondMeta(ctx, status, data, nil)
}

func (h baseHandler) respondMeta(ctx *fasthttp.RequestCtx, status int, data interface{}, meta interface{}) {
	if status == http.StatusNoContent {
		ctx.SetStatusCode(status)
		return
	}
	h.respondJSON(ctx, status, transport.NewSuccess(data, meta))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, code := mapError(err)
	h.respondJSON(ctx, status, transport.NewError(code, err.Error(), nil))
}

func mapError(err error) (int, string) {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return http.StatusBadRequest, string(domain.ErrCodeInvalid)
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound, string(domain.ErrCodeNotFound)
	case domain.IsDomainError(err, domain.ErrCodeUnauthorized):
		return http.StatusUnauthorized, string(domain.ErrCodeUnauthorized)
	default:
		return http.StatusInternalServerError, string(domain.ErrCodeInternal)
	}
}
