package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/todo/api/transport"
	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/pkg/httpcontext"
	themeUC "github.com/fastygo/todo/usecase/theme"
)

type ThemeHandler struct {
	baseHandler
	manager *themeUC.Manager
}

func NewThemeHandler(manager *themeUC.Manager, adapter *httpcontext.Adapter, logger *zap.Logger) *ThemeHandler {
	return &ThemeHandler{
		baseHandler: newBaseHandler(adapter, logger),
		manager:     manager,
	}
}

// @Summary Current theme
// @Tags theme
// @Router /api/v1/theme [get]
func (h *ThemeHandler) Get(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{"theme": h.manager.Current()})
}

// @Summary Replace theme
// @Tags theme
// @Router /api/v1/theme [put]
func (h *ThemeHandler) Update(ctx *fasthttp.RequestCtx) {
	var req transport.ThemeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.manager.Set(stdCtx, domain.Theme(req.Theme)); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{"theme": h.manager.Current()})
}

// @Summary Toggle theme
// @Tags theme
// @Router /api/v1/theme/toggle [post]
func (h *ThemeHandler) Toggle(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	next, err := h.manager.Toggle(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{"theme": next})
}
