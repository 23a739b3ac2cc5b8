package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/todo/api/transport"
	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/pkg/httpcontext"
	"github.com/fastygo/todo/usecase/taskstore"
)

type TaskHandler struct {
	baseHandler
	store *taskstore.Store
}

func NewTaskHandler(store *taskstore.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary List tasks under the active filter
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	if raw := string(ctx.QueryArgs().Peek("filter")); raw != "" {
		if err := h.store.SetFilter(domain.Filter(raw)); err != nil {
			h.respondError(ctx, err)
			return
		}
	}

	tasks := h.store.Filtered()
	meta := transport.ListMeta{
		Filter: h.store.Filter(),
		Total:  h.store.Len(),
	}
	h.respondMeta(ctx, http.StatusOK, tasks, meta)
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.TaskCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.store.Add(stdCtx, req.Title)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if task == nil {
		// whitespace-only title: silently rejected, nothing was created
		h.respondSuccess(ctx, http.StatusNoContent, nil)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, task)
}

// @Summary Toggle task completion
// @Tags tasks
// @Router /api/v1/tasks/{id}/toggle [post]
func (h *TaskHandler) Toggle(ctx *fasthttp.RequestCtx) {
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.store.Toggle(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.store.Remove(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Replace the active filter
// @Tags tasks
// @Router /api/v1/filter [put]
func (h *TaskHandler) SetFilter(ctx *fasthttp.RequestCtx) {
	var req transport.FilterRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	if err := h.store.SetFilter(domain.Filter(req.Filter)); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{"filter": h.store.Filter()})
}

func (h *TaskHandler) taskID(ctx *fasthttp.RequestCtx) (int64, bool) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid task id", nil))
		return 0, false
	}
	return id, true
}
