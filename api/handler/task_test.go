package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/todo/api/handler"
	"github.com/fastygo/todo/internal/testutil"
	"github.com/fastygo/todo/usecase/taskstore"
)

func newTaskHandler(t *testing.T) (*handler.TaskHandler, *taskstore.Store) {
	t.Helper()
	store := taskstore.New(context.Background(), testutil.NewFakeKV(), nil)
	return handler.NewTaskHandler(store, nil, nil), store
}

func doRequest(method, uri string, body []byte) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	return ctx
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	if err := json.Unmarshal(ctx.Response.Body(), &envelope); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, ctx.Response.Body())
	}
	return envelope
}

func TestCreateTask(t *testing.T) {
	h, store := newTaskHandler(t)

	ctx := doRequest(http.MethodPost, "/api/v1/tasks", []byte(`{"title":"  Buy milk "}`))
	h.Create(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusCreated {
		t.Fatalf("status = %d, want 201", got)
	}
	envelope := decodeEnvelope(t, ctx)
	data, _ := envelope["data"].(map[string]interface{})
	if data["title"] != "Buy milk" {
		t.Errorf("created title = %v, want trimmed %q", data["title"], "Buy milk")
	}
	if store.Len() != 1 {
		t.Errorf("store has %d tasks, want 1", store.Len())
	}
}

func TestCreateTaskWhitespaceTitle(t *testing.T) {
	h, store := newTaskHandler(t)

	ctx := doRequest(http.MethodPost, "/api/v1/tasks", []byte(`{"title":"   "}`))
	h.Create(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusNoContent {
		t.Fatalf("status = %d, want 204 silent rejection", got)
	}
	if store.Len() != 0 {
		t.Errorf("store has %d tasks, want 0", store.Len())
	}
}

func TestCreateTaskBadPayload(t *testing.T) {
	h, _ := newTaskHandler(t)

	ctx := doRequest(http.MethodPost, "/api/v1/tasks", []byte(`not json`))
	h.Create(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestListWithFilterParam(t *testing.T) {
	h, store := newTaskHandler(t)
	bg := context.Background()

	a, _ := store.Add(bg, "A")
	if _, err := store.Add(bg, "B"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := store.Toggle(bg, a.ID); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	ctx := doRequest(http.MethodGet, "/api/v1/tasks?filter=active", nil)
	h.List(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusOK {
		t.Fatalf("status = %d, want 200", got)
	}
	envelope := decodeEnvelope(t, ctx)
	data, _ := envelope["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("active view has %d tasks, want 1", len(data))
	}
	task, _ := data[0].(map[string]interface{})
	if task["title"] != "B" {
		t.Errorf("active task = %v, want B", task["title"])
	}
	meta, _ := envelope["meta"].(map[string]interface{})
	if meta["filter"] != "active" {
		t.Errorf("meta filter = %v, want active", meta["filter"])
	}
	if meta["total"] != float64(2) {
		t.Errorf("meta total = %v, want 2", meta["total"])
	}
}

func TestListRejectsUnknownFilter(t *testing.T) {
	h, _ := newTaskHandler(t)

	ctx := doRequest(http.MethodGet, "/api/v1/tasks?filter=bogus", nil)
	h.List(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestToggleMissingTask(t *testing.T) {
	h, _ := newTaskHandler(t)

	ctx := doRequest(http.MethodPost, "/api/v1/tasks/77/toggle", nil)
	ctx.SetUserValue("id", "77")
	h.Toggle(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", got)
	}
}

func TestDeleteIsSilentOnMissing(t *testing.T) {
	h, _ := newTaskHandler(t)

	ctx := doRequest(http.MethodDelete, "/api/v1/tasks/123", nil)
	ctx.SetUserValue("id", "123")
	h.Delete(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", got)
	}
}

func TestDeleteMalformedID(t *testing.T) {
	h, _ := newTaskHandler(t)

	ctx := doRequest(http.MethodDelete, "/api/v1/tasks/abc", nil)
	ctx.SetUserValue("id", "abc")
	h.Delete(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestSetFilterEndpoint(t *testing.T) {
	h, store := newTaskHandler(t)

	ctx := doRequest(http.MethodPut, "/api/v1/filter", []byte(`{"filter":"completed"}`))
	h.SetFilter(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusOK {
		t.Fatalf("status = %d, want 200", got)
	}
	if got := string(store.Filter()); got != "completed" {
		t.Errorf("store filter = %q, want completed", got)
	}

	ctx = doRequest(http.MethodPut, "/api/v1/filter", []byte(`{"filter":"nope"}`))
	h.SetFilter(ctx)
	if got := ctx.Response.StatusCode(); got != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}
	if got := string(store.Filter()); got != "completed" {
		t.Errorf("rejected set changed filter to %q", got)
	}
}
