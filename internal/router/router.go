package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/todo/api/handler"
)

type Handlers struct {
	Task   *apiHandler.TaskHandler
	Theme  *apiHandler.ThemeHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)
	r.GET("/api/v1/uptime", handlers.Health.Uptime)

	// Read routes
	r.GET("/api/v1/tasks", handlers.Task.List)
	r.GET("/api/v1/theme", handlers.Theme.Get)

	// Mutating routes, guarded when a secret is configured
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.Create))
	r.POST("/api/v1/tasks/{id}/toggle", authMiddleware(handlers.Task.Toggle))
	r.DELETE("/api/v1/tasks/{id}", authMiddleware(handlers.Task.Delete))
	r.PUT("/api/v1/filter", authMiddleware(handlers.Task.SetFilter))
	r.PUT("/api/v1/theme", authMiddleware(handlers.Theme.Update))
	r.POST("/api/v1/theme/toggle", authMiddleware(handlers.Theme.Toggle))

	return r
}
