package router

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"todolist/internal/handlers/task"
	"todolist/transport/http/middleware"
)

type DomainHandlers struct {
	Task task.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.Recoverer,
		r.Middleware.RequestID,
		r.Middleware.Logging,
		r.Middleware.Tracing,
		r.Middleware.CORS(),
		r.Middleware.RateLimit(),
	)

	r.DomainHandlers.Task.Router(router)
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
