//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"todolist/config"
	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/infras/redis"
	taskRepository "todolist/internal/domains/task/repository"
	taskService "todolist/internal/domains/task/service"
	taskHandler "todolist/internal/handlers/task"
	"todolist/internal/views"
	"todolist/shared/cache"
	"todolist/transport/http"
	"todolist/transport/http/middleware"
	"todolist/transport/http/router"
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var taskDomain = wire.NewSet(
	taskRepository.New,
	taskService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	views.New,
	taskHandler.New,
	router.New,
)

func InitializeService(cfg *config.Config) (*http.HTTP, func(), error) {
	wire.Build(
		infrastructures,
		middlewares,
		sharedHelpers,
		taskDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}
