//go:build wireinject
// +build wireinject

package di

import (
	"todoapp/config"
	"todoapp/infras/database"
	"todoapp/infras/otel"
	"todoapp/infras/redis"
	healthHandler "todoapp/internal/handlers/health"
	pageHandler "todoapp/internal/handlers/page"
	todoHandler "todoapp/internal/handlers/todo"
	"todoapp/shared/cache"
	"todoapp/transport/http"
	"todoapp/transport/http/middleware"
	"todoapp/transport/http/router"

	todoRepository "todoapp/internal/domains/todo/repository"
	todoSeeder "todoapp/internal/domains/todo/seeder"
	todoService "todoapp/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	pageHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeSeeder() *todoSeeder.Seeder {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		todoRepository.New,
		todoSeeder.New,
	)

	return &todoSeeder.Seeder{}
}
