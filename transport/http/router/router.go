package router

import (
	"net/http"
	"todoapp/config"
	"todoapp/internal/handlers/health"
	"todoapp/internal/handlers/page"
	"todoapp/internal/handlers/todo"
	"todoapp/transport/http/middleware"

	// registers the API description served by the swagger UI
	_ "todoapp/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Todo   todo.Handler
	Page   page.Handler
	Health health.Handler
}

type Router struct {
	Config         *config.Config
	Middleware     middleware.AppMiddleware
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Handle("/metrics", middleware.MetricsHandler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		if r.Config.App.CORS.Enable {
			routerGroup.Use(r.cors())
		}

		r.DomainHandlers.Todo.Router(routerGroup)
	})

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.SecurityHeaders)

		r.DomainHandlers.Page.Router(routerGroup)
	})
}

func (r *Router) cors() func(http.Handler) http.Handler {
	corsConfig := r.Config.App.CORS

	return cors.Handler(cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	})
}

func New(cfg *config.Config, mw middleware.AppMiddleware, domainHandlers DomainHandlers) Router {
	return Router{
		Config:         cfg,
		Middleware:     mw,
		DomainHandlers: domainHandlers,
	}
}
