package router

import (
	"net/http"
	"starlight/config"
	"starlight/internal/handlers/article"
	"starlight/internal/handlers/booking"
	"starlight/internal/handlers/diagram"
	"starlight/internal/handlers/journal"
	"starlight/internal/handlers/site"
	siteAssets "starlight/internal/site"
	"starlight/transport/http/middleware"

	// swagger docs registration
	_ "starlight/docs"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Site    site.Handler
	Booking booking.Handler
	Journal journal.Handler
	Diagram diagram.Handler
	Article article.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID, chiMiddleware.Recoverer)

	if r.Config.App.TrustProxy {
		router.Use(chiMiddleware.RealIP)
	}

	router.Use(r.Middleware.Tracing)

	if r.Config.App.CORS.Enable {
		corsCfg := r.Config.App.CORS

		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsCfg.AllowedOrigins,
			AllowedMethods:   corsCfg.AllowedMethods,
			AllowedHeaders:   corsCfg.AllowedHeaders,
			AllowCredentials: corsCfg.AllowCredentials,
			MaxAge:           corsCfg.MaxAgeSeconds,
		}))
	}

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServerFS(siteAssets.Assets())))

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.Visitor)

		r.DomainHandlers.Site.Router(routerGroup)

		routerGroup.Route("/v1", func(v1 chi.Router) {
			r.DomainHandlers.Booking.Router(v1)
			r.DomainHandlers.Journal.Router(v1)
			r.DomainHandlers.Diagram.Router(v1)
			r.DomainHandlers.Article.Router(v1)
		})
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
		Config:         config,
	}
}
