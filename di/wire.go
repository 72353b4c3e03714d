//go:build wireinject
// +build wireinject

package di

import (
	"starlight/config"
	"starlight/infras/kafka"
	"starlight/infras/otel"
	"starlight/transport/http"
	"starlight/transport/http/middleware"
	"starlight/transport/http/router"

	articleCatalog "starlight/internal/domains/article/catalog"
	articleService "starlight/internal/domains/article/service"
	bookingService "starlight/internal/domains/booking/service"
	"starlight/internal/domains/booking/submitter"
	diagramCatalog "starlight/internal/domains/diagram/catalog"
	diagramService "starlight/internal/domains/diagram/service"
	journalRepository "starlight/internal/domains/journal/repository"
	journalService "starlight/internal/domains/journal/service"
	"starlight/internal/site"

	articleHandler "starlight/internal/handlers/article"
	bookingHandler "starlight/internal/handlers/booking"
	diagramHandler "starlight/internal/handlers/diagram"
	journalHandler "starlight/internal/handlers/journal"
	siteHandler "starlight/internal/handlers/site"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	kafka.New,
	provideStore,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var journalDomain = wire.NewSet(
	journalRepository.New,
	journalService.New,
)

var bookingDomain = wire.NewSet(
	submitter.New,
	bookingService.New,
)

var contentDomain = wire.NewSet(
	articleCatalog.Default,
	articleService.New,
	diagramCatalog.Default,
	diagramService.New,
)

var domains = wire.NewSet(
	journalDomain,
	bookingDomain,
	contentDomain,
)

var pages = wire.NewSet(
	site.New,
	provideSessions,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	siteHandler.New,
	bookingHandler.New,
	journalHandler.New,
	diagramHandler.New,
	articleHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		pages,
		routing,
		provideServer,
	)

	return &http.HTTP{}, nil
}
