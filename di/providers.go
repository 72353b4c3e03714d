package di

import (
	"context"
	"starlight/config"
	"starlight/infras/kafka"
	"starlight/infras/otel"
	"starlight/infras/storage"
	"starlight/internal/session"
	"starlight/internal/site"
	"starlight/shared/kvstore"
	"starlight/transport/http"
	"starlight/transport/http/router"

	"github.com/rs/zerolog/log"
)

func provideStore(cfg *config.Config, ot otel.Otel) kvstore.Store {
	store := storage.MustNew(cfg, ot)

	if err := storage.Probe(context.Background(), store); err != nil {
		log.Warn().Err(err).Msg("Journal store did not answer the start-up probe")
	}

	return store
}

func provideSessions(cfg *config.Config, s *site.Site) *session.Manager {
	return session.New(cfg, s.NewDocument)
}

// provideServer builds the server and releases the producer and tracer
// once it drains.
func provideServer(cfg *config.Config, r router.Router, notifier kafka.Client, ot otel.Otel) *http.HTTP {
	server := http.New(cfg, r)

	server.OnShutdown(func(context.Context) error {
		return notifier.Close() //nolint:wrapcheck
	})
	server.OnShutdown(ot.Shutdown)

	return server
}
