// Package storage picks the journal backend named by configuration and
// builds only the client that backend needs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"starlight/config"
	"starlight/helper"
	"starlight/infras/disk"
	"starlight/infras/otel"
	"starlight/infras/postgres"
	"starlight/infras/redis"
	"starlight/infras/s3"
	"starlight/shared/constant"
	"starlight/shared/kvstore"

	"github.com/rs/zerolog/log"
)

var ErrUnknownBackend = errors.New("unknown journal backend")

// New returns the Store for cfg.Journal.Backend.
func New(cfg *config.Config, ot otel.Otel) (kvstore.Store, error) {
	backend := cfg.Journal.Backend

	log.Info().Str("backend", backend).Msg("Initializing journal store")

	switch backend {
	case constant.JournalBackendMemory, constant.Empty:
		return kvstore.NewMemory(), nil
	case constant.JournalBackendDiskv:
		return kvstore.NewDisk(disk.New(cfg, "")), nil
	case constant.JournalBackendRedis:
		client, err := redis.New(cfg)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return kvstore.NewRedis(client, ot), nil
	case constant.JournalBackendPostgres:
		if cfg.DB.Postgres.AutoMigrate {
			if err := helper.Up(cfg); err != nil {
				return nil, fmt.Errorf("failed to migrate journal database: %w", err)
			}
		}

		db, err := postgres.New(cfg)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return kvstore.NewPostgres(db, ot), nil
	case constant.JournalBackendS3:
		client, err := s3.New(cfg)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return kvstore.NewS3(client, cfg.External.S3.BucketName, ot), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// MustNew is New for process start-up: a misconfigured backend falls back to
// memory so the site still renders.
func MustNew(cfg *config.Config, ot otel.Otel) kvstore.Store {
	store, err := New(cfg, ot)
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.Journal.Backend).Msg("Journal store unavailable, falling back to memory")

		return kvstore.NewMemory()
	}

	return store
}

// Probe reports whether the store answers a read.
func Probe(ctx context.Context, store kvstore.Store) error {
	_, err := store.Get(ctx, "starlight:probe")
	if err == nil || errors.Is(err, kvstore.ErrNotFound) {
		return nil
	}

	return err //nolint:wrapcheck
}
