package kvstore

import (
	"context"
	"errors"
	"fmt"
	"starlight/infras/otel"
	"starlight/shared/constant"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisStore struct {
	client *redis.Client
	otel   otel.Otel
}

// NewRedis stores values as plain Redis strings. Update uses WATCH/MULTI so
// a concurrent writer forces a retry instead of a lost update.
func NewRedis(client *redis.Client, ot otel.Otel) Store {
	return &redisStore{
		client: client,
		otel:   ot,
	}
}

// Get implements Store.
func (store *redisStore) Get(ctx context.Context, key string) (value []byte, err error) {
	ctx, scope := store.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{otelAttrKey: key, otelAttrBackend: constant.JournalBackendRedis})

	value, err = store.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisStore", "Get").Msg("failed to get value")

		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Update implements Store.
func (store *redisStore) Update(ctx context.Context, key string, fn UpdateFunc) (err error) {
	ctx, scope := store.otel.NewScope(ctx, otelScopeName, otelScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{otelAttrKey: key, otelAttrBackend: constant.JournalBackendRedis})

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		found := true

		if errors.Is(err, redis.Nil) {
			current, found, err = nil, false, nil
		}

		if err != nil {
			return fmt.Errorf("failed to read value: %w", err)
		}

		next, err := fn(current, found)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)

			return nil
		})

		return err //nolint:wrapcheck
	}

	for round := range maxOptimisticRounds {
		err = store.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}

		if !errors.Is(err, redis.TxFailedErr) {
			log.Error().Err(err).Str("key", key).Str("RedisStore", "Update").Msg("failed to update value")

			return fmt.Errorf("failed to update value: %w", err)
		}

		log.Warn().Str("key", key).Int("round", round+1).Msg("concurrent update detected, retrying")
	}

	return ErrConflict
}
