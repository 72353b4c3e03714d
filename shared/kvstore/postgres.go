package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"starlight/infras/otel"
	"starlight/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	queryGetValue     = `SELECT value FROM kv_entries WHERE key = $1 AND value IS NOT NULL`
	queryEnsureKey    = `INSERT INTO kv_entries (key) VALUES ($1) ON CONFLICT (key) DO NOTHING`
	queryLockValue    = `SELECT value FROM kv_entries WHERE key = $1 FOR UPDATE`
	queryUpdateValue  = `UPDATE kv_entries SET value = $2, updated_at = NOW() WHERE key = $1`
	errUpdateRollback = "failed to rollback update"
)

type postgresStore struct {
	db   *sqlx.DB
	otel otel.Otel
}

// NewPostgres keeps values in the kv_entries table. Update locks the row for
// the duration of the read-modify-write.
func NewPostgres(db *sqlx.DB, ot otel.Otel) Store {
	return &postgresStore{
		db:   db,
		otel: ot,
	}
}

func (store *postgresStore) Get(ctx context.Context, key string) (value []byte, err error) {
	ctx, scope := store.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{otelAttrKey: key, otelAttrBackend: constant.JournalBackendPostgres})

	err = store.db.GetContext(ctx, &value, queryGetValue, key)
	if err == sql.ErrNoRows { //nolint:errorlint
		return nil, ErrNotFound
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Get").Msg("failed to get value")

		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

func (store *postgresStore) Update(ctx context.Context, key string, fn UpdateFunc) (err error) {
	ctx, scope := store.otel.NewScope(ctx, otelScopeName, otelScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{otelAttrKey: key, otelAttrBackend: constant.JournalBackendPostgres})

	tx, err := store.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Update").Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Str("key", key).Msg(errUpdateRollback)
		}
	}()

	if _, err = tx.ExecContext(ctx, queryEnsureKey, key); err != nil {
		return fmt.Errorf("failed to reserve key: %w", err)
	}

	var current []byte
	if err = tx.GetContext(ctx, &current, queryLockValue, key); err != nil {
		return fmt.Errorf("failed to lock value: %w", err)
	}

	next, err := fn(current, current != nil)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, queryUpdateValue, key, next); err != nil {
		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Update").Msg("failed to update value")

		return fmt.Errorf("failed to update value: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit update: %w", err)
	}

	return nil
}
