package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"starlight/infras/otel"
	"starlight/internal/domains/journal/model"
	"starlight/shared/constant"
	"starlight/shared/kvstore"

	"github.com/rs/zerolog/log"
)

type Journal interface {
	Load(ctx context.Context, key string) ([]model.Record, error)
	Append(ctx context.Context, key string, record model.Record) error
}

type repositoryImpl struct {
	store kvstore.Store
	otel  otel.Otel
}

func New(store kvstore.Store, otel otel.Otel) Journal {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

// decode reads a stored sequence. Anything that is not a JSON array of
// objects counts as an empty journal.
func decode(key string, raw []byte) []model.Record {
	if len(raw) == 0 {
		return nil
	}

	var records []model.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("malformed journal content, treating as empty")

		return nil
	}

	return records
}

func (r *repositoryImpl) Load(ctx context.Context, key string) (records []model.Record, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to load journal")

		return nil, fmt.Errorf("failed to load journal: %w", err)
	}

	records = decode(key, raw)
	scope.SetAttribute("journal.length", len(records))

	return records, nil
}

func (r *repositoryImpl) Append(ctx context.Context, key string, record model.Record) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Append")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.store.Update(ctx, key, func(current []byte, _ bool) ([]byte, error) {
		records := append(decode(key, current), record)

		return json.Marshal(records) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to append to journal")

		return fmt.Errorf("failed to append to journal: %w", err)
	}

	return nil
}
