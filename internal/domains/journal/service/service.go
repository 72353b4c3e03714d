package service

import (
	"context"
	"starlight/config"
	"starlight/infras/kafka"
	"starlight/infras/otel"
	"starlight/internal/domains/journal/model"
	"starlight/internal/domains/journal/repository"
	"starlight/shared"
	"starlight/shared/constant"
	"starlight/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

// Journal is the append-only booking record of one visitor.
type Journal interface {
	Append(ctx context.Context, owner string, record model.Record) error
	MostRecent(ctx context.Context, owner string) (model.Record, bool, error)
	All(ctx context.Context, owner string) ([]model.Record, error)
}

type serviceImpl struct {
	repo     repository.Journal
	notifier kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Journal, notifier kafka.Client, cfg *config.Config, otel otel.Otel) Journal {
	return &serviceImpl{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) key(owner string) string {
	return shared.BuildKey(s.cfg.Journal.Namespace, owner)
}

// DefaultPublishTimeout bounds the notification sent after an append.
const DefaultPublishTimeout = 2 * time.Second

func (s *serviceImpl) publishTimeout() time.Duration {
	if ms := s.cfg.External.Kafka.PublishTimeoutMillis; ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}

	return DefaultPublishTimeout
}

// RecordedEvent is published after every successful append.
type RecordedEvent struct {
	Owner  string       `json:"owner"`
	Record model.Record `json:"record"`
}

func (s *serviceImpl) Append(ctx context.Context, owner string, record model.Record) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Append")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Append(ctx, s.key(owner), record.Clone()); err != nil {
		log.Error().Err(err).Str("owner", owner).Msg("failed to append booking record")

		return failure.StorageError("booking could not be saved", err) //nolint:wrapcheck
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout())
	defer cancel()

	msg := kafka.Message{Key: owner, Value: RecordedEvent{Owner: owner, Record: record}}
	if err := s.notifier.SendMessages(publishCtx, s.cfg.External.Kafka.Topic, msg); err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("failed to publish booking notification")
	}

	return nil
}

func (s *serviceImpl) MostRecent(ctx context.Context, owner string) (record model.Record, ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MostRecent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := s.All(ctx, owner)
	if err != nil {
		return model.Record{}, false, err
	}

	if len(records) == 0 {
		return model.Record{}, false, nil
	}

	return records[len(records)-1], true, nil
}

func (s *serviceImpl) All(ctx context.Context, owner string) (records []model.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".All")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err = s.repo.Load(ctx, s.key(owner))
	if err != nil {
		log.Error().Err(err).Str("owner", owner).Msg("failed to read booking journal")

		return nil, failure.StorageError("booking journal is unavailable", err) //nolint:wrapcheck
	}

	return records, nil
}
