package kvstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"starlight/infras/otel"
	"starlight/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"
)

const (
	s3CodePreconditionFailed  = "PreconditionFailed"
	s3CodeConditionalConflict = "ConditionalRequestConflict"
	s3ContentType             = "application/json"
)

type s3Store struct {
	client *s3.Client
	bucket string
	otel   otel.Otel
}

// NewS3 stores each key as one object. Update is a conditional put against
// the ETag that was read, so a concurrent writer forces a retry.
func NewS3(client *s3.Client, bucket string, ot otel.Otel) Store {
	return &s3Store{
		client: client,
		bucket: bucket,
		otel:   ot,
	}
}

func (store *s3Store) Get(ctx context.Context, key string) (value []byte, err error) {
	ctx, scope := store.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{otelAttrKey: key, otelAttrBackend: constant.JournalBackendS3})

	value, _, err = store.read(ctx, key)

	return value, err
}

func (store *s3Store) Update(ctx context.Context, key string, fn UpdateFunc) (err error) {
	ctx, scope := store.otel.NewScope(ctx, otelScopeName, otelScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{otelAttrKey: key, otelAttrBackend: constant.JournalBackendS3})

	for round := range maxOptimisticRounds {
		current, etag, err := store.read(ctx, key)
		found := err == nil

		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		next, err := fn(current, found)
		if err != nil {
			return err
		}

		input := &s3.PutObjectInput{
			Bucket:      aws.String(store.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(next),
			ContentType: aws.String(s3ContentType),
		}

		if found {
			input.IfMatch = etag
		} else {
			input.IfNoneMatch = aws.String("*")
		}

		_, err = store.client.PutObject(ctx, input)
		if err == nil {
			return nil
		}

		if !isPreconditionFailure(err) {
			log.Error().Err(err).Str("key", key).Str("S3Store", "Update").Msg("failed to put object")

			return fmt.Errorf("failed to put object: %w", err)
		}

		log.Warn().Str("key", key).Int("round", round+1).Msg("concurrent update detected, retrying")
	}

	return ErrConflict
}

func (store *s3Store) read(ctx context.Context, key string) ([]byte, *string, error) {
	out, err := store.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, nil, ErrNotFound
		}

		log.Error().Err(err).Str("key", key).Str("S3Store", "Get").Msg("failed to get object")

		return nil, nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	value, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read object body: %w", err)
	}

	return value, out.ETag, nil
}

func isPreconditionFailure(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.ErrorCode() {
	case s3CodePreconditionFailed, s3CodeConditionalConflict:
		return true
	default:
		return false
	}
}
