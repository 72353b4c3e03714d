// Package submitter posts bookings to the remote booking endpoint.
package submitter

//go:generate go run go.uber.org/mock/mockgen -source=./submitter.go -destination=../mocks/submitter_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"starlight/config"
	"starlight/infras/otel"
	"starlight/shared/constant"
	"starlight/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultTimeout = 15 * time.Second
	maxBodyBytes   = 1 << 20
)

var errStatus = errors.New("booking endpoint returned a non-success status")

type Submitter interface {
	// Submit posts fields as JSON. On a 2xx answer it returns the response
	// body when that is JSON, or the literal null otherwise.
	Submit(ctx context.Context, endpoint string, fields map[string]string) (json.RawMessage, error)
}

type httpSubmitter struct {
	client  *http.Client
	timeout time.Duration
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Submitter {
	timeout := DefaultTimeout
	if cfg.Site.SubmitTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Site.SubmitTimeoutSeconds) * time.Second
	}

	return NewWithClient(&http.Client{}, timeout, otel)
}

func NewWithClient(client *http.Client, timeout time.Duration, otel otel.Otel) Submitter {
	return &httpSubmitter{
		client:  client,
		timeout: timeout,
		otel:    otel,
	}
}

// ValidEndpoint reports whether raw is an absolute http or https URL.
func ValidEndpoint(raw string) bool {
	if raw == constant.Empty {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (s *httpSubmitter) Submit(ctx context.Context, endpoint string, fields map[string]string) (payload json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SubmitBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.endpoint", endpoint)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, err := json.Marshal(fields)
	if err != nil {
		return nil, failure.NetworkError("booking could not be encoded", err) //nolint:wrapcheck
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, failure.NetworkError("booking endpoint is not usable", err) //nolint:wrapcheck
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, failure.NetworkError(fmt.Sprintf("booking endpoint timed out after %s", s.timeout), err) //nolint:wrapcheck
		}

		return nil, failure.NetworkError("booking endpoint unreachable", err) //nolint:wrapcheck
	}
	defer resp.Body.Close()

	scope.SetAttribute("http.status_code", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, failure.NetworkError( //nolint:wrapcheck
			fmt.Sprintf("booking endpoint answered %d", resp.StatusCode),
			fmt.Errorf("%w: %d", errStatus, resp.StatusCode),
		)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Warn().Err(err).Str("endpoint", endpoint).Msg("failed to read booking confirmation body")

		return json.RawMessage("null"), nil
	}

	if !json.Valid(raw) {
		log.Debug().Str("endpoint", endpoint).Msg("booking confirmation body is not JSON")

		return json.RawMessage("null"), nil
	}

	return json.RawMessage(raw), nil
}
