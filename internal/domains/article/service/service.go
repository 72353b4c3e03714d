package service

import (
	"bytes"
	"context"
	"fmt"
	"starlight/infras/otel"
	"starlight/internal/domains/article/catalog"
	"starlight/internal/domains/article/model/dto"
	"starlight/shared/constant"
	"starlight/shared/failure"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

type Article interface {
	Get(ctx context.Context, key string) (dto.ArticleResponse, error)
	List(ctx context.Context) []dto.ArticleSummary
}

type serviceImpl struct {
	catalog  *catalog.Catalog
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
	otel     otel.Otel

	mu       sync.Mutex
	rendered map[string]string
}

func New(catalog *catalog.Catalog, otel otel.Otel) Article {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("table", "th", "td")

	return &serviceImpl{
		catalog: catalog,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy:   policy,
		otel:     otel,
		rendered: map[string]string{},
	}
}

// Get renders an article to sanitized HTML. Renders are cached per key.
func (s *serviceImpl) Get(ctx context.Context, key string) (res dto.ArticleResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetArticle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("article.key", key)

	entry, ok := s.catalog.Get(key)
	if !ok {
		log.Warn().Str("key", key).Msg("unknown article requested")

		return res, failure.NotFound("article not found") //nolint:wrapcheck
	}

	body, err := s.render(entry)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to render article")

		return res, failure.RenderError("article could not be rendered", err) //nolint:wrapcheck
	}

	return dto.ArticleResponse{
		Key:     entry.Key,
		Title:   entry.Title,
		Summary: entry.Summary,
		HTML:    body,
	}, nil
}

func (s *serviceImpl) render(entry catalog.Entry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.rendered[entry.Key]; ok {
		return cached, nil
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert(entry.Body, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}

	out := s.policy.Sanitize(buf.String())
	s.rendered[entry.Key] = out

	return out, nil
}

func (s *serviceImpl) List(_ context.Context) []dto.ArticleSummary {
	entries := s.catalog.List()
	out := make([]dto.ArticleSummary, len(entries))

	for i, entry := range entries {
		out[i] = dto.ArticleSummary{Key: entry.Key, Title: entry.Title, Summary: entry.Summary}
	}

	return out
}
