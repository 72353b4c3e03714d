package article

import (
	"net/http"
	"starlight/infras/otel"
	"starlight/internal/domains/article/service"
	"starlight/shared/constant"
	"starlight/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Article
	otel    otel.Otel
}

func New(service service.Article, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/articles", func(r chi.Router) {
		r.Get("/", handler.GetArticles)
		r.Get("/{"+constant.RequestParamArticleKey+"}", handler.GetArticle)
	})
}

// GetArticles lists the article catalog.
// @Summary List articles
// @Tags Article
// @Produce json
// @Success 200 {object} response.Data[[]dto.ArticleSummary]
// @Router /v1/articles [get]
func (handler *Handler) GetArticles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArticles")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.List(ctx))
}

// GetArticle returns one article rendered to sanitized HTML.
// @Summary Get article
// @Tags Article
// @Produce json
// @Param key path string true "Article key"
// @Success 200 {object} response.Data[dto.ArticleResponse]
// @Failure 404 {object} response.Error
// @Router /v1/articles/{key} [get]
func (handler *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArticle")
	defer scope.End()

	key := chi.URLParam(r, constant.RequestParamArticleKey)

	article, err := handler.service.Get(ctx, key)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("article", key).Msg("failed to get article")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, article)
}
