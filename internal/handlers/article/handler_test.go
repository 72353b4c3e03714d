package article_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"starlight/infras/otel/mocks"
	"starlight/internal/domains/article/catalog"
	"starlight/internal/domains/article/model/dto"
	"starlight/internal/domains/article/service"
	"starlight/internal/handlers/article"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) chi.Router {
	t.Helper()

	c, err := catalog.Default()
	require.NoError(t, err)

	h := article.New(service.New(c, mocks.NewOtel()), mocks.NewOtel())

	r := chi.NewRouter()
	r.Route("/v1", h.Router)

	return r
}

func TestGetArticles(t *testing.T) {
	rec := httptest.NewRecorder()
	setup(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/articles", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []dto.ArticleSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 3)
}

func TestGetArticle(t *testing.T) {
	r := setup(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/articles/houses-explained", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.ArticleResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Data.HTML, "<table>")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/articles/moon-phases", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
