package service_test

import (
	"context"
	"net/http"
	"starlight/infras/otel/mocks"
	"starlight/internal/domains/article/catalog"
	"starlight/internal/domains/article/service"
	"starlight/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) service.Article {
	t.Helper()

	c, err := catalog.Default()
	require.NoError(t, err)

	return service.New(c, mocks.NewOtel())
}

func TestGet(t *testing.T) {
	svc := newService(t)

	article, err := svc.Get(context.Background(), "houses-explained")
	require.NoError(t, err)

	assert.Equal(t, "The twelve houses, explained", article.Title)
	assert.Contains(t, article.HTML, "<strong>twelve houses</strong>")
	assert.Contains(t, article.HTML, "<table>")

	again, err := svc.Get(context.Background(), "houses-explained")
	require.NoError(t, err)
	assert.Equal(t, article.HTML, again.HTML)
}

func TestGetUnknown(t *testing.T) {
	_, err := newService(t).Get(context.Background(), "moon-phases")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestList(t *testing.T) {
	list := newService(t).List(context.Background())

	require.Len(t, list, 3)
	assert.Equal(t, "houses-explained", list[0].Key)
	assert.Equal(t, "birth-time", list[2].Key)
}
