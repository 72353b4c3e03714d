package site_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"starlight/config"
	kafkaMocks "starlight/infras/kafka/mocks"
	"starlight/infras/otel/mocks"
	articleCatalog "starlight/internal/domains/article/catalog"
	article "starlight/internal/domains/article/service"
	bookingMocks "starlight/internal/domains/booking/mocks"
	booking "starlight/internal/domains/booking/service"
	diagramCatalog "starlight/internal/domains/diagram/catalog"
	diagram "starlight/internal/domains/diagram/service"
	"starlight/internal/domains/journal/repository"
	journal "starlight/internal/domains/journal/service"
	"starlight/internal/page"
	"starlight/internal/site"
	"starlight/shared/kvstore"
	"starlight/shared/timezone"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSite(t *testing.T, cfg *config.Config) *site.Site {
	t.Helper()

	ctrl := gomock.NewController(t)
	notifier := kafkaMocks.NewMockClient(ctrl)
	notifier.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	j := journal.New(repository.New(kvstore.NewMemory(), mocks.NewOtel()), notifier, cfg, mocks.NewOtel())

	ac, err := articleCatalog.Default()
	require.NoError(t, err)

	dc, err := diagramCatalog.Default()
	require.NoError(t, err)

	s, err := site.New(cfg,
		booking.New(j, bookingMocks.NewMockSubmitter(ctrl), cfg, mocks.NewOtel()),
		article.New(ac, mocks.NewOtel()),
		diagram.New(j, dc, cfg, mocks.NewOtel()),
		mocks.NewOtel(),
	)
	require.NoError(t, err)

	return s
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Journal.Namespace = "starlight_bookings"
	cfg.Site.IntersectionObserver = true

	return cfg
}

func TestNewDocumentBootsEveryFeature(t *testing.T) {
	doc, err := newSite(t, testConfig()).NewDocument(context.Background(), "visitor-1")
	require.NoError(t, err)

	assert.Equal(t, strconv.Itoa(timezone.Year()), page.Text(doc.ByRole("year")))
	assert.Equal(t, 1, doc.ListenerCount(doc.ByRole("nav-toggle"), "click"))
	assert.Equal(t, 1, doc.ListenerCount(doc.ByRole("quick-form"), "submit"))
	assert.Equal(t, 1, doc.ListenerCount(doc.ByRole("booking-form"), "submit"))

	wheel := page.FindAll(doc.ByRole("diagram"), page.HasAttr("data-house"))
	assert.Len(t, wheel, 12)

	for _, el := range doc.AllByRole("reveal") {
		assert.Equal(t, 1, doc.ListenerCount(el, "intersect"))
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, `data-on="intersect"`)
	assert.Contains(t, out, `data-on="click keydown"`)
	assert.Contains(t, out, `data-on="submit"`)
}

func TestNewDocumentIsPerVisitor(t *testing.T) {
	s := newSite(t, testConfig())

	first, err := s.NewDocument(context.Background(), "visitor-1")
	require.NoError(t, err)

	second, err := s.NewDocument(context.Background(), "visitor-2")
	require.NoError(t, err)

	assert.NotSame(t, first.Root(), second.Root())
}

func TestRunContainsFailures(t *testing.T) {
	var ran []string

	steps := []site.Step{
		{Name: "year", Install: func(context.Context) error { ran = append(ran, "year"); return nil }},
		{Name: "diagram", Install: func(context.Context) error { return errors.New("no geometry") }},
		{Name: "nav", Install: func(context.Context) error { panic("nil panel") }},
		{Name: "articles", Install: func(context.Context) error { ran = append(ran, "articles"); return nil }},
	}

	failed := site.Run(context.Background(), steps)

	assert.Equal(t, []string{"diagram", "nav"}, failed)
	assert.Equal(t, []string{"year", "articles"}, ran)
}

func TestCustomMarkup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html><body><span data-role="year"></span></body></html>`), 0o600))

	cfg := testConfig()
	cfg.Site.MarkupPath = path

	doc, err := newSite(t, cfg).NewDocument(context.Background(), "visitor-1")
	require.NoError(t, err)

	assert.Equal(t, strconv.Itoa(timezone.Year()), page.Text(doc.ByRole("year")))
	assert.Nil(t, doc.ByRole("booking-form"))
}

func TestMissingCustomMarkup(t *testing.T) {
	cfg := testConfig()
	cfg.Site.MarkupPath = filepath.Join(t.TempDir(), "missing.html")

	_, err := site.New(cfg, nil, nil, nil, mocks.NewOtel())
	assert.Error(t, err)
}

func TestAssets(t *testing.T) {
	script, err := fs.ReadFile(site.Assets(), "starlight.js")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(script), "/events"))

	_, err = fs.Stat(site.Assets(), "starlight.css")
	assert.NoError(t, err)
}
