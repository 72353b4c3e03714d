package site_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"starlight/config"
	"starlight/infras/otel/mocks"
	"starlight/internal/handlers/site"
	"starlight/internal/page"
	"starlight/internal/session"
	"starlight/shared/constant"
	"starlight/shared/kvstore"
	"starlight/transport/http/middleware"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const markup = `<html><body>
<button data-role="nav-toggle">Menu</button>
<nav data-role="nav-panel"><a href="#about">About</a></nav>
<section id="about">About</section>
</body></html>`

// factory wires a single listener so the handler can be tested without the
// full feature set.
func factory(_ context.Context, _ string) (*page.Document, error) {
	doc, err := page.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	panel := doc.ByRole("nav-panel")

	doc.On(doc.ByRole("nav-toggle"), "click", func(_ context.Context, ev *page.Event) {
		ev.PreventDefault()
		page.ToggleClass(panel, "open")
		doc.Alert("toggled")
	})

	return doc, nil
}

func newRouter(sessions *session.Manager) chi.Router {
	cfg := &config.Config{}
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, kvstore.NewMemory())
	h := site.New(sessions, mocks.NewOtel())

	r := chi.NewRouter()
	r.Use(mw.Visitor)
	h.Router(r)

	return r
}

func key(t *testing.T, body, role string) string {
	t.Helper()

	doc, err := page.Parse(strings.NewReader(body))
	require.NoError(t, err)

	n := doc.ByRole(role)
	require.NotNil(t, n)

	v, ok := page.Attr(n, page.AttrNode)
	require.True(t, ok)

	return v
}

func hasOpenPanel(t *testing.T, body string) bool {
	t.Helper()

	nodes, err := page.ParseFragment(body)
	require.NoError(t, err)

	for _, n := range nodes {
		if found := page.FindFirst(n, func(x *html.Node) bool {
			role, _ := page.Attr(x, page.AttrRole)

			return role == "nav-panel" && page.HasClass(x, "open")
		}); found != nil {
			return true
		}
	}

	return false
}

func TestPageAndEvent(t *testing.T) {
	sessions := session.New(&config.Config{}, factory)
	r := newRouter(sessions)
	visitor := session.NewID()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.RequestHeaderVisitorID, visitor)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeHTML, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Contains(t, rec.Body.String(), `data-on="click"`)

	payload, err := json.Marshal(site.EventRequest{Target: key(t, rec.Body.String(), "nav-toggle"), Type: "click"})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(payload))
	req.Header.Set(constant.RequestHeaderVisitorID, visitor)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res site.EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.True(t, res.Prevented)
	assert.False(t, res.Reloaded)
	assert.Equal(t, []string{"toggled"}, res.Effects.Alerts)
	assert.True(t, hasOpenPanel(t, res.Body))
}

func TestEventForExpiredPageReloads(t *testing.T) {
	r := newRouter(session.New(&config.Config{}, factory))

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"target":"n4","type":"click"}`))
	req.Header.Set(constant.RequestHeaderVisitorID, session.NewID())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res site.EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Reloaded)
	assert.True(t, res.Prevented)
	assert.Empty(t, res.Effects.Alerts)
	assert.False(t, hasOpenPanel(t, res.Body))
}

func TestEventErrors(t *testing.T) {
	sessions := session.New(&config.Config{}, factory)
	r := newRouter(sessions)
	visitor := session.NewID()

	_, _, err := sessions.Document(context.Background(), visitor)
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown target", body: `{"target":"n999","type":"click"}`},
		{name: "missing type", body: `{"target":"n1"}`},
		{name: "malformed", body: `{"target":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderVisitorID, visitor)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
