package modal_test

import (
	"context"
	"starlight/internal/modal"
	"starlight/internal/page"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func setup(t *testing.T) (*page.Document, *modal.Presenter) {
	t.Helper()

	doc, err := page.Parse(strings.NewReader(`<html><body><main>site</main></body></html>`))
	require.NoError(t, err)

	return doc, modal.New(doc)
}

func dispatch(t *testing.T, doc *page.Document, target *html.Node, ev *page.Event) {
	t.Helper()

	_, err := doc.Dispatch(context.Background(), doc.Key(target), ev)
	require.NoError(t, err)
}

func TestShow(t *testing.T) {
	doc, presenter := setup(t)

	presenter.Show(modal.Text("House 7: Partnerships", "For: Asha"))

	backdrop := presenter.Active()
	require.NotNil(t, backdrop)
	assert.Same(t, doc.Body(), backdrop.Parent)
	assert.Contains(t, page.Text(backdrop), "House 7: Partnerships")
	assert.Contains(t, page.Text(backdrop), "For: Asha")

	closeButton := doc.ByRole(modal.RoleClose)
	require.NotNil(t, closeButton)
	assert.Same(t, closeButton, doc.Focused())
	assert.Equal(t, 1, doc.ListenerCount(doc.Root(), "keydown"))
}

func TestShowReplacesExisting(t *testing.T) {
	doc, presenter := setup(t)

	presenter.Show(modal.Text("first"))
	first := presenter.Active()

	presenter.Show(modal.Text("second"))

	assert.False(t, page.IsConnected(first))
	assert.Len(t, doc.AllByRole(modal.RoleModal), 1)
	assert.Equal(t, 1, doc.ListenerCount(doc.Root(), "keydown"))
	assert.Contains(t, page.Text(presenter.Active()), "second")
}

func TestDismissal(t *testing.T) {
	tests := []struct {
		name    string
		trigger func(t *testing.T, doc *page.Document, backdrop *html.Node)
		closed  bool
	}{
		{
			name: "close button",
			trigger: func(t *testing.T, doc *page.Document, _ *html.Node) {
				dispatch(t, doc, doc.ByRole(modal.RoleClose), &page.Event{Type: "click"})
			},
			closed: true,
		},
		{
			name: "backdrop click",
			trigger: func(t *testing.T, doc *page.Document, backdrop *html.Node) {
				dispatch(t, doc, backdrop, &page.Event{Type: "click"})
			},
			closed: true,
		},
		{
			name: "click inside panel",
			trigger: func(t *testing.T, doc *page.Document, backdrop *html.Node) {
				dispatch(t, doc, backdrop.FirstChild, &page.Event{Type: "click"})
			},
			closed: false,
		},
		{
			name: "escape",
			trigger: func(t *testing.T, doc *page.Document, _ *html.Node) {
				dispatch(t, doc, doc.Body(), &page.Event{Type: "keydown", Key: "Escape"})
			},
			closed: true,
		},
		{
			name: "other key",
			trigger: func(t *testing.T, doc *page.Document, _ *html.Node) {
				dispatch(t, doc, doc.Body(), &page.Event{Type: "keydown", Key: "Enter"})
			},
			closed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, presenter := setup(t)

			presenter.Show(modal.Text("content"))
			backdrop := presenter.Active()

			tt.trigger(t, doc, backdrop)

			if !tt.closed {
				assert.NotNil(t, presenter.Active())
				assert.True(t, page.IsConnected(backdrop))

				return
			}

			assert.Nil(t, presenter.Active())
			assert.False(t, page.IsConnected(backdrop))
			assert.Zero(t, doc.ListenerCount(doc.Root(), "keydown"))
			assert.Zero(t, doc.ListenerCount(backdrop, "click"))
		})
	}
}

func TestFragmentContent(t *testing.T) {
	_, presenter := setup(t)

	nodes, err := page.ParseFragment("<h2>Transits</h2><p>Slow planets</p>")
	require.NoError(t, err)

	presenter.Show(modal.Fragment(nodes))

	assert.Contains(t, page.Text(presenter.Active()), "Slow planets")
}
