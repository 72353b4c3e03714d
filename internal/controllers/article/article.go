// Package article opens catalog articles in the page modal.
package article

import (
	"context"
	"starlight/internal/domains/article/service"
	"starlight/internal/modal"
	"starlight/internal/page"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

const AttrArticle = "data-article"

// Install binds every button tagged with an article key. Unknown keys and
// render failures are logged and leave the page as it was.
func Install(doc *page.Document, svc service.Article, presenter *modal.Presenter) {
	for _, button := range page.FindAll(doc.Root(), page.HasAttr(AttrArticle)) {
		doc.On(button, "click", func(ctx context.Context, ev *page.Event) {
			ev.PreventDefault()

			key, _ := page.Attr(button, AttrArticle)

			res, err := svc.Get(ctx, key)
			if err != nil {
				log.Warn().Err(err).Str("article", key).Msg("article not shown")

				return
			}

			nodes, err := page.ParseFragment(res.HTML)
			if err != nil {
				log.Warn().Err(err).Str("article", key).Msg("article markup rejected")

				return
			}

			heading := page.Element("h2", "class", "article-title")
			page.SetText(heading, res.Title)

			presenter.Show(modal.Fragment(append([]*html.Node{heading}, nodes...)))
		})
	}
}
