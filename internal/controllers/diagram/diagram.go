// Package diagram mounts the house wheel into a page and opens a house
// detail when a sector is activated.
package diagram

import (
	"context"
	"fmt"
	"starlight/internal/domains/diagram/service"
	"starlight/internal/modal"
	"starlight/internal/page"
	"starlight/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

const (
	RoleDiagram = "diagram"
	AttrHouse   = "data-house"
	AttrBuilt   = "data-built"
)

// activation keys for a focused sector; "Spacebar" is what older browsers
// report for the space key.
var activationKeys = map[string]bool{
	"Enter":    true,
	" ":        true,
	"Spacebar": true,
}

// Install builds the wheel into the diagram mount point. A missing mount is
// not an error; a mount that was already built is left alone.
func Install(ctx context.Context, doc *page.Document, svc service.Diagram, presenter *modal.Presenter, owner string) error {
	mount := doc.ByRole(RoleDiagram)
	if mount == nil {
		return nil
	}

	if _, built := page.Attr(mount, AttrBuilt); built {
		return nil
	}

	markup, err := svc.SVG(ctx)
	if err != nil {
		return failure.RenderError("failed to build house diagram", err)
	}

	nodes, err := page.ParseFragment(markup)
	if err != nil {
		return failure.RenderError("failed to parse house diagram", err)
	}

	for _, n := range nodes {
		mount.AppendChild(n)
	}

	page.SetAttr(mount, AttrBuilt, "true")

	for _, sector := range page.FindAll(mount, page.HasAttr(AttrHouse)) {
		open := func(ctx context.Context, ev *page.Event) {
			ev.PreventDefault()

			raw, _ := page.Attr(sector, AttrHouse)

			if err := showDetail(ctx, svc, presenter, owner, raw); err != nil {
				log.Warn().Err(err).Str("house", raw).Msg("house detail not shown")
			}
		}

		doc.On(sector, "click", open)
		doc.On(sector, "keydown", func(ctx context.Context, ev *page.Event) {
			if activationKeys[ev.Key] {
				open(ctx, ev)
			}
		})
	}

	return nil
}

func showDetail(ctx context.Context, svc service.Diagram, presenter *modal.Presenter, owner, raw string) error {
	house, err := service.ParseHouse(raw)
	if err != nil {
		return err //nolint:wrapcheck
	}

	detail, err := svc.Detail(ctx, owner, house)
	if err != nil {
		return fmt.Errorf("failed to describe house %d: %w", house, err)
	}

	presenter.Show(modal.Text(detail.Lines()...))

	return nil
}

// Sectors returns the mounted sector groups in house order.
func Sectors(doc *page.Document) []*html.Node {
	mount := doc.ByRole(RoleDiagram)
	if mount == nil {
		return nil
	}

	return page.FindAll(mount, page.HasAttr(AttrHouse))
}
