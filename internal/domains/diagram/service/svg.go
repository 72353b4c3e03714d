package service

import (
	"fmt"
	"html"
	"io"
	"starlight/internal/domains/diagram/model"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	labelFill    = "#f5f1e6"
	labelSize    = 16
)

// writeSVG emits the wheel. Each house is a focusable group so the path and
// its label share one interaction target.
func writeSVG(w io.Writer, g model.Geometry, sectors []model.Sector) error {
	size := 2 * max(g.CenterX, g.CenterY)

	if _, err := fmt.Fprintf(w,
		`<svg xmlns="%s" viewBox="0 0 %.0f %.0f" class="house-wheel" role="img" aria-label="The twelve astrological houses">`,
		svgNamespace, size, size,
	); err != nil {
		return err //nolint:wrapcheck
	}

	for _, s := range sectors {
		_, err := fmt.Fprintf(w,
			`<g class="house" data-house="%d" tabindex="0" role="button" aria-label="House %d: %s">`+
				`<path d="%s" fill="%s" stroke="%s"></path>`+
				`<text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" fill="%s" font-size="%d">%d</text>`+
				`</g>`,
			s.House, s.House, html.EscapeString(s.Title),
			s.Path(g), html.EscapeString(s.Fill), html.EscapeString(g.Stroke),
			s.Label.X, s.Label.Y, labelFill, labelSize, s.House,
		)
		if err != nil {
			return err //nolint:wrapcheck
		}
	}

	_, err := io.WriteString(w, `</svg>`)

	return err //nolint:wrapcheck
}
