// Package site assembles a visitor's page: it loads the page markup, parses
// it into a document and installs every feature controller on it.
package site

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"starlight/config"
	"starlight/infras/otel"
	articleController "starlight/internal/controllers/article"
	bookingController "starlight/internal/controllers/booking"
	"starlight/internal/controllers/chrome"
	diagramController "starlight/internal/controllers/diagram"
	article "starlight/internal/domains/article/service"
	booking "starlight/internal/domains/booking/service"
	diagram "starlight/internal/domains/diagram/service"
	"starlight/internal/modal"
	"starlight/internal/page"
	"starlight/shared/constant"
	"starlight/shared/failure"
	"starlight/shared/timezone"

	"github.com/rs/zerolog/log"
)

//go:embed web/index.html
var defaultMarkup []byte

//go:embed web/assets
var assets embed.FS

// Assets serves the browser script and stylesheet.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "web/assets")
	if err != nil {
		panic(err)
	}

	return sub
}

// Site builds booted documents for visitors.
type Site struct {
	cfg     *config.Config
	markup  []byte
	booking booking.Booking
	article article.Article
	diagram diagram.Diagram
	otel    otel.Otel
}

// New reads the configured markup file, or uses the built-in page when none
// is configured.
func New(cfg *config.Config, bookingSvc booking.Booking, articleSvc article.Article, diagramSvc diagram.Diagram, otel otel.Otel) (*Site, error) {
	markup := defaultMarkup

	if path := cfg.Site.MarkupPath; path != constant.Empty {
		custom, err := os.ReadFile(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("failed to read page markup")

			return nil, fmt.Errorf("failed to read page markup: %w", err)
		}

		markup = custom
	}

	return &Site{
		cfg:     cfg,
		markup:  markup,
		booking: bookingSvc,
		article: articleSvc,
		diagram: diagramSvc,
		otel:    otel,
	}, nil
}

// NewDocument parses a fresh copy of the page for owner and boots it.
func (s *Site) NewDocument(ctx context.Context, owner string) (_ *page.Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelControllerScopeName, constant.OtelControllerScopeName+".NewDocument")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	doc, err := page.Parse(bytes.NewReader(s.markup))
	if err != nil {
		log.Error().Err(err).Msg("failed to parse page markup")

		return nil, failure.RenderError("failed to parse page markup", err)
	}

	doc.SetCapability(page.CapabilityIntersection, s.cfg.Site.IntersectionObserver)

	if failed := s.Boot(ctx, doc, owner); len(failed) > 0 {
		scope.AddEvent(fmt.Sprintf("features disabled: %v", failed))
	}

	return doc, nil
}

// Step is one isolated feature installer.
type Step struct {
	Name    string
	Install func(ctx context.Context) error
}

// Steps lists the feature installers for doc in boot order.
func (s *Site) Steps(doc *page.Document, owner string) []Step {
	presenter := modal.New(doc)
	forms := bookingController.New(doc, s.booking, owner, s.cfg.Site.HoneypotField, s.cfg.Site.BookingEndpoint)

	return []Step{
		{Name: "year", Install: func(context.Context) error {
			chrome.InstallYear(doc, timezone.Year())

			return nil
		}},
		{Name: "nav", Install: func(context.Context) error {
			chrome.InstallNav(doc)

			return nil
		}},
		{Name: "scroll", Install: func(context.Context) error {
			chrome.InstallSmoothScroll(doc)

			return nil
		}},
		{Name: "reveal", Install: func(context.Context) error {
			chrome.InstallReveal(doc)

			return nil
		}},
		{Name: "quick-book", Install: func(context.Context) error {
			forms.InstallQuick()

			return nil
		}},
		{Name: "booking", Install: func(context.Context) error {
			forms.InstallBooking()

			return nil
		}},
		{Name: "articles", Install: func(context.Context) error {
			articleController.Install(doc, s.article, presenter)

			return nil
		}},
		{Name: "diagram", Install: func(ctx context.Context) error {
			return diagramController.Install(ctx, doc, s.diagram, presenter, owner)
		}},
	}
}

// Boot installs every feature on doc and returns the names of those that
// failed. A failing feature never stops the others.
func (s *Site) Boot(ctx context.Context, doc *page.Document, owner string) []string {
	return Run(ctx, s.Steps(doc, owner))
}

// Run executes steps in order, containing errors and panics per step.
func Run(ctx context.Context, steps []Step) []string {
	var failed []string

	for _, step := range steps {
		if err := runStep(ctx, step); err != nil {
			log.Error().Err(err).Str("feature", step.Name).Msg("failed to install page feature")

			failed = append(failed, step.Name)
		}
	}

	return failed
}

func runStep(ctx context.Context, step Step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = failure.RenderError(fmt.Sprintf("feature %s panicked", step.Name), fmt.Errorf("%v", r))
		}
	}()

	return step.Install(ctx)
}
