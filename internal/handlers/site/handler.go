package site

import (
	"bytes"
	"errors"
	"net/http"
	"starlight/infras/otel"
	"starlight/internal/page"
	"starlight/internal/session"
	"starlight/shared/constant"
	"starlight/shared/failure"
	"starlight/shared/validator"
	"starlight/transport/http/middleware"
	"starlight/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// EventRequest is one browser event forwarded by the page script.
type EventRequest struct {
	Target string            `json:"target" validate:"required"`
	Type   string            `json:"type"   validate:"required"`
	Key    string            `json:"key"`
	Values map[string]string `json:"values"`
}

// EventResponse carries the re-rendered body and what the browser must do.
type EventResponse struct {
	Body      string       `json:"body"`
	Prevented bool         `json:"prevented"`
	Effects   page.Effects `json:"effects"`
	// Reloaded is set when the visitor's page had expired and was rebuilt
	// instead of receiving the event.
	Reloaded bool `json:"reloaded,omitempty"`
}

type Handler struct {
	sessions *session.Manager
	otel     otel.Otel
}

func New(sessions *session.Manager, otel otel.Otel) Handler {
	return Handler{
		sessions: sessions,
		otel:     otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/", handler.Page)
	r.Post("/events", handler.Event)
}

// Page renders the visitor's page.
// @Summary Render page
// @Description Render the visitor's page with every feature installed.
// @Tags Site
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {object} response.Error
// @Router / [get]
func (handler *Handler) Page(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Page")
	defer scope.End()

	visitor := middleware.VisitorID(ctx)

	doc, _, err := handler.sessions.Document(ctx, visitor)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("visitor", visitor).Msg("failed to build page")

		response.WithError(w, err)

		return
	}

	var buf bytes.Buffer
	if err = doc.Render(&buf); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render page")

		response.WithError(w, failure.RenderError("page could not be rendered", err))

		return
	}

	response.WithHTML(w, http.StatusOK, buf.Bytes())
}

// Event dispatches a forwarded browser event into the visitor's page.
// @Summary Dispatch page event
// @Description Deliver a browser event to the visitor's page and return the updated body.
// @Tags Site
// @Accept json
// @Produce json
// @Param request body EventRequest true "Forwarded event"
// @Success 200 {object} EventResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /events [post]
func (handler *Handler) Event(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Event")
	defer scope.End()

	req := EventRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate event")

		response.WithError(w, err)

		return
	}

	visitor := middleware.VisitorID(ctx)

	doc, created, err := handler.sessions.Document(ctx, visitor)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("visitor", visitor).Msg("failed to build page")

		response.WithError(w, err)

		return
	}

	res := EventResponse{Reloaded: created, Prevented: created}

	if !created {
		ev := &page.Event{Type: req.Type, Key: req.Key, Values: req.Values}

		res.Effects, err = doc.Dispatch(ctx, req.Target, ev)
		if err != nil {
			scope.TraceError(err)

			if errors.Is(err, page.ErrUnknownTarget) {
				response.WithError(w, failure.BadRequestFromString("unknown event target"))

				return
			}

			log.Error().Err(err).Msg("failed to dispatch event")
			response.WithError(w, err)

			return
		}

		res.Prevented = ev.DefaultPrevented()
	}

	var buf bytes.Buffer
	if _, err = doc.RenderBody(&buf); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render page body")

		response.WithError(w, failure.RenderError("page could not be rendered", err))

		return
	}

	res.Body = buf.String()

	scope.SetAttribute("page.event", req.Type)

	response.WithRaw(w, http.StatusOK, res)
}
