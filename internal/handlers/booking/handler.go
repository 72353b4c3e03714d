package booking

import (
	"net/http"
	"starlight/config"
	"starlight/infras/otel"
	"starlight/internal/domains/booking/model"
	"starlight/internal/domains/booking/model/dto"
	"starlight/internal/domains/booking/service"
	"starlight/shared/constant"
	"starlight/shared/validator"
	"starlight/transport/http/middleware"
	"starlight/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageReceived = "Booking received"

type Handler struct {
	service    service.Booking
	middleware middleware.AppMiddleware
	cfg        *config.Config
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AppMiddleware, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		cfg:        cfg,
		otel:       otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Use(handler.middleware.RateLimit())

		r.Post("/", handler.CreateBooking)
		r.Post("/quick", handler.QuickBook)
	})
}

// QuickBook stores a quick booking request.
// @Summary Quick booking
// @Description Store a name, email and date of birth in the visitor's journal.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Visitor-ID header string false "Visitor ID"
// @Param request body dto.QuickBookRequest true "Quick Booking Request"
// @Success 201 {object} response.Data[dto.Result]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Message
// @Failure 507 {object} response.Error
// @Router /v1/bookings/quick [post]
func (handler *Handler) QuickBook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuickBook")
	defer scope.End()

	req := dto.QuickBookRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.QuickBook(ctx, middleware.VisitorID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to store quick booking")

		response.WithErrorStatus(w, err, res.Status)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// CreateBooking runs the full booking flow.
// @Summary Create a booking
// @Description Validate the fields, submit them to the configured booking endpoint and record the outcome in the visitor's journal.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Visitor-ID header string false "Visitor ID"
// @Param request body dto.BookingRequest true "Booking Request"
// @Success 201 {object} response.Data[dto.Result]
// @Success 202 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Message
// @Failure 507 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.BookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	req.Endpoint = handler.cfg.Site.BookingEndpoint

	res, err := handler.service.Submit(ctx, middleware.VisitorID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("outcome", string(res.Outcome)).Msg("failed to create booking")

		response.WithErrorStatus(w, err, res.Status)

		return
	}

	if res.Outcome == model.OutcomeDiscarded {
		response.WithMessage(w, http.StatusAccepted, messageReceived)

		return
	}

	scope.AddEvent("booking recorded with outcome " + string(res.Outcome))

	response.WithJSON(w, http.StatusCreated, res)
}
