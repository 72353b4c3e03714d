package journal

import (
	"net/http"
	"starlight/infras/otel"
	"starlight/internal/domains/journal/model"
	"starlight/internal/domains/journal/service"
	"starlight/shared/constant"
	"starlight/shared/dto"
	"starlight/shared/failure"
	"starlight/transport/http/middleware"
	"starlight/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Journal
	otel    otel.Otel
}

func New(service service.Journal, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/journal", func(r chi.Router) {
		r.Get("/", handler.GetJournal)
		r.Get("/latest", handler.GetLatest)
	})
}

// GetJournal lists the visitor's booking records in insertion order. Page,
// limit or sort_dir switch the response to a paged one.
// @Summary Get journal
// @Description Retrieve the booking records of the visitor, oldest first unless sort_dir is DESC.
// @Tags Journal
// @Produce json
// @Param X-Visitor-ID header string false "Visitor ID"
// @Param page query int false "Page number"
// @Param limit query int false "Records per page"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} response.Data[[]model.Record]
// @Failure 507 {object} response.Error
// @Router /v1/journal [get]
func (handler *Handler) GetJournal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetJournal")
	defer scope.End()

	params := dto.QueryParams{}
	params.FromRequest(r, false)

	records, err := handler.service.All(ctx, middleware.VisitorID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get journal")

		response.WithError(w, err)

		return
	}

	if params.Paged() {
		if params.Page == 0 {
			params.Page = constant.DefaultValuePage
		}

		if params.Limit == 0 {
			params.Limit = constant.DefaultValueLimit
		}

		response.WithPage(w, http.StatusOK, dto.Apply(params, records), response.PageMeta{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(records),
		})

		return
	}

	records = dto.Apply(params, records)
	if records == nil {
		records = []model.Record{}
	}

	response.WithJSON(w, http.StatusOK, records)
}

// GetLatest returns the visitor's most recent booking record.
// @Summary Get latest booking
// @Description Retrieve the most recent booking record of the visitor.
// @Tags Journal
// @Produce json
// @Param X-Visitor-ID header string false "Visitor ID"
// @Success 200 {object} response.Data[model.Record]
// @Failure 404 {object} response.Error
// @Failure 507 {object} response.Error
// @Router /v1/journal/latest [get]
func (handler *Handler) GetLatest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLatest")
	defer scope.End()

	record, found, err := handler.service.MostRecent(ctx, middleware.VisitorID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get latest booking")

		response.WithError(w, err)

		return
	}

	if !found {
		response.WithError(w, failure.NotFound("no bookings recorded"))

		return
	}

	response.WithJSON(w, http.StatusOK, record)
}
