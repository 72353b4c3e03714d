package diagram

import (
	"net/http"
	"starlight/infras/otel"
	"starlight/internal/domains/diagram/model/dto"
	"starlight/internal/domains/diagram/service"
	"starlight/shared/constant"
	"starlight/transport/http/middleware"
	"starlight/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Diagram
	otel    otel.Otel
}

func New(service service.Diagram, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/diagram", handler.GetDiagram)
	r.Route("/houses", func(r chi.Router) {
		r.Get("/", handler.GetHouses)
		r.Get("/{"+constant.RequestParamHouse+"}", handler.GetHouse)
	})
}

// GetDiagram renders the house wheel.
// @Summary Get house diagram
// @Description Render the twelve-house wheel as SVG.
// @Tags Diagram
// @Produce image/svg+xml
// @Success 200 {string} string "SVG image"
// @Failure 500 {object} response.Error
// @Router /v1/diagram [get]
func (handler *Handler) GetDiagram(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDiagram")
	defer scope.End()

	svg, err := handler.service.SVG(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render diagram")

		response.WithError(w, err)

		return
	}

	response.WithSVG(w, http.StatusOK, []byte(svg))
}

// GetHouses lists the sectors of the wheel.
// @Summary List houses
// @Description Retrieve the geometry and title of each of the twelve sectors.
// @Tags Diagram
// @Produce json
// @Success 200 {object} response.Data[[]dto.SectorResponse]
// @Router /v1/houses [get]
func (handler *Handler) GetHouses(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHouses")
	defer scope.End()

	g := handler.service.Geometry()
	sectors := handler.service.Sectors()

	res := make([]dto.SectorResponse, len(sectors))
	for i, s := range sectors {
		res[i].FromModel(s, g)
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetHouse describes one house, personalized for the visitor when possible.
// @Summary Get house detail
// @Description Retrieve a house's sector, summary and the name on the visitor's latest booking.
// @Tags Diagram
// @Produce json
// @Param X-Visitor-ID header string false "Visitor ID"
// @Param house path int true "House number (1-12)"
// @Success 200 {object} response.Data[dto.HouseDetail]
// @Failure 400 {object} response.Error
// @Router /v1/houses/{house} [get]
func (handler *Handler) GetHouse(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHouse")
	defer scope.End()

	house, err := service.ParseHouse(chi.URLParam(r, constant.RequestParamHouse))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	detail, err := handler.service.Detail(ctx, middleware.VisitorID(ctx), house)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("house", house).Msg("failed to describe house")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, detail)
}
