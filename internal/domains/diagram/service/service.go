package service

import (
	"context"
	"starlight/config"
	"starlight/infras/otel"
	"starlight/internal/domains/diagram/catalog"
	"starlight/internal/domains/diagram/model"
	"starlight/internal/domains/diagram/model/dto"
	journal "starlight/internal/domains/journal/service"
	"starlight/shared/constant"
	"starlight/shared/failure"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Diagram interface {
	Geometry() model.Geometry
	Sectors() []model.Sector
	SVG(ctx context.Context) (string, error)
	Detail(ctx context.Context, owner string, house int) (dto.HouseDetail, error)
}

type serviceImpl struct {
	journal  journal.Journal
	catalog  *catalog.Catalog
	geometry model.Geometry
	sectors  []model.Sector
	otel     otel.Otel
}

// GeometryFromConfig fills unset values from the default wheel.
func GeometryFromConfig(cfg *config.Config) model.Geometry {
	g := model.DefaultGeometry()
	d := cfg.Diagram

	if d.CenterX > 0 {
		g.CenterX = d.CenterX
	}

	if d.CenterY > 0 {
		g.CenterY = d.CenterY
	}

	if d.Radius > model.LabelInset {
		g.Radius = d.Radius
	}

	if d.EvenFill != "" {
		g.EvenFill = d.EvenFill
	}

	if d.OddFill != "" {
		g.OddFill = d.OddFill
	}

	if d.StrokeFill != "" {
		g.Stroke = d.StrokeFill
	}

	return g
}

func New(journal journal.Journal, catalog *catalog.Catalog, cfg *config.Config, otel otel.Otel) Diagram {
	geometry := GeometryFromConfig(cfg)

	return &serviceImpl{
		journal:  journal,
		catalog:  catalog,
		geometry: geometry,
		sectors:  model.Build(geometry, catalog.Titles()),
		otel:     otel,
	}
}

func (s *serviceImpl) Geometry() model.Geometry { return s.geometry }

func (s *serviceImpl) Sectors() []model.Sector {
	out := make([]model.Sector, len(s.sectors))
	copy(out, s.sectors)

	return out
}

func (s *serviceImpl) SVG(ctx context.Context) (_ string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SVG")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var sb strings.Builder
	if err = writeSVG(&sb, s.geometry, s.sectors); err != nil {
		log.Error().Err(err).Msg("failed to render diagram")

		return "", failure.RenderError("diagram could not be rendered", err) //nolint:wrapcheck
	}

	return sb.String(), nil
}

// Detail describes a house. The visitor's most recent booking personalizes
// it when available; journal failures only drop the personalization.
func (s *serviceImpl) Detail(ctx context.Context, owner string, house int) (res dto.HouseDetail, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Detail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("diagram.house", house)

	entry, ok := s.catalog.Entry(house)
	if !ok {
		return res, failure.InvalidHouse
	}

	res.FromModel(s.sectors[house-1], s.geometry)
	res.Summary = entry.Summary

	if owner == constant.Empty {
		return res, nil
	}

	latest, found, err := s.journal.MostRecent(ctx, owner)
	if err != nil {
		log.Warn().Err(err).Str("owner", owner).Int("house", house).Msg("personalization skipped, journal unavailable")

		return res, nil
	}

	if found {
		res.For = strings.TrimSpace(latest.Name())
	}

	return res, nil
}

// ParseHouse reads a house number from a request or a data-house attribute.
func ParseHouse(raw string) (int, error) {
	house, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !model.Valid(house) {
		return 0, failure.InvalidHouse
	}

	return house, nil
}
