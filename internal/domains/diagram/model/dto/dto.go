package dto

import (
	"fmt"
	"starlight/internal/domains/diagram/model"
)

type SectorResponse struct {
	House      int     `json:"house"`
	Title      string  `json:"title"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Fill       string  `json:"fill"`
	Path       string  `json:"path"`
}

func (r *SectorResponse) FromModel(s model.Sector, g model.Geometry) {
	r.House = s.House
	r.Title = s.Title
	r.StartAngle = s.StartAngle
	r.EndAngle = s.EndAngle
	r.Fill = s.Fill
	r.Path = s.Path(g)
}

// HouseDetail is what activating a sector shows.
type HouseDetail struct {
	SectorResponse
	Summary string `json:"summary"`
	// For names the owner of the most recent booking, when known.
	For string `json:"for,omitempty"`
}

// Lines is the modal text for the detail.
func (d HouseDetail) Lines() []string {
	lines := []string{fmt.Sprintf("House %d: %s", d.House, d.Title)}

	if d.Summary != "" {
		lines = append(lines, d.Summary)
	}

	if d.For != "" {
		lines = append(lines, "For: "+d.For)
	}

	return lines
}
