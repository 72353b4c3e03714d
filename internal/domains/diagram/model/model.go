package model

import (
	"fmt"
	"math"
)

const (
	EntityName = "house"

	Houses        = 12
	SectorDegrees = 360 / Houses
	// StartDegrees puts house 1 at the top of the wheel.
	StartDegrees = -90
	LabelInset   = 40
)

type Geometry struct {
	CenterX float64
	CenterY float64
	Radius  float64

	EvenFill string
	OddFill  string
	Stroke   string
}

func DefaultGeometry() Geometry {
	return Geometry{
		CenterX:  200,
		CenterY:  200,
		Radius:   180,
		EvenFill: "#1d2247",
		OddFill:  "#2b3266",
		Stroke:   "rgba(255,255,255,0.12)",
	}
}

type Point struct {
	X float64
	Y float64
}

// Sector is one house of the wheel. Angles are in degrees, clockwise from
// the positive x axis.
type Sector struct {
	House      int
	StartAngle float64
	EndAngle   float64
	Start      Point
	End        Point
	Label      Point
	Fill       string
	Title      string
}

// Path is the wedge from the center out to the arc, swept clockwise.
func (s Sector) Path(g Geometry) string {
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 0 1 %s %s Z",
		num(g.CenterX), num(g.CenterY),
		num(s.Start.X), num(s.Start.Y),
		num(g.Radius), num(g.Radius),
		num(s.End.X), num(s.End.Y),
	)
}

func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (g Geometry) pointAt(deg, radius float64) Point {
	theta := radians(deg)

	return Point{
		X: g.CenterX + radius*math.Cos(theta),
		Y: g.CenterY + radius*math.Sin(theta),
	}
}

// Build lays out the twelve sectors. titles[i] labels house i+1; missing
// titles are left empty.
func Build(g Geometry, titles []string) []Sector {
	sectors := make([]Sector, Houses)

	for i := range Houses {
		start := float64(i*SectorDegrees + StartDegrees)
		end := start + SectorDegrees
		mid := start + SectorDegrees/2

		fill := g.EvenFill
		if i%2 == 1 {
			fill = g.OddFill
		}

		title := ""
		if i < len(titles) {
			title = titles[i]
		}

		sectors[i] = Sector{
			House:      i + 1,
			StartAngle: start,
			EndAngle:   end,
			Start:      g.pointAt(start, g.Radius),
			End:        g.pointAt(end, g.Radius),
			Label:      g.pointAt(mid, g.Radius-LabelInset),
			Fill:       fill,
			Title:      title,
		}
	}

	return sectors
}

// Valid reports whether house names one of the twelve sectors.
func Valid(house int) bool {
	return house >= 1 && house <= Houses
}
