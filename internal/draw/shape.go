package draw

import (
	"fmt"

	"github.com/exonviz/exonviz/internal/exon"
)

// Point is one polygon vertex in canvas units.
type Point struct {
	X float64
	Y float64
}

// Polygon is the closed outline of one exon.
type Polygon struct {
	Points []Point
}

// Marker is a vertical variant tick inside an exon.
type Marker struct {
	X           float64
	Top         float64
	Bottom      float64
	Color       string
	Description string
}

// Diagram is the laid-out, scaled geometry for one transcript.
type Diagram struct {
	Polygons []Polygon
	Markers  []Marker
	Width    float64
	Height   float64
}

// Drawing margins in unscaled units.
const (
	marginX = 10
	marginY = 10
)

// exonPolygon returns the outline for a single exon anchored at (x, y),
// in unscaled units. The left edge encodes startPhase and the right edge
// endPhase, so consecutive exons mate like puzzle pieces:
//
//	phase 0: flat edge
//	phase 1: right edge notched inward, left edge protruding outward
//	phase 2: right edge protruding outward, left edge notched inward
//
// The notch apex sits at mid-height, half the box height deep.
func exonPolygon(x, y, length, height float64, startPhase, endPhase int) ([]Point, error) {
	if startPhase < 0 || startPhase > 2 || endPhase < 0 || endPhase > 2 {
		return nil, fmt.Errorf("reading-frame phase (%d, %d) out of range", startPhase, endPhase)
	}

	points := []Point{
		{x, y},          // top left
		{x + length, y}, // top right
	}
	switch endPhase {
	case 1:
		points = append(points, Point{x + length - 0.5*height, y + 0.5*height})
	case 2:
		points = append(points, Point{x + length + 0.5*height, y + 0.5*height})
	}
	points = append(points,
		Point{x + length, y + height}, // bottom right
		Point{x, y + height},          // bottom left
	)
	switch startPhase {
	case 1:
		points = append(points, Point{x - 0.5*height, y + 0.5*height})
	case 2:
		points = append(points, Point{x + 0.5*height, y + 0.5*height})
	}
	return points, nil
}

// Layout places the exons left to right with a fixed gap, maps each
// variant to a marker inside its exon, and uniformly scales the geometry.
func Layout(exons []exon.Exon, cfg Config) (*Diagram, error) {
	d := &Diagram{}
	x := float64(marginX)
	y := float64(marginY)

	for i, e := range exons {
		length := float64(e.Length)

		points, err := exonPolygon(x, y, length, cfg.Height, e.StartPhase(), e.EndPhase())
		if err != nil {
			return nil, fmt.Errorf("exon %d: %w", i+1, err)
		}
		for j := range points {
			points[j].X *= cfg.Scale
			points[j].Y *= cfg.Scale
		}
		d.Polygons = append(d.Polygons, Polygon{Points: points})

		if cfg.Variants {
			for _, v := range e.Variants {
				d.Markers = append(d.Markers, Marker{
					X:           (x + float64(v.Position)) * cfg.Scale,
					Top:         y * cfg.Scale,
					Bottom:      (y + cfg.Height) * cfg.Scale,
					Color:       v.Color,
					Description: v.Description,
				})
			}
		}

		x += length + cfg.Gap
	}

	// The running offset includes a trailing gap; swap it for the margin.
	d.Width = (x - cfg.Gap + marginX) * cfg.Scale
	d.Height = (y + cfg.Height + marginY) * cfg.Scale
	return d, nil
}
