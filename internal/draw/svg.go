package draw

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/exonviz/exonviz/internal/exon"
)

// Render lays out the exons and writes the diagram as an SVG document:
// one polygon per exon and one marker line per variant.
func Render(w io.Writer, exons []exon.Exon, cfg Config) error {
	d, err := Layout(exons, cfg)
	if err != nil {
		return err
	}

	canvas := svg.New(w)
	canvas.Start(d.Width, d.Height)

	exonStyle := fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", cfg.Color)
	for _, p := range d.Polygons {
		xs := make([]float64, len(p.Points))
		ys := make([]float64, len(p.Points))
		for i, pt := range p.Points {
			xs[i] = pt.X
			ys[i] = pt.Y
		}
		canvas.Polygon(xs, ys, exonStyle)
	}

	for _, m := range d.Markers {
		style := fmt.Sprintf("stroke:%s;stroke-width:2", m.Color)
		canvas.Line(m.X, m.Top, m.X, m.Bottom, style)
	}

	canvas.End()
	return nil
}
