package mutalyzer

import (
	"fmt"

	"github.com/exonviz/exonviz/internal/exon"
)

// BuildExons converts the raw annotation payloads into the ordered exon
// records consumed by the drawing code. Reading-frame phase is threaded
// sequentially: each exon's end phase becomes the next exon's start phase,
// so exons must be processed in transcript order.
//
// An empty cdsPairs slice means the transcript is non-coding; every exon
// then gets an empty Coding.
func BuildExons(exonPairs, cdsPairs [][]string, views []View) ([]exon.Exon, error) {
	ranges, err := ConvertExonPositions(exonPairs)
	if err != nil {
		return nil, fmt.Errorf("exon positions: %w", err)
	}

	var coding exon.Range
	if len(cdsPairs) > 0 {
		coding, err = ConvertCodingPositions(cdsPairs)
		if err != nil {
			return nil, err
		}
	}

	variants := ParseViewVariants(views)

	exons := make([]exon.Exon, 0, len(ranges))
	phase := 0
	for _, r := range ranges {
		c := MakeCoding(r, coding, phase)
		phase = c.EndPhase
		exons = append(exons, exon.Exon{
			Length:   r.Len(),
			Coding:   c,
			Variants: ExonVariants(r, variants),
		})
	}
	return exons, nil
}
