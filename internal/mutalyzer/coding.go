package mutalyzer

import "github.com/exonviz/exonviz/internal/exon"

// MakeCoding intersects an exon with the transcript's coding region and
// computes the reading-frame phase at both ends of the coding portion.
// startPhase is the phase carried in from the previous exon; the returned
// Coding's EndPhase is the phase to carry to the next one. An exon without
// coding sequence does not consume reading frame: it passes startPhase
// through unchanged.
func MakeCoding(ex, coding exon.Range, startPhase int) exon.Coding {
	overlap := ex.Intersect(coding)
	if !overlap.Valid() {
		return exon.Coding{StartPhase: startPhase, EndPhase: startPhase}
	}

	// The translation start site lies inside this exon, so the frame
	// begins here rather than chaining from upstream.
	if coding.Start > ex.Start {
		startPhase = 0
	}

	c := exon.Coding{
		Start:      overlap.Start - ex.Start,
		End:        overlap.End - ex.Start,
		StartPhase: startPhase,
	}
	c.EndPhase = (c.End - c.Start + startPhase) % 3
	return c
}
