// Package exon defines the value types for transcript exon rendering.
package exon

// Range is a 0-based half-open interval in the normalized, increasing
// coordinate space. A valid Range has End > Start.
type Range struct {
	Start int // Inclusive start (0-based)
	End   int // Exclusive end
}

// Len returns the number of positions covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Valid returns true if the range is non-empty.
func (r Range) Valid() bool {
	return r.End > r.Start
}

// Contains returns true if the given position falls inside the range.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos < r.End
}

// Intersect returns the overlap of two ranges. The result is invalid
// (End <= Start) when the ranges do not overlap.
func (r Range) Intersect(other Range) Range {
	return Range{Start: max(r.Start, other.Start), End: min(r.End, other.End)}
}

// Coding describes the coding portion of one exon. Start and End are
// relative to the exon's own local range [0, exon length). StartPhase and
// EndPhase are reading-frame phases in {0,1,2}; EndPhase always equals
// (End - Start + StartPhase) mod 3. An exon entirely outside the coding
// region has an empty Coding: Start == End, phases carried through.
type Coding struct {
	Start      int // Local coding start within the exon
	End        int // Local coding end within the exon (exclusive)
	StartPhase int // Reading-frame phase at the coding start
	EndPhase   int // Reading-frame phase at the coding end
}

// Empty returns true if the exon has no coding sequence.
func (c Coding) Empty() bool {
	return c.End <= c.Start
}

// Variant marks a single-position sequence change inside an exon.
type Variant struct {
	Position    int    // Offset within the exon, in [0, exon length)
	Description string // Free-form variant label, e.g. "274G>T"
	Color       string // Display color for the marker
}

// Exon is one transcript exon in 5'->3' order: its rendered length, the
// coding portion with frame phases, and the variants that fall inside it.
// Exons are immutable once built; downstream drawing only reads them.
type Exon struct {
	Length   int
	Coding   Coding
	Variants []Variant
}

// StartPhase returns the reading-frame phase at the left edge of the exon
// as drawn: 0 for a non-coding exon.
func (e Exon) StartPhase() int {
	if e.Coding.Empty() {
		return 0
	}
	return e.Coding.StartPhase
}

// EndPhase returns the reading-frame phase at the right edge of the exon
// as drawn: 0 for a non-coding exon.
func (e Exon) EndPhase() int {
	if e.Coding.Empty() {
		return 0
	}
	return e.Coding.EndPhase
}
