// Package mutalyzer talks to the Mutalyzer normalization API and converts
// its raw genomic annotation payloads into renderable exons.
package mutalyzer

import (
	"fmt"
	"strconv"

	"github.com/exonviz/exonviz/internal/exon"
)

// parsePair parses one raw coordinate pair of decimal strings.
func parsePair(pair []string) (int, int, error) {
	if len(pair) != 2 {
		return 0, 0, fmt.Errorf("coordinate pair has %d fields, expected 2", len(pair))
	}
	a, err := strconv.Atoi(pair[0])
	if err != nil {
		return 0, 0, fmt.Errorf("coordinate %q: %w", pair[0], err)
	}
	b, err := strconv.Atoi(pair[1])
	if err != nil {
		return 0, 0, fmt.Errorf("coordinate %q: %w", pair[1], err)
	}
	return a, b, nil
}

// IsReverse reports whether raw coordinate pairs describe a reverse-strand
// feature. Mutalyzer encodes the strand in the pair order: the first pair
// is descending on the reverse strand.
func IsReverse(pairs [][]string) bool {
	if len(pairs) == 0 {
		return false
	}
	a, b, err := parsePair(pairs[0])
	if err != nil {
		return false
	}
	return b < a
}

// convertPair normalizes one 1-based inclusive pair into a 0-based
// half-open Range in the increasing coordinate space.
func convertPair(pair []string) (exon.Range, error) {
	a, b, err := parsePair(pair)
	if err != nil {
		return exon.Range{}, err
	}
	if b < a {
		a, b = b, a
	}
	r := exon.Range{Start: a - 1, End: b}
	if !r.Valid() {
		return exon.Range{}, fmt.Errorf("degenerate range (%d, %d)", a, b)
	}
	return r, nil
}

// ConvertCodingPositions converts the raw coding-region pair into a
// normalized Range. Only the first pair is meaningful: the coding region
// is a single genomic interval.
func ConvertCodingPositions(pairs [][]string) (exon.Range, error) {
	if len(pairs) == 0 {
		return exon.Range{}, fmt.Errorf("no coding region positions")
	}
	r, err := convertPair(pairs[0])
	if err != nil {
		return exon.Range{}, fmt.Errorf("coding region: %w", err)
	}
	return r, nil
}

// ConvertExonPositions converts raw exon pairs into normalized Ranges in
// increasing coordinate order. Reverse-strand transcripts arrive with
// descending pairs in transcript order; each pair is normalized on its own
// and the sequence is flipped so the output is strictly increasing.
// Abutting exons stay distinct ranges.
func ConvertExonPositions(pairs [][]string) ([]exon.Range, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no exon positions")
	}
	reverse := IsReverse(pairs)

	ranges := make([]exon.Range, 0, len(pairs))
	for i, pair := range pairs {
		r, err := convertPair(pair)
		if err != nil {
			return nil, fmt.Errorf("exon %d: %w", i+1, err)
		}
		ranges = append(ranges, r)
	}

	if reverse {
		for i, j := 0, len(ranges)-1; i < j; i, j = i+1, j-1 {
			ranges[i], ranges[j] = ranges[j], ranges[i]
		}
	}
	return ranges, nil
}
