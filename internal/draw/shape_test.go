package draw

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exonviz/exonviz/internal/exon"
)

func TestExonPolygonFlat(t *testing.T) {
	points, err := exonPolygon(10, 10, 100, 10, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{10, 10},
		{110, 10},
		{110, 20},
		{10, 20},
	}, points)
}

func TestExonPolygonNotchedRight(t *testing.T) {
	points, err := exonPolygon(10, 10, 100, 10, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{10, 10},
		{110, 10},
		{105, 15},
		{110, 20},
		{10, 20},
	}, points)
}

func TestExonPolygonProtrudingLeft(t *testing.T) {
	points, err := exonPolygon(10, 10, 100, 10, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{10, 10},
		{110, 10},
		{110, 20},
		{10, 20},
		{5, 15},
	}, points)
}

func TestExonPolygonAllPhaseCombinations(t *testing.T) {
	// Every (start, end) phase pair renders; the edge features add one
	// vertex each to the base rectangle.
	for start := 0; start < 3; start++ {
		for end := 0; end < 3; end++ {
			t.Run(fmt.Sprintf("phase_%d_%d", start, end), func(t *testing.T) {
				points, err := exonPolygon(0, 0, 50, 10, start, end)
				require.NoError(t, err)

				want := 4
				if start != 0 {
					want++
				}
				if end != 0 {
					want++
				}
				assert.Len(t, points, want)
			})
		}
	}
}

func TestExonPolygonEdgesMate(t *testing.T) {
	// The right-edge feature of one exon and the left-edge feature of the
	// next point the same way: both apexes sit half a height left of the
	// shared boundary.
	right, err := exonPolygon(0, 0, 50, 10, 0, 1)
	require.NoError(t, err)
	left, err := exonPolygon(55, 0, 50, 10, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, Point{45, 5}, right[2])
	assert.Equal(t, Point{50, 5}, left[4])
}

func TestExonPolygonInvalidPhase(t *testing.T) {
	_, err := exonPolygon(0, 0, 50, 10, 3, 0)
	assert.Error(t, err)

	_, err = exonPolygon(0, 0, 50, 10, 0, -1)
	assert.Error(t, err)
}

func TestLayout(t *testing.T) {
	exons := []exon.Exon{
		{
			Length: 4,
			Coding: exon.Coding{Start: 0, End: 4, StartPhase: 0, EndPhase: 1},
			Variants: []exon.Variant{
				{Position: 2, Description: "274G>T", Color: "red"},
			},
		},
		{
			Length: 5,
			Coding: exon.Coding{Start: 0, End: 5, StartPhase: 1, EndPhase: 0},
		},
	}

	cfg := DefaultConfig()
	cfg.Scale = 2

	d, err := Layout(exons, cfg)
	require.NoError(t, err)
	require.Len(t, d.Polygons, 2)

	// First exon starts at the margin, second advances by length + gap.
	assert.Equal(t, Point{20, 20}, d.Polygons[0].Points[0])
	assert.Equal(t, Point{38, 20}, d.Polygons[1].Points[0])

	// Canvas bounds derived from the laid-out geometry.
	assert.Equal(t, 68.0, d.Width)
	assert.Equal(t, 60.0, d.Height)

	require.Len(t, d.Markers, 1)
	assert.Equal(t, Marker{
		X:           24,
		Top:         20,
		Bottom:      40,
		Color:       "red",
		Description: "274G>T",
	}, d.Markers[0])
}

func TestLayoutVariantsDisabled(t *testing.T) {
	exons := []exon.Exon{
		{
			Length:   10,
			Variants: []exon.Variant{{Position: 5, Description: "274G>T", Color: "red"}},
		},
	}

	cfg := DefaultConfig()
	cfg.Variants = false

	d, err := Layout(exons, cfg)
	require.NoError(t, err)
	assert.Len(t, d.Polygons, 1)
	assert.Empty(t, d.Markers)
}

func TestLayoutNonCodingExonIsRectangle(t *testing.T) {
	d, err := Layout([]exon.Exon{{Length: 30}}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	assert.Len(t, d.Polygons[0].Points, 4)
}
