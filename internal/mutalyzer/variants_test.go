package mutalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exonviz/exonviz/internal/exon"
)

func TestParseViewVariants(t *testing.T) {
	assert.Empty(t, ParseViewVariants([]View{{Type: "outside"}}))

	views := []View{
		{Type: "outside"},
		{Type: "variant", Description: "274G>T", Start: 433423},
	}
	assert.Equal(t, []View{
		{Type: "variant", Description: "274G>T", Start: 433423},
	}, ParseViewVariants(views))
}

func TestInside(t *testing.T) {
	ex := exon.Range{Start: 0, End: 10}

	assert.True(t, Inside(ex, View{Start: 0}))
	assert.False(t, Inside(ex, View{Start: 10}))
	assert.False(t, Inside(ex, View{Start: -1}))
}

func TestExonVariants(t *testing.T) {
	tests := []struct {
		name     string
		exon     exon.Range
		views    []View
		expected []exon.Variant
	}{
		{
			name:  "outside the exon",
			exon:  exon.Range{Start: 0, End: 10},
			views: []View{{Start: 100}},
		},
		{
			name:  "at the exon start",
			exon:  exon.Range{Start: 0, End: 10},
			views: []View{{Start: 0, Description: "274G>T"}},
			expected: []exon.Variant{
				{Position: 0, Description: "274G>T", Color: "red"},
			},
		},
		{
			name:  "offset exon",
			exon:  exon.Range{Start: 100, End: 110},
			views: []View{{Start: 105, Description: "274G>T"}},
			expected: []exon.Variant{
				{Position: 5, Description: "274G>T", Color: "red"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExonVariants(tt.exon, tt.views))
		})
	}
}

func TestVariantColor(t *testing.T) {
	assert.Equal(t, "red", variantColor("274G>T"))
	assert.Equal(t, "orange", variantColor("274del"))
	assert.Equal(t, "orange", variantColor("100_102dup"))
}
