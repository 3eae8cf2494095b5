package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exonviz/exonviz/internal/exon"
)

func TestRender(t *testing.T) {
	exons := []exon.Exon{
		{
			Length: 20,
			Coding: exon.Coding{Start: 0, End: 20, StartPhase: 0, EndPhase: 2},
			Variants: []exon.Variant{
				{Position: 5, Description: "274G>T", Color: "red"},
			},
		},
		{
			Length: 10,
			Coding: exon.Coding{Start: 0, End: 10, StartPhase: 2, EndPhase: 0},
		},
	}

	var buf bytes.Buffer
	err := Render(&buf, exons, DefaultConfig())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, 2, strings.Count(out, "<polygon"))
	assert.Equal(t, 1, strings.Count(out, "<line"))
	assert.Contains(t, out, "stroke:green")
	assert.Contains(t, out, "stroke:red")
}

func TestRenderInvalidPhase(t *testing.T) {
	exons := []exon.Exon{
		{Length: 10, Coding: exon.Coding{Start: 0, End: 10, StartPhase: 5, EndPhase: 0}},
	}

	var buf bytes.Buffer
	err := Render(&buf, exons, DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phase")
	assert.Zero(t, buf.Len(), "nothing should be written on error")
}
