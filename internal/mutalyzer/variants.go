package mutalyzer

import (
	"strings"

	"github.com/exonviz/exonviz/internal/exon"
)

// View is one entry of a Mutalyzer view_variants payload. Entries describe
// either an actual sequence variant or the unchanged stretches around it.
type View struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Start       int    `json:"start,omitempty"`
	End         int    `json:"end,omitempty"`
}

// Variant marker colors. Substitutions get their own color, everything
// else falls in the default category.
const (
	colorSubstitution = "red"
	colorDefault      = "orange"
)

// variantColor picks the display color for a variant description.
func variantColor(description string) string {
	if strings.Contains(description, ">") {
		return colorSubstitution
	}
	return colorDefault
}

// ParseViewVariants filters a view_variants payload down to the entries
// that describe actual sequence variants.
func ParseViewVariants(views []View) []View {
	var variants []View
	for _, v := range views {
		if v.Type == "variant" {
			variants = append(variants, v)
		}
	}
	return variants
}

// Inside reports whether a view's absolute position falls within the exon.
func Inside(ex exon.Range, v View) bool {
	return ex.Contains(v.Start)
}

// ExonVariants maps the views that fall inside the exon onto exon-local
// Variant markers. Views outside the exon belong to another exon and are
// dropped here.
func ExonVariants(ex exon.Range, views []View) []exon.Variant {
	var variants []exon.Variant
	for _, v := range views {
		if !Inside(ex, v) {
			continue
		}
		variants = append(variants, exon.Variant{
			Position:    v.Start - ex.Start,
			Description: v.Description,
			Color:       variantColor(v.Description),
		})
	}
	return variants
}
