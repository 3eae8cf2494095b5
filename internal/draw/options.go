// Package draw turns exon records into polygon geometry and writes the
// resulting diagram as SVG.
package draw

// Option is one configurable drawing setting, surfaced both as a command
// line flag and as a config file key.
type Option struct {
	Name        string
	Default     any
	Description string
}

// Options is the full set of drawing settings with their defaults.
var Options = []Option{
	{"scale", 5.0, "Number of pixels per base"},
	{"height", 10.0, "Height of the exon boxes, in unscaled units"},
	{"gap", 5.0, "Visual gap between consecutive exons, in unscaled units"},
	{"color", "green", "Stroke color for the exon outlines"},
	{"variants", true, "Draw variant markers inside the exons"},
}

// Config collects the drawing settings in effect for one render.
type Config struct {
	Scale    float64
	Height   float64
	Gap      float64
	Color    string
	Variants bool
}

// DefaultConfig returns a Config populated from the Options defaults.
func DefaultConfig() Config {
	return Config{
		Scale:    5,
		Height:   10,
		Gap:      5,
		Color:    "green",
		Variants: true,
	}
}
