package scene

import (
	"github.com/san-kum/nodeweb/internal/network"
	"github.com/san-kum/nodeweb/internal/render"
)

const DefaultBackground = "#FFFFFF"

// Options configure a Scene. Canvas and Container name the drawing surface
// and the box it fills; hosts use Canvas as their window title.
type Options struct {
	Canvas    string
	Container string

	// NetworkColor is used for both nodes and edges.
	NetworkColor string
	Background   string
	Interactive  bool
	NodeRadius   float64
	LineWidth    float64

	DensityDivisor  float64
	LinkDistance    float64
	PhaseStep       float64
	RetentionMargin float64
	Seed            int64
}

// DefaultOptions leaves NetworkColor empty; callers must pick one.
func DefaultOptions() Options {
	return Options{
		Canvas:          "network",
		Container:       "network-container",
		Background:      DefaultBackground,
		Interactive:     true,
		NodeRadius:      network.DefaultRadius,
		LineWidth:       render.DefaultLineWidth,
		DensityDivisor:  network.DefaultDensityDivisor,
		LinkDistance:    render.DefaultLinkDistance,
		PhaseStep:       network.DefaultPhaseStep,
		RetentionMargin: network.DefaultRetentionMargin,
	}
}

func (o Options) validate() (node, background render.RGB, err error) {
	node, err = render.ParseHex(o.NetworkColor)
	if err != nil {
		return node, background, &ConfigError{Field: "network color", Value: o.NetworkColor, Wrapped: err}
	}
	background, err = render.ParseHex(o.Background)
	if err != nil {
		return node, background, &ConfigError{Field: "background color", Value: o.Background, Wrapped: err}
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"node radius", o.NodeRadius},
		{"line width", o.LineWidth},
		{"density divisor", o.DensityDivisor},
		{"link distance", o.LinkDistance},
		{"phase step", o.PhaseStep},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return node, background, &ConfigError{Field: p.name, Value: p.value, Wrapped: ErrParameterBounds}
		}
	}
	if !(o.RetentionMargin >= 0) {
		return node, background, &ConfigError{Field: "retention margin", Value: o.RetentionMargin, Wrapped: ErrParameterBounds}
	}
	return node, background, nil
}
