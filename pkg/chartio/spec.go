package chartio

import (
	"strings"

	"github.com/crayonviz/crayon/pkg/chart"
	"github.com/crayonviz/crayon/pkg/errors"
)

// Spec is the wire form of a chart description. One struct covers all three
// encodings; the tags keep the key names identical across them.
//
// Scalar fields stay ahead of the table arrays so the TOML encoder emits
// valid documents.
type Spec struct {
	Kind          string   `json:"kind" toml:"kind" yaml:"kind"`
	Title         string   `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	XLabel        string   `json:"xlabel,omitempty" toml:"xlabel,omitempty" yaml:"xlabel,omitempty"`
	YLabel        string   `json:"ylabel,omitempty" toml:"ylabel,omitempty" yaml:"ylabel,omitempty"`
	Width         float64  `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`
	Height        float64  `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty"`
	Seed          uint64   `json:"seed,omitempty" toml:"seed,omitempty" yaml:"seed,omitempty"`
	Fill          string   `json:"fill,omitempty" toml:"fill,omitempty" yaml:"fill,omitempty"`
	FillDirection float64  `json:"fill_direction,omitempty" toml:"fill_direction,omitempty" yaml:"fill_direction,omitempty"`
	Legend        string   `json:"legend,omitempty" toml:"legend,omitempty" yaml:"legend,omitempty"`
	NoGrid        bool     `json:"no_grid,omitempty" toml:"no_grid,omitempty" yaml:"no_grid,omitempty"`
	Area          bool     `json:"area,omitempty" toml:"area,omitempty" yaml:"area,omitempty"`
	Donut         bool     `json:"donut,omitempty" toml:"donut,omitempty" yaml:"donut,omitempty"`
	Palette       []string `json:"palette,omitempty" toml:"palette,omitempty" yaml:"palette,omitempty"`
	Labels        []string `json:"labels,omitempty" toml:"labels,omitempty" yaml:"labels,omitempty"`

	Series []Series `json:"series,omitempty" toml:"series,omitempty" yaml:"series,omitempty"`
	Slices []Slice  `json:"slices,omitempty" toml:"slices,omitempty" yaml:"slices,omitempty"`
}

// Series is one named run of values in a line spec.
type Series struct {
	Name   string    `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Values []float64 `json:"values" toml:"values" yaml:"values"`
}

// Slice is one labeled value in a pie or donut spec.
type Slice struct {
	Label string  `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	Value float64 `json:"value" toml:"value" yaml:"value"`
}

// Validate checks the parts of the spec that must be right before a chart
// can even be constructed. Data-level problems are left to the chart itself.
func (s *Spec) Validate() error {
	return errors.ValidateChartType(s.Kind)
}

// Chart builds the chart value the spec describes. Kind "donut" is shorthand
// for a pie with the donut flag set.
func (s *Spec) Chart() (chart.Chart, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	switch strings.ToLower(s.Kind) {
	case chart.KindLine:
		series := make([]chart.Series, len(s.Series))
		for i, sr := range s.Series {
			series[i] = chart.Series{Name: sr.Name, Values: sr.Values}
		}
		return chart.Line{Labels: s.Labels, Series: series, Area: s.Area}, nil
	default:
		slices := make([]chart.Slice, len(s.Slices))
		for i, sl := range s.Slices {
			slices[i] = chart.Slice{Label: sl.Label, Value: sl.Value}
		}
		donut := s.Donut || strings.EqualFold(s.Kind, "donut")
		return chart.Pie{Slices: slices, Donut: donut}, nil
	}
}

// Config maps the presentation fields onto a chart config. Zero values pass
// through untouched; the chart layer applies its defaults.
func (s *Spec) Config() chart.Config {
	return chart.Config{
		Title:         s.Title,
		XLabel:        s.XLabel,
		YLabel:        s.YLabel,
		Width:         s.Width,
		Height:        s.Height,
		Seed:          s.Seed,
		Palette:       s.Palette,
		Fill:          s.Fill,
		FillDirection: s.FillDirection,
		Legend:        s.Legend,
		NoGrid:        s.NoGrid,
	}
}
