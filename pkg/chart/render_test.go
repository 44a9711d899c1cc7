package chart

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/crayonviz/crayon/pkg/errors"
)

func testLine() Line {
	return Line{
		Labels: []string{"Q1", "Q2", "Q3", "Q4"},
		Series: []Series{
			{Name: "north", Values: []float64{12, 18, 9, 22}},
			{Name: "south", Values: []float64{7, 11, 16, 13}},
		},
	}
}

func testPie() Pie {
	return Pie{Slices: []Slice{
		{Label: "go", Value: 62},
		{Label: "rust", Value: 24},
		{Label: "zig", Value: 14},
	}}
}

func TestRenderSVGLine(t *testing.T) {
	svg, err := RenderSVG(testLine(), WithSeed(7), WithTitle("Revenue"))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	s := string(svg)

	if !strings.HasPrefix(s, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("output should start with the svg element, got: %.80s", s)
	}
	if !strings.HasSuffix(s, "</svg>\n") {
		t.Errorf("output should end with </svg>")
	}
	if !strings.Contains(s, "feTurbulence") || !strings.Contains(s, "feDisplacementMap") {
		t.Error("output should carry the rough displacement filter")
	}
	if got := strings.Count(s, `class="series"`); got != 2 {
		t.Errorf("got %d series strokes, want 2", got)
	}
	if got := strings.Count(s, `class="axis"`); got < 2 {
		t.Errorf("got %d axis shapes, want at least the two axis lines", got)
	}
	if !strings.Contains(s, `class="grid"`) {
		t.Error("grid lines should be drawn by default")
	}
	for _, want := range []string{">Revenue</text>", ">Q1</text>", ">Q4</text>", ">north</text>", ">south</text>"} {
		if !strings.Contains(s, want) {
			t.Errorf("output should contain %q", want)
		}
	}

	// Without Area, a line chart registers no fill patterns.
	if strings.Contains(s, "<pattern ") {
		t.Error("plain line chart should not emit pattern defs")
	}
}

func TestRenderSVGLineArea(t *testing.T) {
	line := testLine()
	line.Area = true

	svg, err := RenderSVG(line, WithSeed(3))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	s := string(svg)

	if got := strings.Count(s, `<pattern id="crayon-`); got != 2 {
		t.Errorf("got %d pattern defs, want one per series", got)
	}
	if got := strings.Count(s, `class="area"`); got != 2 {
		t.Errorf("got %d area shapes, want 2", got)
	}
	if !strings.Contains(s, `fill="url(#crayon-`) {
		t.Error("area shapes should reference their fill patterns")
	}
}

func TestRenderSVGLineOptions(t *testing.T) {
	svg, err := RenderSVG(testLine(), WithSeed(5), WithConfig(Config{
		NoGrid: true,
		Legend: LegendNone,
		XLabel: "quarter",
		YLabel: "units",
	}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	s := string(svg)

	if strings.Contains(s, `class="grid"`) {
		t.Error("NoGrid should suppress grid lines")
	}
	if strings.Contains(s, `class="swatch"`) {
		t.Error("LegendNone should suppress legend swatches")
	}
	if !strings.Contains(s, ">quarter</text>") || !strings.Contains(s, ">units</text>") {
		t.Error("axis labels should be rendered")
	}
	if !strings.Contains(s, `transform="rotate(-90`) {
		t.Error("the y axis label should be rotated")
	}
}

func TestRenderSVGPie(t *testing.T) {
	svg, err := RenderSVG(testPie(), WithSeed(11))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	s := string(svg)

	if got := strings.Count(s, `class="slice"`); got != 3 {
		t.Errorf("got %d slices, want 3", got)
	}
	if got := strings.Count(s, `<pattern id="crayon-`); got != 3 {
		t.Errorf("got %d pattern defs, want one per slice", got)
	}
	if got := strings.Count(s, `class="legend"`); got != 1 {
		t.Errorf("got %d legend boxes, want 1", got)
	}
	for _, want := range []string{">go</text>", ">rust</text>", ">zig</text>", ">62%</text>"} {
		if !strings.Contains(s, want) {
			t.Errorf("output should contain %q", want)
		}
	}
}

func TestRenderSVGPieDonut(t *testing.T) {
	pie := testPie()
	pie.Donut = true

	svg, err := RenderSVG(pie, WithSeed(11), WithFill(FillOilPaint))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	s := string(svg)

	if got := strings.Count(s, `class="slice"`); got != 3 {
		t.Errorf("got %d slices, want 3", got)
	}
	if got := strings.Count(s, `<pattern id="crayon-`); got != 3 {
		t.Errorf("got %d pattern defs, want 3", got)
	}
}

func TestRenderSVGSolidFill(t *testing.T) {
	svg, err := RenderSVG(testPie(), WithSeed(2), WithFill(FillNone))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	s := string(svg)

	if strings.Contains(s, "<pattern ") {
		t.Error("FillNone should not emit pattern defs")
	}
	if !strings.Contains(s, `fill="#dd4528" fill-opacity="0.55"`) {
		t.Error("slices should fall back to translucent solid fills")
	}
}

var pathDataRe = regexp.MustCompile(` d="([^"]*)"`)

// renderedGeometry strips ids and attributes, keeping only path data in
// document order.
func renderedGeometry(svg []byte) string {
	matches := pathDataRe.FindAllStringSubmatch(string(svg), -1)
	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = m[1]
	}
	return strings.Join(parts, "\n")
}

func TestRenderSVGDeterminism(t *testing.T) {
	first, err := RenderSVG(testPie(), WithSeed(42))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	second, err := RenderSVG(testPie(), WithSeed(42))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}

	// Pattern and filter ids differ between documents, the geometry must not.
	if renderedGeometry(first) != renderedGeometry(second) {
		t.Error("same seed should reproduce identical geometry")
	}

	third, err := RenderSVG(testPie(), WithSeed(43))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if renderedGeometry(first) == renderedGeometry(third) {
		t.Error("different seeds should produce different geometry")
	}
}

func TestRenderSVGErrors(t *testing.T) {
	tests := []struct {
		name     string
		chart    Chart
		opts     []Option
		wantCode errors.Code
	}{
		{
			name:     "no series",
			chart:    Line{},
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name: "empty series",
			chart: Line{Series: []Series{
				{Name: "a"},
			}},
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name: "ragged series",
			chart: Line{Series: []Series{
				{Name: "a", Values: []float64{1, 2, 3}},
				{Name: "b", Values: []float64{1, 2}},
			}},
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name: "label count mismatch",
			chart: Line{
				Labels: []string{"only one"},
				Series: []Series{{Name: "a", Values: []float64{1, 2}}},
			},
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:     "no slices",
			chart:    Pie{},
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:     "negative slice",
			chart:    Pie{Slices: []Slice{{Label: "a", Value: -1}}},
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:     "zero sum",
			chart:    Pie{Slices: []Slice{{Label: "a"}, {Label: "b"}}},
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:     "bad fill style",
			chart:    testPie(),
			opts:     []Option{WithFill("plaid")},
			wantCode: errors.ErrCodeInvalidFill,
		},
		{
			name:     "no room to plot",
			chart:    testLine(),
			opts:     []Option{WithSize(60, 50)},
			wantCode: errors.ErrCodeInvalidDimensions,
		},
		{
			name:     "no room for pie",
			chart:    testPie(),
			opts:     []Option{WithSize(70, 70)},
			wantCode: errors.ErrCodeInvalidDimensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithSeed(1)}, tt.opts...)
			_, err := RenderSVG(tt.chart, opts...)
			if err == nil {
				t.Fatal("RenderSVG() expected error, got nil")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := RenderJSON(testPie(), WithSeed(5))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var doc struct {
		Kind   string  `json:"kind"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Seed   uint64  `json:"seed"`
		Shapes []struct {
			Class string `json:"class"`
			Path  string `json:"path"`
		} `json:"shapes"`
		Patterns []struct {
			ID      string  `json:"id"`
			Width   float64 `json:"width"`
			Height  float64 `json:"height"`
			Strokes int     `json:"strokes"`
		} `json:"patterns"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Kind != KindPie {
		t.Errorf("kind = %q, want %q", doc.Kind, KindPie)
	}
	if doc.Width != DefaultWidth || doc.Height != DefaultHeight {
		t.Errorf("size = %vx%v, want defaults", doc.Width, doc.Height)
	}
	if doc.Seed != 5 {
		t.Errorf("seed = %d, want 5", doc.Seed)
	}
	if len(doc.Patterns) != 3 {
		t.Fatalf("got %d patterns, want 3", len(doc.Patterns))
	}
	for _, p := range doc.Patterns {
		if p.Width != 120 || p.Height != 120 {
			t.Errorf("pattern %s tile = %vx%v, want 120x120", p.ID, p.Width, p.Height)
		}
	}

	slices := 0
	for _, s := range doc.Shapes {
		if !strings.HasPrefix(s.Path, "M") {
			t.Errorf("shape path should start with a move, got %.20q", s.Path)
		}
		if s.Class == "slice" {
			slices++
		}
	}
	if slices != 3 {
		t.Errorf("got %d slice shapes, want 3", slices)
	}
}

func TestRenderJSONLine(t *testing.T) {
	out, err := RenderJSON(testLine(), WithSeed(9))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var doc struct {
		Kind   string `json:"kind"`
		Shapes []struct {
			Class string `json:"class"`
		} `json:"shapes"`
		Texts []struct {
			Text string `json:"text"`
		} `json:"texts"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Kind != KindLine {
		t.Errorf("kind = %q, want %q", doc.Kind, KindLine)
	}
	series := 0
	for _, s := range doc.Shapes {
		if s.Class == "series" {
			series++
		}
	}
	if series != 2 {
		t.Errorf("got %d series shapes, want 2", series)
	}

	var sawLabel bool
	for _, txt := range doc.Texts {
		if txt.Text == "Q3" {
			sawLabel = true
		}
	}
	if !sawLabel {
		t.Error("x labels should be exported")
	}
}

func TestRenderSVGFontFace(t *testing.T) {
	svg, err := RenderSVG(testLine(), WithSeed(1),
		WithFontFace("https://example.com/xkcd-script.woff"))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	s := string(svg)

	if !strings.Contains(s, "@font-face") {
		t.Error("WithFontFace should embed an @font-face rule")
	}
	if !strings.Contains(s, "https://example.com/xkcd-script.woff") {
		t.Error("the font url should appear in the document")
	}
}
