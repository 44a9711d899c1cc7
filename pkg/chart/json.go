package chart

import (
	"encoding/json"
)

type jsonOutput struct {
	Kind     string        `json:"kind"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Seed     uint64        `json:"seed,omitempty"`
	Shapes   []jsonShape   `json:"shapes"`
	Texts    []jsonText    `json:"texts,omitempty"`
	Patterns []jsonPattern `json:"patterns,omitempty"`
}

type jsonShape struct {
	Class       string  `json:"class"`
	Path        string  `json:"path"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Fill        string  `json:"fill,omitempty"`
	FillOpacity float64 `json:"fill_opacity,omitempty"`
	Dashed      bool    `json:"dashed,omitempty"`
	Rough       bool    `json:"rough,omitempty"`
}

type jsonText struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Text   string  `json:"text"`
	Size   float64 `json:"size"`
	Anchor string  `json:"anchor"`
	Color  string  `json:"color"`
	Rotate float64 `json:"rotate,omitempty"`
}

type jsonPattern struct {
	ID      string  `json:"id"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Color   string  `json:"color"`
	Blobs   int     `json:"blobs"`
	Strokes int     `json:"strokes"`
}

// RenderJSON exports the computed chart as a pretty-printed JSON document.
// This is the data interchange format for external tooling, carrying:
//
//   - Every shape's path data and paint attributes
//   - Every text element with position, size, and anchor
//   - Pattern metadata (ids, tile sizes, element counts)
//
// The same options as [RenderSVG] apply; a fixed seed reproduces the same
// geometry across exports. RenderJSON returns an error only for invalid
// chart data or configuration — marshaling a computed frame cannot fail.
func RenderJSON(c Chart, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	f, err := r.compute(c)
	if err != nil {
		return nil, err
	}

	out := jsonOutput{
		Kind:   c.Kind(),
		Width:  f.width,
		Height: f.height,
		Seed:   r.cfg.Seed,
		Shapes: buildJSONShapes(f),
		Texts:  buildJSONTexts(f),
	}
	for _, p := range f.patterns {
		out.Patterns = append(out.Patterns, jsonPattern{
			ID:      p.ID,
			Width:   p.Width,
			Height:  p.Height,
			Color:   p.BaseColor,
			Blobs:   len(p.Blobs),
			Strokes: len(p.Strokes),
		})
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildJSONShapes(f *frame) []jsonShape {
	shapes := make([]jsonShape, 0, len(f.shapes))
	for _, s := range f.shapes {
		shapes = append(shapes, jsonShape{
			Class:       s.class,
			Path:        s.path.String(),
			Stroke:      s.stroke,
			StrokeWidth: s.strokeWidth,
			Fill:        s.fill,
			FillOpacity: s.fillOpacity,
			Dashed:      s.dashed,
			Rough:       s.rough,
		})
	}
	return shapes
}

func buildJSONTexts(f *frame) []jsonText {
	texts := make([]jsonText, 0, len(f.texts))
	for _, t := range f.texts {
		texts = append(texts, jsonText{
			X:      t.x,
			Y:      t.y,
			Text:   t.s,
			Size:   t.size,
			Anchor: t.anchor,
			Color:  t.color,
			Rotate: t.rotate,
		})
	}
	return texts
}
