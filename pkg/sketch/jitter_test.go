package sketch

import (
	"math"
	"strings"
	"testing"

	"github.com/crayonviz/crayon/pkg/errors"
	"github.com/crayonviz/crayon/pkg/geom"
)

func TestJitterSampleCount(t *testing.T) {
	// The basis fit over n+1 samples emits exactly n cubic segments, so the
	// sample count is visible in the output structure.
	line := geom.Line(geom.Pt(0, 0), geom.Pt(100, 0))

	for _, n := range []int{2, 5, 50} {
		got, err := Jitter(line, 2, n, false, NewRNG(1))
		if err != nil {
			t.Fatalf("Jitter(samples=%d) error: %v", n, err)
		}
		if c := countCubics(got); c != n {
			t.Errorf("Jitter(samples=%d) emitted %d cubics, want %d", n, c, n)
		}
	}
}

func TestJitterHorizontalLine(t *testing.T) {
	// A horizontal line from (0,0) to (100,0) with amount 2: every output
	// coordinate keeps y within ±1 and x still spans the line.
	line := geom.Line(geom.Pt(0, 0), geom.Pt(100, 0))

	got, err := Jitter(line, 2, 50, false, NewRNG(7))
	if err != nil {
		t.Fatal(err)
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, p := range geom.Flatten(got, geom.Tolerance) {
		if p.Y < -1 || p.Y > 1 {
			t.Fatalf("point %v drifts outside y ∈ [-1, 1]", p)
		}
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}

	if minX > 1 || maxX < 99 {
		t.Errorf("jittered line spans x ∈ [%v, %v], want ≈[0, 100]", minX, maxX)
	}
}

func TestJitterZeroAmount(t *testing.T) {
	// amount 0 disables displacement but keeps resampling and smoothing:
	// a straight line stays exactly straight.
	line := geom.Line(geom.Pt(0, 0), geom.Pt(100, 0))

	got, err := Jitter(line, 0, 10, false, NewRNG(3))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range geom.Flatten(got, geom.Tolerance) {
		if math.Abs(p.Y) > 1e-9 {
			t.Fatalf("zero-amount jitter moved point to %v", p)
		}
	}
}

func TestJitterClosed(t *testing.T) {
	circle := geom.Circle(geom.Pt(50, 50), 30)

	got, err := Jitter(circle, 2, 24, true, NewRNG(9))
	if err != nil {
		t.Fatal(err)
	}

	if !got.Closed() {
		t.Fatal("closed jitter should produce a closed path")
	}

	// The loop returns exactly to its start.
	start := got.Start()
	last, ok := got[len(got)-2].(geom.CubicTo)
	if !ok {
		t.Fatalf("op before Z should be CubicTo, got %T", got[len(got)-2])
	}
	if last.Point.Distance(start) > 1e-9 {
		t.Errorf("loop ends at %v, want %v", last.Point, start)
	}

	// Samples ride the circle within the jitter bound.
	for _, p := range geom.Flatten(got, geom.Tolerance) {
		r := p.Distance(geom.Pt(50, 50))
		if r < 30-2 || r > 30+2 {
			t.Errorf("point %v has radius %v, want 30±2", p, r)
		}
	}
}

func TestJitterDegeneratePath(t *testing.T) {
	// A zero-length path collapses to a cloud around the single point. Not
	// an error.
	dot := geom.Line(geom.Pt(5, 5), geom.Pt(5, 5))

	got, err := Jitter(dot, 2, 10, false, NewRNG(4))
	if err != nil {
		t.Fatalf("zero-length path should not error: %v", err)
	}
	for _, p := range geom.Flatten(got, geom.Tolerance) {
		if p.Distance(geom.Pt(5, 5)) > math.Sqrt2 {
			t.Errorf("point %v strays from the collapsed source point", p)
		}
	}
}

func TestJitterDeterminism(t *testing.T) {
	line := geom.Line(geom.Pt(0, 0), geom.Pt(100, 40))

	a, _ := Jitter(line, 3, 20, false, NewRNG(42))
	b, _ := Jitter(line, 3, 20, false, NewRNG(42))
	if a.String() != b.String() {
		t.Error("same seed should reproduce the same path")
	}

	c, _ := Jitter(line, 3, 20, false, NewRNG(43))
	if a.String() == c.String() {
		t.Error("different seeds should produce different paths")
	}
}

func TestJitterValidation(t *testing.T) {
	line := geom.Line(geom.Pt(0, 0), geom.Pt(10, 0))

	tests := []struct {
		name    string
		amount  float64
		samples int
		rngNil  bool
		code    errors.Code
	}{
		{"too few samples", 2, 1, false, errors.ErrCodeInvalidSamples},
		{"zero samples", 2, 0, false, errors.ErrCodeInvalidSamples},
		{"negative amount", -1, 10, false, errors.ErrCodeInvalidJitter},
		{"NaN amount", math.NaN(), 10, false, errors.ErrCodeInvalidJitter},
		{"nil rng", 2, 10, true, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewRNG(1)
			if tt.rngNil {
				rng = nil
			}
			_, err := Jitter(line, tt.amount, tt.samples, false, rng)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestJitterOutputIsPathData(t *testing.T) {
	got, err := Jitter(geom.Rect(0, 0, 50, 30), 1.5, 32, true, NewRNG(11))
	if err != nil {
		t.Fatal(err)
	}

	s := got.String()
	if !strings.HasPrefix(s, "M") {
		t.Errorf("path should start with M, got: %s", s)
	}
	if !strings.Contains(s, "C") {
		t.Errorf("path should contain cubic segments, got: %s", s)
	}
	if !strings.HasSuffix(s, "Z") {
		t.Errorf("closed path should end with Z, got: %s", s)
	}
}
