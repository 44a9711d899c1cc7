package chart

import (
	"math"
	"testing"

	"github.com/crayonviz/crayon/pkg/errors"
)

func TestNiceTicks(t *testing.T) {
	tests := []struct {
		name        string
		lo, hi      float64
		count       int
		first, last float64
		len         int
	}{
		{name: "round century", lo: 0, hi: 100, count: 5, first: 0, last: 100, len: 6},
		{name: "offset range", lo: 7, hi: 22, count: 5, first: 6, last: 22, len: 9},
		{name: "degenerate point", lo: 0, hi: 0, count: 5, first: -1, last: 1, len: 5},
		{name: "reversed bounds", lo: 5, hi: 3, count: 4, first: 3, last: 5, len: 5},
		{name: "negative domain", lo: -30, hi: -5, count: 5, first: -30, last: -5, len: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticks := niceTicks(tt.lo, tt.hi, tt.count)
			if len(ticks) != tt.len {
				t.Fatalf("niceTicks(%v, %v, %d) returned %d ticks %v, want %d",
					tt.lo, tt.hi, tt.count, len(ticks), ticks, tt.len)
			}
			if got := ticks[0]; math.Abs(got-tt.first) > 1e-9 {
				t.Errorf("first tick = %v, want %v", got, tt.first)
			}
			if got := ticks[len(ticks)-1]; math.Abs(got-tt.last) > 1e-9 {
				t.Errorf("last tick = %v, want %v", got, tt.last)
			}
		})
	}
}

func TestNiceTicksBracketRange(t *testing.T) {
	// Ticks must always cover the data domain.
	cases := [][2]float64{{3, 97}, {0.02, 0.4}, {-12, 40}, {1000, 1001}}
	for _, c := range cases {
		ticks := niceTicks(c[0], c[1], 5)
		if ticks[0] > c[0] {
			t.Errorf("niceTicks(%v, %v) starts at %v, above the domain", c[0], c[1], ticks[0])
		}
		if ticks[len(ticks)-1] < c[1] {
			t.Errorf("niceTicks(%v, %v) ends at %v, below the domain", c[0], c[1], ticks[len(ticks)-1])
		}
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20, "20"},
		{0.5, "0.5"},
		{-30, "-30"},
		{1.2000000000000002, "1.2"}, // float noise from repeated step adds
	}
	for _, tt := range tests {
		if got := formatTick(tt.in); got != tt.want {
			t.Errorf("formatTick(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextWidthCountsRunes(t *testing.T) {
	// Multi-byte labels must measure by glyph, not by byte, or legend
	// boxes balloon around accented and CJK text.
	if got, want := textWidth("café", 10), textWidth("cafe", 10); got != want {
		t.Errorf("textWidth(café) = %v, want %v", got, want)
	}
	if got, want := textWidth("日本語", 10), 3*10*fontCharWidth; got != want {
		t.Errorf("textWidth(日本語) = %v, want %v", got, want)
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}
	got := cfg.withDefaults()

	if got.Width != DefaultWidth || got.Height != DefaultHeight {
		t.Errorf("withDefaults() size = %vx%v, want %vx%v",
			got.Width, got.Height, DefaultWidth, DefaultHeight)
	}
	if got.Fill != FillScribble {
		t.Errorf("withDefaults() fill = %q, want %q", got.Fill, FillScribble)
	}
	if len(got.Palette) != len(DefaultPalette) {
		t.Errorf("withDefaults() palette has %d colors, want %d",
			len(got.Palette), len(DefaultPalette))
	}

	// Pure merge: the receiver stays untouched.
	if cfg.Width != 0 || cfg.Fill != "" {
		t.Errorf("withDefaults() modified its receiver: %+v", cfg)
	}
}

func TestConfigWithDefaultsKeepsOverrides(t *testing.T) {
	cfg := Config{
		Title:   "custom",
		Width:   900,
		Fill:    FillOilPaint,
		Palette: []string{"#112233"},
	}
	got := cfg.withDefaults()

	if got.Title != "custom" || got.Width != 900 || got.Fill != FillOilPaint {
		t.Errorf("withDefaults() clobbered overrides: %+v", got)
	}
	if got.Height != DefaultHeight {
		t.Errorf("withDefaults() height = %v, want default %v", got.Height, DefaultHeight)
	}
	if len(got.Palette) != 1 || got.Palette[0] != "#112233" {
		t.Errorf("withDefaults() palette = %v, want the override", got.Palette)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Config{}.withDefaults(), wantErr: false},
		{name: "bad fill", cfg: Config{Fill: "plaid"}.withDefaults(), wantErr: true},
		{name: "bad legend", cfg: Config{Legend: "top"}.withDefaults(), wantErr: true},
		{name: "named palette", cfg: Config{Palette: []string{"tomato", "#112233"}}.withDefaults(), wantErr: false},
		{name: "bad palette color", cfg: Config{Palette: []string{"burnt sienna"}}.withDefaults(), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidatePaletteErrorCode(t *testing.T) {
	err := Config{Palette: []string{"not a color"}}.withDefaults().validate()
	if !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("validate() error = %v, want INVALID_COLOR", err)
	}
}

func TestConfigColorWraps(t *testing.T) {
	cfg := Config{Palette: []string{"#111111", "#222222"}}.withDefaults()
	if got := cfg.color(0); got != "#111111" {
		t.Errorf("color(0) = %q", got)
	}
	if got := cfg.color(2); got != "#111111" {
		t.Errorf("color(2) = %q, want wraparound to first entry", got)
	}
	if got := cfg.color(3); got != "#222222" {
		t.Errorf("color(3) = %q, want wraparound to second entry", got)
	}
}
