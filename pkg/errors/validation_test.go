package errors

import (
	"math"
	"testing"
)

func TestValidateSampleCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"minimum", 2, false},
		{"typical", 50, false},
		{"large", 10000, false},

		{"one", 1, true},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSampleCount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSampleCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSamples) {
				t.Errorf("ValidateSampleCount(%d) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateJitterAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 1.5, false},
		{"large", 500, false},

		{"negative", -0.1, true},
		{"NaN", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJitterAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJitterAmount(%g) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDensity(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"minimum", 1, false},
		{"recommended low", 5, false},
		{"recommended high", 15, false},
		{"above recommended", 40, false},

		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDensity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDensity(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTileSize(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"square", 120, 120, false},
		{"rectangular", 80, 40, false},
		{"sub-pixel", 0.5, 0.5, false},

		{"zero width", 0, 100, true},
		{"zero height", 100, 0, true},
		{"negative width", -10, 100, true},
		{"negative height", 100, -10, true},
		{"NaN width", math.NaN(), 100, true},
		{"infinite height", 100, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTileSize(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTileSize(%g, %g) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimensions) {
				t.Errorf("ValidateTileSize(%g, %g) returned wrong error code: %v", tt.w, tt.h, err)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"svg", "svg", false},
		{"png", "png", false},
		{"pdf", "pdf", false},
		{"json", "json", false},
		{"uppercase", "SVG", false},

		{"empty", "", true},
		{"unknown", "webp", true},
		{"with dot", ".svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateChartType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"line", "line", false},
		{"pie", "pie", false},
		{"donut", "donut", false},
		{"mixed case", "Line", false},

		{"empty", "", true},
		{"unknown", "scatter", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChartType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChartType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFill(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty means default", "", false},
		{"none", "none", false},
		{"scribble", "scribble", false},
		{"oilpaint", "oilpaint", false},

		{"unknown", "crosshatch", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFill(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFill(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSpecPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "charts/visitors.toml", false},
		{"valid absolute", "/home/user/chart.json", false},
		{"valid filename only", "chart.yaml", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpecPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSpecPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateSpecPath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidSamples,
		ErrCodeInvalidJitter,
		ErrCodeInvalidDensity,
		ErrCodeInvalidDimensions,
		ErrCodeInvalidColor,
		ErrCodeInvalidFormat,
		ErrCodeInvalidFill,
		ErrCodeInvalidChartType,
		ErrCodeInvalidSpec,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeRender,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
