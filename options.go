package pixelsprite

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// Transparent is the zero Color.
var Transparent = Color{}

// Black is opaque black.
var Black = Color{A: 1}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A)*65535.0 + 0.5)
	r = uint32(clamp01(c.R)*clamp01(c.A)*65535.0 + 0.5)
	g = uint32(clamp01(c.G)*clamp01(c.A)*65535.0 + 0.5)
	b = uint32(clamp01(c.B)*clamp01(c.A)*65535.0 + 0.5)
	return
}

// FromColorful wraps a go-colorful color with the given alpha.
func FromColorful(c colorful.Color, alpha float64) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Colorful drops alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func (c Color) scaled(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

type Options struct {
	// Colored selects hue/saturation/brightness rendering. When false,
	// body cells take the background color and borders are solid black.
	Colored bool
	// Multiplier applied to the RGB channels of border cells.
	// 0 => black outline, 1 => no darkening.
	EdgeBrightness float64
	// Probability-like control over hue changes along the primary axis.
	// 0 => a single hue per sprite. Higher => shorter runs of constant hue.
	ColorVariations float64
	// Share of a cell's brightness that is random rather than following
	// the sine ramp along the primary axis.
	BrightnessNoise float64
	// Upper bound of the per-sprite saturation. The effective value is a
	// uniform draw in [0, Saturation).
	Saturation float64
	// Each grid cell becomes a Scale x Scale block of pixels. Must be > 0.
	Scale int
	// Color of empty cells.
	Background Color
	// Fixed color for every non-empty cell, replacing the computed
	// hue/saturation/brightness. nil => computed color.
	Foreground *Color
}

func DefaultOptions() Options {
	return Options{
		Colored:         true,
		EdgeBrightness:  0.3,
		ColorVariations: 0.2,
		BrightnessNoise: 0.3,
		Saturation:      0.5,
		Scale:           1,
		Background:      Transparent,
	}
}

// OptionsFromSize returns the defaults with Scale chosen so that the longer
// side of the generated sprite is at least target pixels.
func OptionsFromSize(m *Mask, target int) Options {
	opt := DefaultOptions()
	if m == nil || target <= 0 {
		return opt
	}
	size := m.OutputSize()
	side := max(size.X, size.Y)
	opt.Scale = max(1, (target+side-1)/side)
	return opt
}

// Validate reports the first invalid field as a *ConfigError.
func (o Options) Validate() error {
	if o.Scale <= 0 {
		return &ConfigError{Field: "Scale", Value: o.Scale, Msg: "must be positive"}
	}
	unit := []struct {
		name string
		v    float64
	}{
		{"EdgeBrightness", o.EdgeBrightness},
		{"ColorVariations", o.ColorVariations},
		{"BrightnessNoise", o.BrightnessNoise},
		{"Saturation", o.Saturation},
	}
	for _, f := range unit {
		if !inUnit(f.v) {
			return &ConfigError{Field: f.name, Value: f.v, Msg: "must be in [0,1]"}
		}
	}
	if !o.Background.valid() {
		return &ConfigError{Field: "Background", Value: o.Background, Msg: "channels must be in [0,1]"}
	}
	if o.Foreground != nil && !o.Foreground.valid() {
		return &ConfigError{Field: "Foreground", Value: *o.Foreground, Msg: "channels must be in [0,1]"}
	}
	return nil
}

func (c Color) valid() bool {
	return inUnit(c.R) && inUnit(c.G) && inUnit(c.B) && inUnit(c.A)
}

// NaN fails both comparisons.
func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
