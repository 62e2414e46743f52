package pixelsprite

import (
	"errors"
	"image"
	"math"
	"slices"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestGenerateSingleAmbiguousCell(t *testing.T) {
	opt := DefaultOptions()
	opt.Scale = 3
	s, err := Generate(mustMask([][]int{{2}}, false, false), opt, &seqSource{vals: []float64{0.9}})
	if err != nil {
		t.Fatal(err)
	}
	if s.Grid.At(0, 0) != Body {
		t.Fatalf("cell = %d, want body", s.Grid.At(0, 0))
	}
	if s.Buffer.W != 3 || s.Buffer.H != 3 {
		t.Fatalf("buffer = %dx%d, want 3x3", s.Buffer.W, s.Buffer.H)
	}
	// hue 0.9, saturation 0.9*0.5, brightness sin(0)*0.7 + 0.9*0.3
	want := colorful.Hsv(0.9*360, 0.45, 0.27)
	for y := range 3 {
		for x := range 3 {
			c := s.Buffer.At(x, y)
			if !near(c.R, want.R) || !near(c.G, want.G) || !near(c.B, want.B) || c.A != 1 {
				t.Fatalf("(%d,%d) = %+v, want %+v", x, y, c, want)
			}
		}
	}
}

func TestGenerateEmptyMask(t *testing.T) {
	opt := DefaultOptions()
	opt.Scale = 4
	opt.Background = Color{R: 0.2, G: 0.4, B: 0.6, A: 1}
	s, err := Generate(mustMask([][]int{{0}}, false, false), opt, NewSource(7))
	if err != nil {
		t.Fatal(err)
	}
	for y := range s.Buffer.H {
		for x := range s.Buffer.W {
			c := s.Buffer.At(x, y)
			if !near(c.R, 0.2) || !near(c.G, 0.4) || !near(c.B, 0.6) || c.A != 1 {
				t.Fatalf("(%d,%d) = %+v, want background", x, y, c)
			}
		}
	}
}

func TestGenerateSize(t *testing.T) {
	opt := DefaultOptions()
	opt.Scale = 3
	s, err := Generate(Robot(), opt, NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	if s.Buffer.W != 24 || s.Buffer.H != 33 || len(s.Buffer.Pix) != 24*33*4 {
		t.Errorf("buffer = %dx%d (%d floats)", s.Buffer.W, s.Buffer.H, len(s.Buffer.Pix))
	}
	if s.Pivot != image.Pt(12, 16) {
		t.Errorf("pivot = %v", s.Pivot)
	}
	if b := s.Image().Bounds(); b.Dx() != 24 || b.Dy() != 33 {
		t.Errorf("image bounds = %v", b)
	}
}

func TestGenerateInvertsAxes(t *testing.T) {
	opt := DefaultOptions()
	opt.Colored = false
	opt.Scale = 2
	s, err := Generate(mustMask([][]int{{-1, 0}, {0, 0}}, false, false), opt, NewSource(3))
	if err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 4 {
			got := s.Buffer.At(x, y)
			want := Transparent
			if x >= 2 && y >= 2 {
				want = Black
			}
			if got != want {
				t.Errorf("(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestGenerateUncolored(t *testing.T) {
	opt := DefaultOptions()
	opt.Colored = false
	opt.Background = Color{R: 1, G: 1, B: 1, A: 1}
	for seed := range uint64(10) {
		s, err := Generate(Dragon(), opt, NewSource(seed))
		if err != nil {
			t.Fatal(err)
		}
		blacks := 0
		for y := range s.Buffer.H {
			for x := range s.Buffer.W {
				switch c := s.Buffer.At(x, y); c {
				case opt.Background:
				case Black:
					blacks++
				default:
					t.Fatalf("seed %d: (%d,%d) = %+v", seed, x, y, c)
				}
			}
		}
		if blacks == 0 {
			t.Errorf("seed %d: no border pixels", seed)
		}
	}
}

func TestGenerateForeground(t *testing.T) {
	red := Color{R: 1, A: 1}
	tests := []struct {
		name string
		fg   Color
		bg   Color
		edge float64
		want Color
	}{
		{"equal to background", red, red, 1, red},
		{"darkened border", Color{R: 0.5, G: 0.5, B: 0.5, A: 1}, Transparent, 0.5, Color{R: 0.25, G: 0.25, B: 0.25, A: 1}},
		{"alpha kept", Color{G: 1, A: 0.5}, Transparent, 1, Color{G: 1, A: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := DefaultOptions()
			opt.Foreground = &tt.fg
			opt.Background = tt.bg
			opt.EdgeBrightness = tt.edge
			s, err := Generate(mustMask([][]int{{-1}}, false, false), opt, NewSource(9))
			if err != nil {
				t.Fatal(err)
			}
			if got := s.Buffer.At(0, 0); got != tt.want {
				t.Errorf("pixel = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestForegroundKeepsStreamAligned(t *testing.T) {
	opt := DefaultOptions()
	plain := &countingSource{src: NewSource(11)}
	if _, err := Generate(Spaceship(), opt, plain); err != nil {
		t.Fatal(err)
	}
	fg := Color{R: 1, G: 1, B: 1, A: 1}
	opt.Foreground = &fg
	tinted := &countingSource{src: NewSource(11)}
	if _, err := Generate(Spaceship(), opt, tinted); err != nil {
		t.Fatal(err)
	}
	if plain.n != tinted.n {
		t.Errorf("draws = %d with override, %d without", tinted.n, plain.n)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opt := DefaultOptions()
	opt.Scale = 2
	for _, m := range []*Mask{Spaceship(), Dragon(), Robot()} {
		a, err := Generate(m, opt, NewSource(42))
		if err != nil {
			t.Fatal(err)
		}
		b, _ := Generate(m, opt, NewSource(42))
		if !slices.Equal(a.Buffer.Pix, b.Buffer.Pix) {
			t.Error("same seed produced different pixels")
		}
	}
}

func TestGenerateMany(t *testing.T) {
	opt := DefaultOptions()
	seeds := []uint64{5, 6, 7, 8, 9, 10, 11, 12}
	got, err := GenerateMany(Robot(), opt, seeds)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(seeds) {
		t.Fatalf("len = %d", len(got))
	}
	for i, seed := range seeds {
		want, _ := Generate(Robot(), opt, NewSource(seed))
		if !slices.Equal(got[i].Buffer.Pix, want.Buffer.Pix) {
			t.Errorf("seed %d differs from sequential generation", seed)
		}
	}

	opt.Scale = 0
	if _, err := GenerateMany(Robot(), opt, seeds); err == nil {
		t.Error("invalid options accepted")
	}
}

func TestGenerateConfigErrors(t *testing.T) {
	bad := Color{R: 2, A: 1}
	tests := []struct {
		name  string
		field string
		edit  func(*Options)
	}{
		{"zero scale", "Scale", func(o *Options) { o.Scale = 0 }},
		{"negative scale", "Scale", func(o *Options) { o.Scale = -2 }},
		{"saturation", "Saturation", func(o *Options) { o.Saturation = 1.5 }},
		{"nan noise", "BrightnessNoise", func(o *Options) { o.BrightnessNoise = math.NaN() }},
		{"edge", "EdgeBrightness", func(o *Options) { o.EdgeBrightness = -0.1 }},
		{"variations", "ColorVariations", func(o *Options) { o.ColorVariations = 2 }},
		{"background", "Background", func(o *Options) { o.Background.A = -1 }},
		{"foreground", "Foreground", func(o *Options) { o.Foreground = &bad }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := DefaultOptions()
			tt.edit(&opt)
			s, err := Generate(Robot(), opt, NewSource(1))
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("field = %s, want %s", ce.Field, tt.field)
			}
			if s != nil {
				t.Error("sprite returned alongside error")
			}
		})
	}

	if _, err := Generate(nil, DefaultOptions(), nil); err == nil {
		t.Error("nil mask accepted")
	}
}

func TestOptionsFromSize(t *testing.T) {
	tests := []struct {
		m      *Mask
		target int
		scale  int
	}{
		{Spaceship(), 48, 4},
		{Spaceship(), 50, 5},
		{Robot(), 11, 1},
		{Robot(), 0, 1},
		{Dragon(), 5, 1},
	}
	for _, tt := range tests {
		if got := OptionsFromSize(tt.m, tt.target).Scale; got != tt.scale {
			t.Errorf("target %d: scale = %d, want %d", tt.target, got, tt.scale)
		}
	}
}

func TestSilhouette(t *testing.T) {
	opt := DefaultOptions()
	opt.Scale = 2
	s, err := Generate(Dragon(), opt, NewSource(4))
	if err != nil {
		t.Fatal(err)
	}
	sil := s.Silhouette()
	for y := range s.Buffer.H {
		for x := range s.Buffer.W {
			drawn := s.Buffer.At(x, y).A > 0
			if covered := sil.GrayAt(x, y).Y == 255; drawn != covered {
				t.Fatalf("(%d,%d): drawn=%v covered=%v", x, y, drawn, covered)
			}
		}
	}
}

func TestNRGBA(t *testing.T) {
	b := newBuffer(1, 1)
	b.set(0, 0, Color{R: 1, G: 0.5, B: 0, A: 1})
	c := b.NRGBA().NRGBAAt(0, 0)
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 255 {
		t.Errorf("got %v", c)
	}
}
