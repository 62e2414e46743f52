package pixelsprite

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Buffer holds the rendered pixels of one sprite.
type Buffer struct {
	W, H int
	Pix  []float32 // Interleaved straight-alpha RGBA in [0,1], len = W*H*4
}

func newBuffer(w, h int) *Buffer {
	return &Buffer{W: w, H: h, Pix: make([]float32, w*h*4)}
}

func pixOffset(w, x, y int) int {
	return (y*w + x) * 4
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) Color {
	off := pixOffset(b.W, x, y)
	return Color{
		R: float64(b.Pix[off]),
		G: float64(b.Pix[off+1]),
		B: float64(b.Pix[off+2]),
		A: float64(b.Pix[off+3]),
	}
}

func (b *Buffer) set(x, y int, c Color) {
	off := pixOffset(b.W, x, y)
	b.Pix[off] = float32(c.R)
	b.Pix[off+1] = float32(c.G)
	b.Pix[off+2] = float32(c.B)
	b.Pix[off+3] = float32(c.A)
}

type renderer struct {
	opt        Options
	s          *stream
	grid       *Grid
	out        *Buffer
	vertical   bool // primary axis runs along y
	saturation float64
	hue        float64
	extent     int // length of the primary axis
}

func render(g *Grid, opt Options, s *stream) *Buffer {
	r := &renderer{
		opt:  opt,
		s:    s,
		grid: g,
		out:  newBuffer(g.W*opt.Scale, g.H*opt.Scale),
	}
	r.vertical = s.float() > 0.5
	r.saturation = clamp01(s.float() * opt.Saturation)
	r.hue = s.float()

	ulen, vlen := g.W, g.H
	if r.vertical {
		ulen, vlen = g.H, g.W
	}
	r.extent = ulen

	for u := range ulen {
		r.drift()
		for v := range vlen {
			x, y := u, v
			if r.vertical {
				x, y = v, u
			}
			r.fill(x, y, r.cellColor(g.At(x, y), u))
		}
	}
	return r.out
}

// drift resamples the hue when the averaged noise of three uniform draws
// lands above 1 - ColorVariations. Small noise magnitudes dominate, so hue
// runs grow longer as ColorVariations shrinks.
func (r *renderer) drift() {
	noise := math.Abs((r.s.spread() + r.s.spread() + r.s.spread()) / 3)
	if noise > 1-r.opt.ColorVariations {
		r.hue = r.s.float()
	}
}

func (r *renderer) cellColor(v, u int) Color {
	if v == Empty {
		return r.opt.Background
	}
	if !r.opt.Colored {
		if v == Border {
			return Black
		}
		return r.opt.Background
	}

	// Drawn even under a foreground override so the stream stays aligned.
	n := r.opt.BrightnessNoise
	brightness := math.Sin(math.Pi*float64(u)/float64(r.extent))*(1-n) + r.s.float()*n

	var c Color
	if r.opt.Foreground != nil {
		c = *r.opt.Foreground
	} else {
		c = FromColorful(colorful.Hsv(r.hue*360, r.saturation, brightness), 1)
	}
	if v == Border {
		c = c.scaled(r.opt.EdgeBrightness)
	}
	return c
}

// fill writes the scale x scale block of cell (x, y). The output is
// inverted on both axes relative to the grid.
func (r *renderer) fill(x, y int, c Color) {
	scale := r.opt.Scale
	x0 := (r.grid.W - 1 - x) * scale
	y0 := (r.grid.H - 1 - y) * scale
	for sy := range scale {
		for sx := range scale {
			r.out.set(x0+sx, y0+sy, c)
		}
	}
}
