package pixelsprite

import (
	"image"
	"image/color"
	"math/rand/v2"
	"sync"
)

// Sprite is the result of one generation call. The caller owns it.
type Sprite struct {
	// Resolved working grid after edge detection, in grid coordinates.
	Grid *Grid
	// Rendered pixels, inverted on both axes relative to Grid.
	Buffer *Buffer
	// Visual centre of Buffer in pixels.
	Pivot image.Point
	Scale int
}

// Generate runs the full pipeline: options are validated before any work,
// then the mask is resolved and mirrored, edges are detected and the grid
// is rendered. Every random draw comes from src; pass nil to use the
// process-wide source.
func Generate(m *Mask, opt Options, src rand.Source) (*Sprite, error) {
	if err := check(m, opt); err != nil {
		return nil, err
	}
	s := newStream(src)
	g := resolve(m, s)
	DetectEdges(g)
	buf := render(g, opt, s)
	return &Sprite{
		Grid:   g,
		Buffer: buf,
		Pivot:  image.Pt(buf.W/2, buf.H/2),
		Scale:  opt.Scale,
	}, nil
}

// GenerateMany generates one sprite per seed concurrently. Each sprite
// owns a stream built with NewSource(seed), so the result equals calling
// Generate sequentially with the same seeds.
func GenerateMany(m *Mask, opt Options, seeds []uint64) ([]*Sprite, error) {
	if err := check(m, opt); err != nil {
		return nil, err
	}
	out := make([]*Sprite, len(seeds))
	var wg sync.WaitGroup
	for i, seed := range seeds {
		wg.Go(func() {
			// Inputs were validated above.
			out[i], _ = Generate(m, opt, NewSource(seed))
		})
	}
	wg.Wait()
	return out, nil
}

func check(m *Mask, opt Options) error {
	if m == nil {
		return &ConfigError{Field: "Mask", Value: nil, Msg: "must not be nil"}
	}
	return opt.Validate()
}

// NRGBA converts the buffer to an 8-bit image.
func (b *Buffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.W, b.H))
	for y := range b.H {
		for x := range b.W {
			off := pixOffset(b.W, x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: to8(b.Pix[off]),
				G: to8(b.Pix[off+1]),
				B: to8(b.Pix[off+2]),
				A: to8(b.Pix[off+3]),
			})
		}
	}
	return img
}

func to8(v float32) uint8 {
	return uint8(max(0, min(255, v*255+0.5)))
}

// Image returns the rendered sprite as an 8-bit image.
func (s *Sprite) Image() *image.NRGBA {
	return s.Buffer.NRGBA()
}

// Silhouette returns a coverage mask at output resolution: 255 where a
// border or body cell was drawn, 0 elsewhere.
func (s *Sprite) Silhouette() *image.Gray {
	g := s.Grid
	img := image.NewGray(image.Rect(0, 0, s.Buffer.W, s.Buffer.H))
	for py := range s.Buffer.H {
		for px := range s.Buffer.W {
			x := g.W - 1 - px/s.Scale
			y := g.H - 1 - py/s.Scale
			if g.At(x, y) != Empty {
				img.SetGray(px, py, color.Gray{Y: 255})
			}
		}
	}
	return img
}
