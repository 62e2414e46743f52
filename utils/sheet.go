package utils

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/setanarut/pixelsprite"
)

// Sheet lays sprites out left to right, top to bottom, cols per row, each in
// a cell as large as the largest sprite plus pad pixels on every side.
func Sheet(sprites []*pixelsprite.Sprite, cols, pad int, bg color.Color) *image.NRGBA {
	if len(sprites) == 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	cols = max(1, min(cols, len(sprites)))
	rows := (len(sprites) + cols - 1) / cols

	var cell image.Point
	for _, s := range sprites {
		cell.X = max(cell.X, s.Buffer.W)
		cell.Y = max(cell.Y, s.Buffer.H)
	}
	cell = cell.Add(image.Pt(2*pad, 2*pad))

	sheet := image.NewNRGBA(image.Rect(0, 0, cols*cell.X, rows*cell.Y))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	for i, s := range sprites {
		img := s.Image()
		origin := image.Pt((i%cols)*cell.X+pad, (i/cols)*cell.Y+pad)
		// Centre smaller sprites in their cell.
		origin = origin.Add(image.Pt((cell.X-2*pad-img.Rect.Dx())/2, (cell.Y-2*pad-img.Rect.Dy())/2))
		draw.Draw(sheet, img.Bounds().Add(origin), img, image.Point{}, draw.Over)
	}
	return sheet
}

// Enlarge upscales img by an integer factor without smoothing.
func Enlarge(img image.Image, factor int) *image.NRGBA {
	b := img.Bounds()
	factor = max(1, factor)
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
