package utils

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/pixelsprite"
)

// ReadMask loads a mask file of comma-separated rows.
func ReadMask(path string, mirrorX, mirrorY bool) (*pixelsprite.Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &pixelsprite.IOError{Op: "open", Err: err}
	}
	defer f.Close()
	m, err := pixelsprite.FromSource(f, mirrorX, mirrorY)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func ReadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SaveSprites writes sprite_00.png, sprite_01.png, ... into dir.
func SaveSprites(sprites []*pixelsprite.Sprite, dir string) error {
	for i, s := range sprites {
		if err := SaveImage(s.Image(), filepath.Join(dir, fmt.Sprintf("sprite_%02d.png", i))); err != nil {
			return err
		}
	}
	return nil
}

// SaveSilhouettes writes mask_0.png, mask_1.png, ... into dir.
func SaveSilhouettes(sprites []*pixelsprite.Sprite, dir string) error {
	for i, s := range sprites {
		if err := SaveImage(s.Silhouette(), filepath.Join(dir, "mask_"+strconv.Itoa(i)+".png")); err != nil {
			return err
		}
	}
	return nil
}

// SavePalette writes one tileSize square swatch per color, left to right.
func SavePalette(palette []colorful.Color, tileSize int, filename string) error {
	if len(palette) == 0 {
		return fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	img := image.NewRGBA(image.Rect(0, 0, tileSize*len(palette), tileSize))
	for i, c := range palette {
		r, g, b := c.Clamped().RGB255()
		x0 := i * tileSize
		for y := range tileSize {
			for x := x0; x < x0+tileSize; x++ {
				img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
			}
		}
	}
	return SaveImage(img, filename)
}
