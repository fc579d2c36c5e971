// Package render draws preset rectangles onto a scaled down copy of their
// frame so a layout can be checked at a glance.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultScale renders a UHD frame at 960x540
const DefaultScale = 0.25

// Box is one labelled rectangle of a layout
type Box struct {
	Label string
	Rect  geometry.Rectangle
}

var (
	Background = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

	palette = []color.RGBA{
		{R: 0xe6, G: 0x19, B: 0x4b, A: 0xff},
		{R: 0x3c, G: 0xb4, B: 0x4b, A: 0xff},
		{R: 0x43, G: 0x63, B: 0xd8, A: 0xff},
		{R: 0xff, G: 0xe1, B: 0x19, A: 0xff},
		{R: 0xf5, G: 0x82, B: 0x31, A: 0xff},
		{R: 0x91, G: 0x1e, B: 0xb4, A: 0xff},
	}
)

// Color returns the outline color of the i-th box
func Color(i int) color.RGBA {
	return palette[i%len(palette)]
}

// Layout draws the outline and label of every box. A scale <= 0 uses
// DefaultScale.
func Layout(frame geometry.Frame, boxes []Box, scale float64) (*image.RGBA, error) {
	if !frame.Valid() {
		return nil, errors.Errorf("cannot render frame %s", frame)
	}
	if scale <= 0 {
		scale = DefaultScale
	}

	img := image.NewRGBA(image.Rect(0, 0, scaled(frame.Width, scale), scaled(frame.Height, scale)))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i, b := range boxes {
		r := image.Rect(
			scaled(b.Rect.X, scale),
			scaled(b.Rect.Y, scale),
			scaled(b.Rect.Right(), scale),
			scaled(b.Rect.Bottom(), scale),
		)
		col := Color(i)
		outline(img, r, col)

		if b.Label != "" {
			drawer := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(col),
				Face: face,
				Dot:  fixed.P(r.Min.X+3, r.Min.Y+face.Ascent+2),
			}
			drawer.DrawString(b.Label)
		}
	}
	return img, nil
}

func scaled(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}

// outline draws the one pixel border of r, clipped to the image
func outline(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	u := &image.Uniform{C: col}
	for _, edge := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		draw.Draw(img, edge, u, image.Point{}, draw.Src)
	}
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrap(err, "failed to encode PNG")
	}
	return nil
}
