package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	frame := geometry.Frame{Width: 200, Height: 100}
	boxes := []Box{
		{Rect: geometry.Rectangle{X: 10, Y: 10, Width: 80, Height: 80}},
		{Rect: geometry.Rectangle{X: 110, Y: 10, Width: 80, Height: 80}},
	}

	img, err := Layout(frame, boxes, 1)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	assert.Equal(t, Color(0), img.RGBAAt(10, 10))
	assert.Equal(t, Color(0), img.RGBAAt(89, 50))
	assert.Equal(t, Color(1), img.RGBAAt(110, 89))
	assert.Equal(t, Background, img.RGBAAt(50, 50))
	assert.Equal(t, Background, img.RGBAAt(100, 50))
}

func TestLayoutDefaultScale(t *testing.T) {
	img, err := Layout(geometry.DefaultFrame(), []Box{{Label: "Pip_TopLeft_50%", Rect: geometry.Rectangle{X: 16, Y: 16, Width: 1896, Height: 1056}}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 960, img.Bounds().Dx())
	assert.Equal(t, 540, img.Bounds().Dy())
	assert.Equal(t, Color(0), img.RGBAAt(4, 100))
}

func TestLayoutClipsOverhang(t *testing.T) {
	img, err := Layout(geometry.Frame{Width: 50, Height: 50}, []Box{{Rect: geometry.Rectangle{X: 40, Y: 40, Width: 30, Height: 30}}}, 1)
	require.NoError(t, err)
	assert.Equal(t, Color(0), img.RGBAAt(40, 45))
	assert.Equal(t, Color(0), img.RGBAAt(49, 45))
}

func TestLayoutInvalidFrame(t *testing.T) {
	_, err := Layout(geometry.Frame{}, nil, 1)
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	img, err := Layout(geometry.Frame{Width: 64, Height: 36}, nil, 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "layout.png")
	require.NoError(t, SavePNG(img, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
