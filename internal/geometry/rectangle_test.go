package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleArithmetic(t *testing.T) {
	a := Rectangle{10, 20, 100, 200}

	assert.Equal(t, Rectangle{20, 40, 200, 400}, a.Add(a))
	assert.Equal(t, Rectangle{}, a.Sub(a))
	// receiver is untouched
	assert.Equal(t, Rectangle{10, 20, 100, 200}, a)
}

func TestRectangleInset(t *testing.T) {
	assert.Equal(t, Rectangle{10, 10, 80, 180}, Rectangle{0, 0, 100, 200}.Inset(10))
}

func TestRectangleScale(t *testing.T) {
	qhd := DefaultFrame().Bounds()
	assert.Equal(t, Rectangle{0, 0, 1920, 1080}, qhd.Scale(0.5, false))
	assert.Equal(t, Rectangle{50, 50, 100, 100}, Rectangle{0, 0, 200, 200}.Scale(0.5, true))
}

func TestRectangleMoveToCorner(t *testing.T) {
	frame := DefaultFrame().Bounds()
	block := Rectangle{50, 50, 200, 200}

	tests := []struct {
		corner Corner
		x, y   int
	}{
		{TopLeft, 0, 0},
		{TopRight, 3640, 0},
		{BottomLeft, 0, 1960},
		{BottomRight, 3640, 1960},
	}
	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			moved := block.MoveToCorner(frame, tt.corner)
			assert.Equal(t, Rectangle{tt.x, tt.y, 200, 200}, moved)
		})
	}
}

func TestRectangleSplit(t *testing.T) {
	blocks := DefaultFrame().Bounds().Split(2, 2)
	assert.Equal(t, []Rectangle{
		{0, 0, 1920, 1080},
		{1920, 0, 1920, 1080},
		{0, 1080, 1920, 1080},
		{1920, 1080, 1920, 1080},
	}, blocks)
}

func TestRectangleWithin(t *testing.T) {
	frame := Frame{100, 100}
	assert.True(t, Rectangle{0, 0, 100, 100}.Within(frame))
	assert.False(t, Rectangle{1, 0, 100, 100}.Within(frame))
	assert.False(t, Rectangle{-1, 0, 10, 10}.Within(frame))
}
