package geometry

import (
	"fmt"
	"math"
)

const (
	// Default canvas (UHD)
	DefaultWidth  = 3840
	DefaultHeight = 2160

	// DefaultPadding is the total border thickness in pixels
	DefaultPadding = 32
)

// Frame is the canvas an overlay lives within
type Frame struct {
	Width  int
	Height int
}

// DefaultFrame returns the UHD frame used when nothing else is configured
func DefaultFrame() Frame {
	return Frame{Width: DefaultWidth, Height: DefaultHeight}
}

// Valid reports whether both dimensions are positive
func (f Frame) Valid() bool {
	return f.Width > 0 && f.Height > 0
}

func (f Frame) String() string {
	return fmt.Sprintf("%dx%d", f.Width, f.Height)
}

// Bounds returns the frame as a rectangle anchored at the origin
func (f Frame) Bounds() Rectangle {
	return Rectangle{Width: f.Width, Height: f.Height}
}

// Corner is one of the four anchor positions of an overlay block
type Corner int

const (
	TopLeft Corner = iota + 1
	TopRight
	BottomLeft
	BottomRight
)

// Corners returns the four corners in generation order
func Corners() []Corner {
	return []Corner{TopLeft, TopRight, BottomLeft, BottomRight}
}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// round is the single rounding rule shared by every calculator
func round(v float64) int {
	return int(math.RoundToEven(v))
}
