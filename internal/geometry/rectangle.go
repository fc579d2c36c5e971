package geometry

import "fmt"

// Rectangle is a pixel region of a frame. All operations return new values.
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

func (r Rectangle) Right() int {
	return r.X + r.Width
}

func (r Rectangle) Bottom() int {
	return r.Y + r.Height
}

// Within reports whether r lies inside [0,width] x [0,height] of the frame
func (r Rectangle) Within(f Frame) bool {
	return r.X >= 0 && r.Y >= 0 && r.Width >= 0 && r.Height >= 0 &&
		r.Right() <= f.Width && r.Bottom() <= f.Height
}

// Add sums every component
func (r Rectangle) Add(o Rectangle) Rectangle {
	return Rectangle{X: r.X + o.X, Y: r.Y + o.Y, Width: r.Width + o.Width, Height: r.Height + o.Height}
}

// Sub subtracts every component
func (r Rectangle) Sub(o Rectangle) Rectangle {
	return Rectangle{X: r.X - o.X, Y: r.Y - o.Y, Width: r.Width - o.Width, Height: r.Height - o.Height}
}

// Inset shrinks the rectangle by padding on every edge
func (r Rectangle) Inset(padding int) Rectangle {
	return Rectangle{
		X:      r.X + padding,
		Y:      r.Y + padding,
		Width:  r.Width - 2*padding,
		Height: r.Height - 2*padding,
	}
}

// Scale resizes the rectangle. With center the result keeps the original
// center point, otherwise the top left point stays fixed.
func (r Rectangle) Scale(factor float64, center bool) Rectangle {
	out := r
	out.Width = round(float64(r.Width) * factor)
	out.Height = round(float64(r.Height) * factor)
	if center {
		cx := round(float64(r.X) + float64(r.Width)/2)
		cy := round(float64(r.Y) + float64(r.Height)/2)
		out.X = round(float64(cx) - float64(out.Width)/2)
		out.Y = round(float64(cy) - float64(out.Height)/2)
	}
	return out
}

// MoveToCorner anchors the rectangle in a corner of frame, keeping its size
func (r Rectangle) MoveToCorner(frame Rectangle, corner Corner) Rectangle {
	out := r
	switch corner {
	case TopLeft:
		out.X, out.Y = 0, 0
	case TopRight:
		out.X, out.Y = frame.Width-r.Width, 0
	case BottomLeft:
		out.X, out.Y = 0, frame.Height-r.Height
	case BottomRight:
		out.X, out.Y = frame.Width-r.Width, frame.Height-r.Height
	}
	return out
}

// Split divides the rectangle into rows x cols equal blocks in row-major order
func (r Rectangle) Split(rows, cols int) []Rectangle {
	rowHeight := round(float64(r.Height) / float64(rows))
	colWidth := round(float64(r.Width) / float64(cols))

	blocks := make([]Rectangle, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			blocks = append(blocks, Rectangle{
				X:      r.X + col*colWidth,
				Y:      r.Y + row*rowHeight,
				Width:  colWidth,
				Height: rowHeight,
			})
		}
	}
	return blocks
}
