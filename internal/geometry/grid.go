package geometry

// GridCalculator partitions a frame into Rows x Columns cells. The base cell
// size is rounded once in NewGridCalculator and reused for every cell.
type GridCalculator struct {
	Rows    int
	Columns int
	Frame   Frame
	Padding int

	// Compensate adds padding/2 back to the far edge of boundary cells when
	// a cell is requested without border.
	Compensate bool

	cellWidth  int
	cellHeight int
}

// Span addresses a block of cells starting at (Row, Col)
type Span struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// NewGridCalculator requires rows, columns and frame dimensions > 0
func NewGridCalculator(rows, columns int, frame Frame, padding int) *GridCalculator {
	return &GridCalculator{
		Rows:       rows,
		Columns:    columns,
		Frame:      frame,
		Padding:    padding,
		cellWidth:  round(float64(frame.Width) / float64(columns)),
		cellHeight: round(float64(frame.Height) / float64(rows)),
	}
}

func (g *GridCalculator) CellWidth() int {
	return g.cellWidth
}

func (g *GridCalculator) CellHeight() int {
	return g.cellHeight
}

// Cell returns the rectangle covering rowSpan x colSpan cells starting at
// (rowStart, colStart). With a border every edge is inset by padding/2 and
// cells touching the far outer edge lose another padding/2 so they never
// overhang the frame.
func (g *GridCalculator) Cell(rowStart, colStart, rowSpan, colSpan int, bordered bool) Rectangle {
	var dt, extra float64
	if bordered {
		dt = float64(g.Padding) / 2
	}

	lastCol := colStart+colSpan == g.Columns
	lastRow := rowStart+rowSpan == g.Rows

	x := round(dt + float64(colStart*g.cellWidth))
	y := round(dt + float64(rowStart*g.cellHeight))

	width := float64(colSpan*g.cellWidth) - dt
	if lastCol {
		width -= dt
	}
	height := float64(rowSpan*g.cellHeight) - dt
	if lastRow {
		height -= dt
	}

	w, h := round(width), round(height)
	if !bordered && g.Compensate {
		extra = float64(g.Padding) / 2
		if lastCol {
			w = round(width + extra)
		}
		if lastRow {
			h = round(height + extra)
		}
	}

	return Rectangle{X: x, Y: y, Width: w, Height: h}
}

// CellAt is Cell for a Span value
func (g *GridCalculator) CellAt(s Span, bordered bool) Rectangle {
	return g.Cell(s.Row, s.Col, s.RowSpan, s.ColSpan, bordered)
}

// Spans lists every block that fits in the grid, ordered by start row, start
// column, row span and column span.
func (g *GridCalculator) Spans() []Span {
	spans := make([]Span, 0, (g.Rows*(g.Rows+1)/2)*(g.Columns*(g.Columns+1)/2))
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			for rowSpan := 1; rowSpan <= g.Rows-row; rowSpan++ {
				for colSpan := 1; colSpan <= g.Columns-col; colSpan++ {
					spans = append(spans, Span{Row: row, Col: col, RowSpan: rowSpan, ColSpan: colSpan})
				}
			}
		}
	}
	return spans
}
