package preset

import (
	"fmt"

	"github.com/ZacxDev/shotcut-preset-generator/internal/config"
	"github.com/ZacxDev/shotcut-preset-generator/internal/format"
	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
	"github.com/pkg/errors"
)

// GridGenerator writes a bordered crop preset for every block of cells of a
// rows x columns grid
type GridGenerator struct {
	base
}

func NewGridGenerator(cfg config.GeneratorConfig) *GridGenerator {
	rows, columns := cfg.Rows, cfg.Columns
	if rows == 0 {
		rows = config.DefaultRows
	}
	if columns == 0 {
		columns = config.DefaultColumns
	}

	g := &GridGenerator{
		base: newBase(cfg, "Grid Presets", types.PresetFamilyCropRectangle),
	}
	g.inputs = Inputs{
		{Name: "rows", Label: "Rows", Kind: types.InputKindInt, Value: rows},
		{Name: "columns", Label: "Columns", Kind: types.InputKindInt, Value: columns},
	}
	return g
}

// presetName is e.g. Grid_2x2_(1,2.1x1): columns x rows, 1-based start
// row,col and the row x column span
func presetName(grid *geometry.GridCalculator, s geometry.Span) string {
	return fmt.Sprintf("Grid_%dx%d_(%d,%d.%dx%d)",
		grid.Columns, grid.Rows, s.Row+1, s.Col+1, s.RowSpan, s.ColSpan)
}

func (g *GridGenerator) Generate(sink Sink) ([]Artifact, error) {
	rows, err := g.inputs.Int("rows")
	if err != nil {
		return nil, err
	}
	columns, err := g.inputs.Int("columns")
	if err != nil {
		return nil, err
	}
	if rows < 1 || columns < 1 {
		return nil, errors.Errorf("generator %s: rows and columns must be positive, got %dx%d", g.name, rows, columns)
	}
	if err := g.validateFrame(); err != nil {
		return nil, err
	}

	tpl, err := StaticTemplate(g.active)
	if err != nil {
		return nil, err
	}

	grid := geometry.NewGridCalculator(rows, columns, g.frame, g.padding)
	spans := grid.Spans()
	out := make([]Artifact, 0, len(spans))
	for _, span := range spans {
		rect := grid.CellAt(span, true)
		content, err := tpl.Render(rectValues(format.Percents(rect, g.frame)))
		if err != nil {
			return out, err
		}
		out, err = g.emit(sink, out, Artifact{
			Family:  g.active,
			Name:    presetName(grid, span),
			Content: content,
			Rect:    rect,
			Frame:   g.frame,
		})
		if err != nil {
			return out, err
		}
	}
	return out, nil
}
