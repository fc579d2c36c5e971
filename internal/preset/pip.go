package preset

import (
	"fmt"

	"github.com/ZacxDev/shotcut-preset-generator/internal/config"
	"github.com/ZacxDev/shotcut-preset-generator/internal/format"
	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
	"github.com/pkg/errors"
)

// PipGenerator places a block of Size percent in each corner of the frame
type PipGenerator struct {
	base
}

func NewPipGenerator(cfg config.GeneratorConfig) *PipGenerator {
	size := cfg.Size
	if size == 0 {
		size = config.DefaultSize
	}

	g := &PipGenerator{
		base: newBase(cfg, "Picture in Picture",
			types.PresetFamilySizePositionRotate,
			types.PresetFamilyMaskSimpleShape,
			types.PresetFamilyCropRectangle,
		),
	}
	g.inputs = Inputs{
		{Name: "size", Label: "Size(%)", Kind: types.InputKindFloat, Value: size},
	}
	return g
}

// suffix is the size part of the preset names; bordered families say so
func (g *PipGenerator) suffix(size float64) string {
	switch g.active {
	case types.PresetFamilyMaskSimpleShape, types.PresetFamilyCropRectangle:
		return fmt.Sprintf("%.0f%%_Border", size)
	default:
		return fmt.Sprintf("%.0f%%", size)
	}
}

func (g *PipGenerator) Generate(sink Sink) ([]Artifact, error) {
	size, err := g.inputs.Float("size")
	if err != nil {
		return nil, err
	}
	if err := validateSize(size); err != nil {
		return nil, errors.Wrapf(err, "generator %s", g.name)
	}
	if err := g.validateFrame(); err != nil {
		return nil, err
	}

	style, err := styleFor(g.active)
	if err != nil {
		return nil, err
	}
	tpl, err := StaticTemplate(g.active)
	if err != nil {
		return nil, err
	}

	calc := geometry.BorderCalc{Size: size, Frame: g.frame, Padding: g.padding}
	out := make([]Artifact, 0, 4)
	for _, corner := range geometry.Corners() {
		rect, err := calc.Block(style, corner)
		if err != nil {
			return out, err
		}
		content, err := tpl.Render(rectValues(format.Percents(rect, g.frame)))
		if err != nil {
			return out, err
		}

		out, err = g.emit(sink, out, Artifact{
			Family:  g.active,
			Name:    fmt.Sprintf("Pip_%s_%s", corner, g.suffix(size)),
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
