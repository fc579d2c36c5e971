package preset

import (
	"fmt"

	"github.com/ZacxDev/shotcut-preset-generator/internal/config"
	"github.com/ZacxDev/shotcut-preset-generator/internal/format"
	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
	"github.com/pkg/errors"
)

// Keyframes are the frame numbers of a slide-in animation: the block is fully
// in at In, starts leaving at Out and is gone at End.
type Keyframes struct {
	In  int
	Out int
	End int
}

// NewKeyframes computes the keyframes for a clip of duration seconds
func NewKeyframes(fps, duration int) Keyframes {
	end := duration*fps - 1
	return Keyframes{
		In:  fps - 1,
		Out: end - fps + 1,
		End: end,
	}
}

// SlideInGenerator animates a crop block in from each corner
type SlideInGenerator struct {
	base
}

func NewSlideInGenerator(cfg config.GeneratorConfig) *SlideInGenerator {
	size, fps, duration := cfg.Size, cfg.FPS, cfg.Duration
	if size == 0 {
		size = config.DefaultSize
	}
	if fps == 0 {
		fps = config.DefaultFPS
	}
	if duration == 0 {
		duration = config.DefaultDuration
	}

	g := &SlideInGenerator{
		base: newBase(cfg, "Slide in from corners", types.PresetFamilyCropRectangle),
	}
	g.inputs = Inputs{
		{Name: "size", Label: "Size(%)", Kind: types.InputKindFloat, Value: size},
		{Name: "duration", Label: "Duration", Kind: types.InputKindInt, Value: duration},
		{Name: "fps", Label: "FPS", Kind: types.InputKindInt, Value: fps},
	}
	return g
}

func (g *SlideInGenerator) values() (size float64, fps, duration int, err error) {
	if size, err = g.inputs.Float("size"); err != nil {
		return
	}
	if fps, err = g.inputs.Int("fps"); err != nil {
		return
	}
	if duration, err = g.inputs.Int("duration"); err != nil {
		return
	}
	if err = validateSize(size); err != nil {
		return
	}
	if fps < 1 || duration < 1 {
		err = errors.Errorf("fps and duration must be positive, got %d fps for %ds", fps, duration)
	}
	return
}

// Generate writes a crop preset per corner and a bordered variant built from
// the mask rectangles
func (g *SlideInGenerator) Generate(sink Sink) ([]Artifact, error) {
	size, fps, duration, err := g.values()
	if err != nil {
		return nil, errors.Wrapf(err, "generator %s", g.name)
	}
	if err := g.validateFrame(); err != nil {
		return nil, err
	}

	keys := NewKeyframes(fps, duration)
	suffix := fmt.Sprintf("%.0f%%_%dfps_%ds", size, fps, duration)
	calc := geometry.BorderCalc{Size: size, Frame: g.frame, Padding: g.padding}

	out := make([]Artifact, 0, 8)
	for _, corner := range geometry.Corners() {
		rect := calc.Crop(corner)
		content, err := SlideInTemplate.Render(keyframeValues(format.Percents(rect, g.frame), keys))
		if err != nil {
			return out, err
		}
		out, err = g.emit(sink, out, Artifact{
			Family:  g.active,
			Name:    fmt.Sprintf("SlideIn_%s_%s", corner, suffix),
			Content: content,
			Rect:    rect,
			Frame:   g.frame,
		})
		if err != nil {
			return out, err
		}
	}

	for _, corner := range geometry.Corners() {
		rect := calc.Mask(corner)
		content, err := SlideInBorderTemplate.Render(keyframeValues(format.Percents(rect, g.frame), keys))
		if err != nil {
			return out, err
		}
		out, err = g.emit(sink, out, Artifact{
			Family:  g.active,
			Name:    fmt.Sprintf("SlideIn_%s_B_%s_Border", corner, suffix),
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
