package preset

import (
	"slices"

	"github.com/ZacxDev/shotcut-preset-generator/internal/canvas"
	"github.com/ZacxDev/shotcut-preset-generator/internal/config"
	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/ZacxDev/shotcut-preset-generator/internal/logger"
	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Generator type tags accepted in the presets file
const (
	TypePip     = "pip"
	TypeSlideIn = "slidein"
	TypeGrid    = "grid"
)

// Generator produces a set of presets from its inputs
type Generator interface {
	// Name is the declared generator name
	Name() string

	// Description is the human readable title
	Description() string

	// Types lists the preset families the generator can produce
	Types() []types.PresetFamily

	ActiveType() types.PresetFamily
	SetActiveType(family types.PresetFamily) error

	// Inputs returns the parameter slots; callers may change their values
	Inputs() Inputs

	Frame() geometry.Frame
	SetFrame(frame geometry.Frame, padding int)

	Setup(settings config.Settings)

	// Generate renders every preset into sink. Presets written before a
	// failure are returned along with the error.
	Generate(sink Sink) ([]Artifact, error)
}

// Create builds a generator from its declaration
func Create(cfg config.GeneratorConfig) (Generator, error) {
	switch cfg.Type {
	case TypePip:
		return NewPipGenerator(cfg), nil
	case TypeSlideIn:
		return NewSlideInGenerator(cfg), nil
	case TypeGrid:
		return NewGridGenerator(cfg), nil
	default:
		return nil, errors.WithStack(&ConfigurationError{Type: cfg.Type})
	}
}

// SupportedTypes returns the accepted generator type tags
func SupportedTypes() []string {
	return []string{TypePip, TypeSlideIn, TypeGrid}
}

// LoadAll creates and sets up every declared generator. Nothing is returned
// if any declaration fails.
func LoadAll(cfgs []config.GeneratorConfig, settings config.Settings) ([]Generator, error) {
	generators := make([]Generator, 0, len(cfgs))
	for i, cfg := range cfgs {
		g, err := Create(cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "generators[%d]", i)
		}
		g.Setup(settings)
		generators = append(generators, g)
	}
	return generators, nil
}

// base carries the state every generator shares
type base struct {
	name        string
	description string
	families    []types.PresetFamily
	active      types.PresetFamily
	inputs      Inputs
	frame       geometry.Frame
	padding     int
	log         *zap.Logger

	// explicitFrame is set when the declaration gave both dimensions, the
	// settings canvas then no longer applies. explicitPadding keeps a
	// declared padding when the canvas does apply.
	explicitFrame   bool
	explicitPadding bool
}

func newBase(cfg config.GeneratorConfig, description string, families ...types.PresetFamily) base {
	name := cfg.Name
	if name == "" {
		name = cfg.Type
	}
	frame := geometry.Frame{Width: cfg.Width, Height: cfg.Height}
	if frame.Width == 0 {
		frame.Width = config.DefaultWidth
	}
	if frame.Height == 0 {
		frame.Height = config.DefaultHeight
	}
	return base{
		name:        name,
		description: description,
		families:    families,
		active:      families[0],
		frame:       frame,
		padding:     cfg.PaddingOr(config.DefaultPadding),
		log:         zap.NewNop(),

		explicitFrame:   cfg.Width > 0 && cfg.Height > 0,
		explicitPadding: cfg.Padding != nil,
	}
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Description() string {
	return b.description
}

func (b *base) Types() []types.PresetFamily {
	return slices.Clone(b.families)
}

func (b *base) ActiveType() types.PresetFamily {
	return b.active
}

func (b *base) SetActiveType(family types.PresetFamily) error {
	if !slices.Contains(b.families, family) {
		return errors.Errorf("generator %s does not support preset family %s", b.name, family)
	}
	b.active = family
	return nil
}

func (b *base) Inputs() Inputs {
	return b.inputs
}

func (b *base) Frame() geometry.Frame {
	return b.frame
}

func (b *base) SetFrame(frame geometry.Frame, padding int) {
	b.frame = frame
	b.padding = padding
}

// Setup attaches the logger and applies the settings canvas to generators
// declared without a frame size. The canvas padding is used unless the
// declaration sets its own.
func (b *base) Setup(settings config.Settings) {
	b.log = logger.Get().With(zap.String("generator", b.name))

	if b.explicitFrame || settings.Canvas == "" {
		return
	}
	c, err := canvas.Get(settings.Canvas)
	if err != nil {
		b.log.Warn("ignoring canvas", zap.Error(err))
		return
	}
	b.frame = canvas.Frame(c)
	if !b.explicitPadding {
		b.padding = c.GetDefaultPadding()
	}
}

func (b *base) validateFrame() error {
	if !b.frame.Valid() {
		return errors.Errorf("generator %s: frame %s must have positive dimensions", b.name, b.frame)
	}
	if b.padding < 0 {
		return errors.Errorf("generator %s: padding must not be negative", b.name)
	}
	return nil
}

func validateSize(size float64) error {
	if size <= 0 || size > 100 {
		return errors.Errorf("size must be within (0,100], got %g", size)
	}
	return nil
}

// emit hands an artifact to the sink and appends it to out on success
func (b *base) emit(sink Sink, out []Artifact, a Artifact) ([]Artifact, error) {
	p, err := sink.Put(a)
	if err != nil {
		return out, errors.Wrapf(err, "failed to write preset %s", a.Name)
	}
	if !a.Rect.Within(a.Frame) {
		b.log.Warn("preset overhangs frame",
			zap.String("name", a.Name),
			zap.Stringer("rect", a.Rect),
			zap.Stringer("frame", a.Frame))
	}
	b.log.Info("create preset",
		zap.String("name", a.Name),
		zap.String("family", string(a.Family)),
		zap.String("path", p))
	return append(out, a), nil
}

func styleFor(family types.PresetFamily) (geometry.Style, error) {
	switch family {
	case types.PresetFamilyCropRectangle:
		return geometry.StyleCrop, nil
	case types.PresetFamilyMaskSimpleShape:
		return geometry.StyleMask, nil
	case types.PresetFamilySizePositionRotate:
		return geometry.StyleSPR, nil
	default:
		return 0, errors.Errorf("no modifier style for preset family %s", family)
	}
}
