// Package presetgen is the entry point used by the command line: it loads
// the presets file, prepares the generators and writes their presets.
package presetgen

import (
	"fmt"
	"strings"

	"github.com/ZacxDev/shotcut-preset-generator/internal/canvas"
	"github.com/ZacxDev/shotcut-preset-generator/internal/config"
	"github.com/ZacxDev/shotcut-preset-generator/internal/ffmpeg"
	"github.com/ZacxDev/shotcut-preset-generator/internal/logger"
	"github.com/ZacxDev/shotcut-preset-generator/internal/preset"
	"github.com/ZacxDev/shotcut-preset-generator/internal/render"
	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Options defines options for a generation run
type Options struct {
	ConfigPath string
	// Generator selects one declared generator by name; empty runs all
	Generator string
	// Family overrides the active preset family, e.g. crop, mask or spr
	Family string
	Output string
	// Canvas overrides the frame and padding of the selected generators
	Canvas string
	// Values are raw input values keyed by slot name
	Values  map[string]string
	DryRun  bool
	Verbose bool
}

// PreviewOptions defines the clips used for ffmpeg previews
type PreviewOptions struct {
	Options
	Input     string
	Overlay   string
	OutputDir string
	Format    string
}

// Run generates presets. With DryRun nothing is written to disk. Artifacts
// produced before a failure are returned with the error.
func Run(opts *Options) ([]preset.Artifact, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Output != "" {
		cfg.Settings.Output = opts.Output
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logCfg := cfg.Settings.Logger
	if opts.Verbose {
		logCfg.Level = "debug"
	}
	logger.InitializeStdout(logCfg)
	defer logger.Sync()
	log := logger.Get()

	generators, err := selectGenerators(cfg, opts)
	if err != nil {
		return nil, err
	}

	var sink preset.Sink
	if opts.DryRun {
		sink = &preset.MemorySink{}
	} else {
		sink = preset.NewFileSink(cfg.Settings.Output)
	}

	var artifacts []preset.Artifact
	for _, g := range generators {
		log.Debug("generating",
			zap.String("generator", g.Name()),
			zap.String("family", string(g.ActiveType())),
			zap.Stringer("frame", g.Frame()))

		out, err := g.Generate(sink)
		artifacts = append(artifacts, out...)
		if err != nil {
			return artifacts, err
		}
	}

	log.Info("presets generated",
		zap.Int("count", len(artifacts)),
		zap.Bool("dry_run", opts.DryRun),
		zap.String("output", cfg.Settings.Output))
	return artifacts, nil
}

func selectGenerators(cfg *config.File, opts *Options) ([]preset.Generator, error) {
	all, err := preset.LoadAll(cfg.Generators, cfg.Settings)
	if err != nil {
		return nil, err
	}

	selected := all
	if opts.Generator != "" {
		selected = nil
		for _, g := range all {
			if g.Name() == opts.Generator {
				selected = append(selected, g)
			}
		}
		if len(selected) == 0 {
			return nil, errors.Errorf("no generator named %s, declared: %s",
				opts.Generator, strings.Join(names(all), ", "))
		}
	}
	if len(selected) > 1 && (opts.Family != "" || len(opts.Values) > 0) {
		return nil, errors.New("family and input values need a single generator, select one by name")
	}

	if opts.Canvas != "" {
		c, err := canvas.Get(opts.Canvas)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		for _, g := range selected {
			g.SetFrame(canvas.Frame(c), c.GetDefaultPadding())
		}
	}

	for _, g := range selected {
		if opts.Family != "" {
			family, err := types.ParseFamily(opts.Family)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			if err := g.SetActiveType(family); err != nil {
				return nil, err
			}
		}
		if err := g.Inputs().SetFromStrings(opts.Values); err != nil {
			return nil, errors.Wrapf(err, "generator %s", g.Name())
		}
	}
	return selected, nil
}

func names(generators []preset.Generator) []string {
	out := make([]string, 0, len(generators))
	for _, g := range generators {
		out = append(out, g.Name())
	}
	return out
}

// Preview computes the presets of a run without writing them and returns an
// ffmpeg command per preset that reproduces its rectangle on a clip
func Preview(opts *PreviewOptions) ([]ffmpeg.Command, error) {
	run := opts.Options
	run.DryRun = true
	artifacts, err := Run(&run)
	if err != nil {
		return nil, err
	}

	b := ffmpeg.Builder{
		Input:     opts.Input,
		Overlay:   opts.Overlay,
		OutputDir: opts.OutputDir,
		Format:    opts.Format,
	}
	commands := make([]ffmpeg.Command, 0, len(artifacts))
	for _, a := range artifacts {
		cmd, err := b.Build(a.Name, a.Family, a.Rect)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

// RenderOptions defines where a layout image is written
type RenderOptions struct {
	Options
	Path  string
	Scale float64
}

// Render draws the presets of a dry run into a PNG at opts.Path. Every
// artifact must share one frame.
func Render(opts *RenderOptions) ([]preset.Artifact, error) {
	if opts.Path == "" {
		return nil, errors.New("no image path given")
	}
	run := opts.Options
	run.DryRun = true
	artifacts, err := Run(&run)
	if err != nil {
		return nil, err
	}
	if len(artifacts) == 0 {
		return nil, errors.New("nothing to render")
	}

	frame := artifacts[0].Frame
	boxes := make([]render.Box, 0, len(artifacts))
	for _, a := range artifacts {
		if a.Frame != frame {
			return nil, errors.Errorf("preset %s has frame %s, expected %s; select a single generator", a.Name, a.Frame, frame)
		}
		boxes = append(boxes, render.Box{Label: a.Name, Rect: a.Rect})
	}

	img, err := render.Layout(frame, boxes, opts.Scale)
	if err != nil {
		return nil, err
	}
	if err := render.SavePNG(img, opts.Path); err != nil {
		return nil, err
	}
	logger.Get().Info("layout rendered", zap.String("path", opts.Path), zap.Int("boxes", len(boxes)))
	return artifacts, nil
}

// InputDescription describes one parameter slot of a generator
type InputDescription struct {
	Name  string
	Label string
	Kind  types.InputKind
	Value string
}

// Description describes a declared generator
type Description struct {
	Name        string
	Description string
	Families    []types.PresetFamily
	Active      types.PresetFamily
	Frame       string
	Inputs      []InputDescription
}

func (d Description) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s (%s, %s)\n", d.Name, d.Description, d.Active.DisplayName(), d.Frame)
	for _, in := range d.Inputs {
		fmt.Fprintf(&sb, "  %s [%s] %s = %s\n", in.Name, in.Kind, in.Label, in.Value)
	}
	return sb.String()
}

// List describes the generators declared in the presets file
func List(configPath string) ([]Description, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	generators, err := preset.LoadAll(cfg.Generators, cfg.Settings)
	if err != nil {
		return nil, err
	}

	out := make([]Description, 0, len(generators))
	for _, g := range generators {
		d := Description{
			Name:        g.Name(),
			Description: g.Description(),
			Families:    g.Types(),
			Active:      g.ActiveType(),
			Frame:       g.Frame().String(),
		}
		for _, in := range g.Inputs() {
			d.Inputs = append(d.Inputs, InputDescription{
				Name:  in.Name,
				Label: in.Label,
				Kind:  in.Kind,
				Value: in.String(),
			})
		}
		out = append(out, d)
	}
	return out, nil
}

// GetSupportedCanvases returns the canvas names accepted by Options.Canvas
func GetSupportedCanvases() []string {
	return canvas.GetSupportedCanvases()
}
