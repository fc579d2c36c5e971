package presetgen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/ZacxDev/shotcut-preset-generator/internal/preset"
	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDryRunGrid(t *testing.T) {
	artifacts, err := Run(&Options{
		Generator: "grid",
		Values:    map[string]string{"rows": "2", "columns": "2"},
		DryRun:    true,
	})
	require.NoError(t, err)
	require.Len(t, artifacts, 9)
	assert.Equal(t, "Grid_2x2_(1,1.1x1)", artifacts[0].Name)
	assert.Contains(t, artifacts[0].Content, "rect: 0.4167% 0.7407% 49.5833% 49.2593% 1")
}

func TestRunCanvasOverride(t *testing.T) {
	artifacts, err := Run(&Options{
		Generator: "pip",
		Family:    "crop",
		Canvas:    "fhd",
		DryRun:    true,
	})
	require.NoError(t, err)
	require.Len(t, artifacts, 4)

	tl := artifacts[0]
	assert.Equal(t, "Pip_TopLeft_50%_Border", tl.Name)
	assert.Equal(t, types.PresetFamilyCropRectangle, tl.Family)
	assert.Equal(t, geometry.Rectangle{X: 8, Y: 8, Width: 948, Height: 528}, tl.Rect)
	assert.Equal(t, geometry.Frame{Width: 1920, Height: 1080}, tl.Frame)
}

func TestRunWritesFiles(t *testing.T) {
	root := t.TempDir()
	artifacts, err := Run(&Options{Generator: "pip", Output: root})
	require.NoError(t, err)
	require.Len(t, artifacts, 4)

	data, err := os.ReadFile(filepath.Join(root, "presets", "affineSizePosition", "Pip_TopLeft_50%25"))
	require.NoError(t, err)
	assert.Equal(t, artifacts[0].Content, string(data))
}

func TestRunAllGenerators(t *testing.T) {
	artifacts, err := Run(&Options{DryRun: true})
	require.NoError(t, err)
	// 4 pip, 8 slide-in, 36 spans of a 3x3 grid
	assert.Len(t, artifacts, 48)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"unknown generator", Options{Generator: "mosaic"}, "no generator named mosaic"},
		{"unsupported family", Options{Generator: "grid", Family: "mask"}, "does not support"},
		{"unknown family", Options{Generator: "pip", Family: "blur"}, "unknown preset family"},
		{"unknown canvas", Options{Generator: "pip", Canvas: "imax"}, "unsupported canvas"},
		{"values without generator", Options{Values: map[string]string{"size": "10"}}, "single generator"},
		{"unknown slot", Options{Generator: "grid", Values: map[string]string{"size": "10"}}, "no input named size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.DryRun = true
			_, err := Run(&tt.opts)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestRunConversionError(t *testing.T) {
	_, err := Run(&Options{Generator: "grid", Values: map[string]string{"rows": "abc"}, DryRun: true})
	var convErr *preset.ValueConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "rows", convErr.Slot)
}

func TestRunUnknownGeneratorType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
generators:
  - type: pip
  - type: test
`), 0o644))

	_, err := Run(&Options{ConfigPath: path, DryRun: true})
	var cfgErr *preset.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "test", cfgErr.Type)
}

func TestList(t *testing.T) {
	descriptions, err := List("")
	require.NoError(t, err)
	require.Len(t, descriptions, 3)

	assert.Equal(t, "pip", descriptions[0].Name)
	assert.Len(t, descriptions[0].Families, 3)

	grid := descriptions[2]
	assert.Equal(t, "grid", grid.Name)
	assert.Equal(t, types.PresetFamilyCropRectangle, grid.Active)
	require.Len(t, grid.Inputs, 2)
	assert.Equal(t, InputDescription{Name: "rows", Label: "Rows", Kind: types.InputKindInt, Value: "3"}, grid.Inputs[0])
	assert.True(t, strings.HasPrefix(grid.String(), "grid: Grid Presets"))
}

func TestPreview(t *testing.T) {
	commands, err := Preview(&PreviewOptions{
		Options: Options{Generator: "pip", Family: "crop", Canvas: "fhd"},
		Input:   "clip.mp4",
	})
	require.NoError(t, err)
	require.Len(t, commands, 4)
	assert.Equal(t, "Pip_TopLeft_50%_Border", commands[0].Name)
	assert.Contains(t, commands[0].String(), "crop=948:528:8:8")
}

func TestPreviewNeedsOverlay(t *testing.T) {
	_, err := Preview(&PreviewOptions{
		Options: Options{Generator: "pip"},
		Input:   "clip.mp4",
	})
	assert.ErrorContains(t, err, "needs an overlay clip")
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pip.png")
	artifacts, err := Render(&RenderOptions{
		Options: Options{Generator: "pip", Canvas: "hd"},
		Path:    path,
		Scale:   0.5,
	})
	require.NoError(t, err)
	assert.Len(t, artifacts, 4)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = Render(&RenderOptions{Options: Options{Generator: "pip"}})
	assert.Error(t, err)
}

func TestGetSupportedCanvases(t *testing.T) {
	assert.Contains(t, GetSupportedCanvases(), "uhd")
}
