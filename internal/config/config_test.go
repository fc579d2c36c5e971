package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetsJSON = `{
  "settings": {"output": "/tmp/shotcut", "canvas": "fhd"},
  "generators": [
    {"type": "pip", "name": "pip", "width": 3840, "height": 2160, "size": 50, "padding": 32},
    {"type": "slidein", "name": "slide", "size": 25, "fps": 30, "duration": 4, "padding": 0},
    {"type": "grid", "name": "grid", "rows": 2, "columns": 4}
  ]
}`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	file, err := Load(writeConfig(t, "presets.json", presetsJSON))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/shotcut", file.Settings.Output)
	assert.Equal(t, "fhd", file.Settings.Canvas)
	assert.Equal(t, "info", file.Settings.Logger.Level)
	require.Len(t, file.Generators, 3)

	pip := file.Generators[0]
	assert.Equal(t, "pip", pip.Type)
	assert.Equal(t, 3840, pip.Width)
	assert.Equal(t, 50.0, pip.Size)
	assert.Equal(t, 32, pip.PaddingOr(7))

	slide := file.Generators[1]
	assert.Equal(t, 30, slide.FPS)
	assert.Equal(t, 4, slide.Duration)
	assert.Equal(t, 0, slide.PaddingOr(DefaultPadding))

	grid := file.Generators[2]
	assert.Equal(t, 2, grid.Rows)
	assert.Equal(t, 4, grid.Columns)
	assert.Equal(t, DefaultPadding, grid.PaddingOr(DefaultPadding))
}

func TestLoadYAML(t *testing.T) {
	content := `
settings:
  output: ./out
generators:
  - type: grid
    name: grid
    rows: 3
    columns: 3
`
	file, err := Load(writeConfig(t, "presets.yaml", content))
	require.NoError(t, err)
	assert.Equal(t, "./out", file.Settings.Output)
	assert.Equal(t, DefaultCanvas, file.Settings.Canvas)
	require.Len(t, file.Generators, 1)
	assert.Equal(t, 3, file.Generators[0].Rows)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PRESETGEN_SETTINGS_OUTPUT", "/srv/presets")
	file, err := Load(writeConfig(t, "presets.json", presetsJSON))
	require.NoError(t, err)
	assert.Equal(t, "/srv/presets", file.Settings.Output)
}

func TestLoadDefaultsWithoutGenerators(t *testing.T) {
	file, err := Load(writeConfig(t, "presets.json", `{"settings": {"output": "out"}}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultGenerators(), file.Generators)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("expands home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		file := Default()
		file.Settings.Output = "~/shotcut"
		require.NoError(t, file.Validate())
		assert.Equal(t, filepath.Join(home, "shotcut"), file.Settings.Output)
	})

	t.Run("empty output", func(t *testing.T) {
		file := Default()
		file.Settings.Output = " "
		assert.Error(t, file.Validate())
	})

	t.Run("missing type", func(t *testing.T) {
		file := Default()
		file.Generators = append(file.Generators, GeneratorConfig{Name: "nameless"})
		err := file.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "type is required")
	})

	t.Run("half declared frame", func(t *testing.T) {
		file := Default()
		file.Generators[0].Width = 1920
		err := file.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "width and height must be given together")
	})

	t.Run("size out of range", func(t *testing.T) {
		file := Default()
		file.Generators[0].Size = 120
		assert.Error(t, file.Validate())
	})
}
