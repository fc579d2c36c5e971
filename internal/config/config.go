package config

import (
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. PRESETGEN_SETTINGS_OUTPUT
	EnvPrefix = "PRESETGEN"

	// DefaultConfigName is searched for in the working directory when no
	// config file is given
	DefaultConfigName = "presets"

	DefaultOutput = "./shotcut"
	DefaultCanvas = "uhd"

	// Default frame and padding
	DefaultWidth   = 3840
	DefaultHeight  = 2160
	DefaultPadding = 32

	// Default generator values
	DefaultSize     = 50.0
	DefaultFPS      = 25
	DefaultDuration = 5
	DefaultRows     = 3
	DefaultColumns  = 3
)

// LoggerConfig configures the zap logger
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	ServiceName string `mapstructure:"service_name"`
	LogFile     string `mapstructure:"log_file"`
	MaxSize     int    `mapstructure:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	Compress    bool   `mapstructure:"compress"`
}

// Settings is shared by every generator
type Settings struct {
	Output string       `mapstructure:"output"`
	Canvas string       `mapstructure:"canvas"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// GeneratorConfig declares one generator. Only the fields of its type are
// read; zero values fall back to the defaults above.
type GeneratorConfig struct {
	Type     string  `mapstructure:"type"`
	Name     string  `mapstructure:"name"`
	Width    int     `mapstructure:"width"`
	Height   int     `mapstructure:"height"`
	Size     float64 `mapstructure:"size"`
	Padding  *int    `mapstructure:"padding"`
	FPS      int     `mapstructure:"fps"`
	Duration int     `mapstructure:"duration"`
	Rows     int     `mapstructure:"rows"`
	Columns  int     `mapstructure:"columns"`
}

// PaddingOr returns the declared padding or def when none was set
func (g GeneratorConfig) PaddingOr(def int) int {
	if g.Padding == nil {
		return def
	}
	return *g.Padding
}

// File is the parsed presets file
type File struct {
	Settings   Settings          `mapstructure:"settings"`
	Generators []GeneratorConfig `mapstructure:"generators"`
}

// DefaultGenerators is used when the presets file declares none
func DefaultGenerators() []GeneratorConfig {
	return []GeneratorConfig{
		{Type: "pip", Name: "pip", Size: DefaultSize},
		{Type: "slidein", Name: "slidein", Size: DefaultSize, FPS: DefaultFPS, Duration: DefaultDuration},
		{Type: "grid", Name: "grid", Rows: DefaultRows, Columns: DefaultColumns},
	}
}

// Default returns the configuration used without a presets file
func Default() *File {
	return &File{
		Settings: Settings{
			Output: DefaultOutput,
			Canvas: DefaultCanvas,
			Logger: defaultLogger(),
		},
		Generators: DefaultGenerators(),
	}
}

func defaultLogger() LoggerConfig {
	return LoggerConfig{
		Level:       "info",
		Format:      "console",
		ServiceName: "presetgen",
		MaxSize:     10,
		MaxBackups:  3,
		MaxAge:      28,
	}
}

func setDefaults(v *viper.Viper) {
	logger := defaultLogger()
	v.SetDefault("settings.output", DefaultOutput)
	v.SetDefault("settings.canvas", DefaultCanvas)
	v.SetDefault("settings.logger.level", logger.Level)
	v.SetDefault("settings.logger.format", logger.Format)
	v.SetDefault("settings.logger.service_name", logger.ServiceName)
	v.SetDefault("settings.logger.log_file", "")
	v.SetDefault("settings.logger.max_size", logger.MaxSize)
	v.SetDefault("settings.logger.max_backups", logger.MaxBackups)
	v.SetDefault("settings.logger.max_age", logger.MaxAge)
	v.SetDefault("settings.logger.compress", false)
}

// Load reads a presets file (JSON, YAML or TOML by extension). An empty path
// looks for presets.* in the working directory and falls back to the
// built-in defaults when there is none.
func Load(path string) (*File, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	file := &File{}
	if err := v.Unmarshal(file); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if len(file.Generators) == 0 {
		file.Generators = DefaultGenerators()
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}

	return file, nil
}

// Validate checks the settings block and expands the output path
func (f *File) Validate() error {
	if strings.TrimSpace(f.Settings.Output) == "" {
		return errors.New("settings.output must not be empty")
	}
	output, err := homedir.Expand(f.Settings.Output)
	if err != nil {
		return errors.Wrapf(err, "invalid output path %s", f.Settings.Output)
	}
	f.Settings.Output = output

	for i, g := range f.Generators {
		if g.Type == "" {
			return errors.Errorf("generators[%d]: type is required", i)
		}
		if g.Width < 0 || g.Height < 0 || g.Rows < 0 || g.Columns < 0 {
			return errors.Errorf("generators[%d] (%s): dimensions must not be negative", i, g.Type)
		}
		if (g.Width > 0) != (g.Height > 0) {
			return errors.Errorf("generators[%d] (%s): width and height must be given together", i, g.Type)
		}
		if g.Size < 0 || g.Size > 100 {
			return errors.Errorf("generators[%d] (%s): size must be within (0,100]", i, g.Type)
		}
	}
	return nil
}
