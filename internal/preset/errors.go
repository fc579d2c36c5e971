package preset

import (
	"fmt"

	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
)

// ConfigurationError reports a generator declaration with an unknown type tag
type ConfigurationError struct {
	Type string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown preset generator type %q", e.Type)
}

// ValueConversionError reports a raw string that does not parse as the
// declared kind of an input slot
type ValueConversionError struct {
	Slot string
	Raw  string
	Kind types.InputKind
	Err  error
}

func (e *ValueConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s for %s: %v", e.Raw, e.Kind, e.Slot, e.Err)
}

func (e *ValueConversionError) Unwrap() error {
	return e.Err
}

// IOError reports a failed filesystem operation while writing presets
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
