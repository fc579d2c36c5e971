package preset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// InputValue is a named, typed parameter slot of a generator
type InputValue struct {
	Name  string
	Label string
	Kind  types.InputKind
	Value any
}

// SetFromString coerces raw according to the slot kind. On failure the
// previous value is kept.
func (v *InputValue) SetFromString(raw string) error {
	switch v.Kind {
	case types.InputKindText:
		v.Value = raw
	case types.InputKindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return &ValueConversionError{Slot: v.Name, Raw: raw, Kind: v.Kind, Err: err}
		}
		v.Value = n
	case types.InputKindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return &ValueConversionError{Slot: v.Name, Raw: raw, Kind: v.Kind, Err: err}
		}
		v.Value = f
	default:
		return &ValueConversionError{Slot: v.Name, Raw: raw, Kind: v.Kind,
			Err: errors.Errorf("unsupported input kind %q", v.Kind)}
	}
	return nil
}

// String returns the current value as the caller would type it
func (v *InputValue) String() string {
	switch val := v.Value.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// Inputs is the ordered slot list of a generator
type Inputs []*InputValue

// Get looks a slot up by name
func (in Inputs) Get(name string) (*InputValue, bool) {
	for _, v := range in {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Int returns the value of an int slot
func (in Inputs) Int(name string) (int, error) {
	v, ok := in.Get(name)
	if !ok {
		return 0, errors.Errorf("no input named %s", name)
	}
	n, ok := v.Value.(int)
	if !ok {
		return 0, errors.Errorf("input %s holds %T, not int", name, v.Value)
	}
	return n, nil
}

// Float returns the value of a float slot, accepting ints
func (in Inputs) Float(name string) (float64, error) {
	v, ok := in.Get(name)
	if !ok {
		return 0, errors.Errorf("no input named %s", name)
	}
	switch val := v.Value.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	default:
		return 0, errors.Errorf("input %s holds %T, not float", name, v.Value)
	}
}

// Text returns the value of a text slot
func (in Inputs) Text(name string) (string, error) {
	v, ok := in.Get(name)
	if !ok {
		return "", errors.Errorf("no input named %s", name)
	}
	s, ok := v.Value.(string)
	if !ok {
		return "", errors.Errorf("input %s holds %T, not text", name, v.Value)
	}
	return s, nil
}

// SetFromStrings applies raw values by slot name. Every slot is attempted;
// failures are combined and the failing slots keep their previous value.
func (in Inputs) SetFromStrings(raw map[string]string) error {
	var errs error
	for name := range raw {
		if _, ok := in.Get(name); !ok {
			errs = multierr.Append(errs, errors.Errorf("no input named %s", name))
		}
	}
	for _, v := range in {
		s, ok := raw[v.Name]
		if !ok {
			continue
		}
		errs = multierr.Append(errs, v.SetFromString(s))
	}
	return errs
}

// Labels returns the slot labels, e.g. for a usage line
func (in Inputs) Labels() []string {
	labels := make([]string, 0, len(in))
	for _, v := range in {
		labels = append(labels, v.Label)
	}
	return labels
}
