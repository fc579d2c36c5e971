package types

import "fmt"

// PresetFamily is the Shotcut filter a preset belongs to. The value is the
// directory name Shotcut uses under presets/.
type PresetFamily string

const (
	PresetFamilyCropRectangle      PresetFamily = "cropRectangle"
	PresetFamilySizePositionRotate PresetFamily = "affineSizePosition"
	PresetFamilyMaskSimpleShape    PresetFamily = "maskSimpleShape"
)

var familyNames = map[PresetFamily]string{
	PresetFamilyCropRectangle:      "Crop Rectangle",
	PresetFamilySizePositionRotate: "Size, Position & Rotate",
	PresetFamilyMaskSimpleShape:    "Mask: Simple Shape",
}

// DisplayName returns the label Shotcut shows for the filter
func (f PresetFamily) DisplayName() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return string(f)
}

var familyAliases = map[string]PresetFamily{
	"crop": PresetFamilyCropRectangle,
	"mask": PresetFamilyMaskSimpleShape,
	"spr":  PresetFamilySizePositionRotate,
}

// ParseFamily accepts the family tag as written in preset directories, or
// one of the short forms crop, mask and spr
func ParseFamily(tag string) (PresetFamily, error) {
	if f, ok := familyAliases[tag]; ok {
		return f, nil
	}
	f := PresetFamily(tag)
	if _, ok := familyNames[f]; !ok {
		return "", fmt.Errorf("unknown preset family: %s", tag)
	}
	return f, nil
}

// InputKind is the declared type of a generator parameter slot
type InputKind string

const (
	InputKindInt   InputKind = "int"
	InputKindFloat InputKind = "float"
	InputKindText  InputKind = "text"
)
