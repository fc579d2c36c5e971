package geometry

import "fmt"

// Modifier describes how a corner block is offset and sized relative to the
// frame and the half-padding border.
//
//	x = XAdj*prefixX + border*DX     w = blockWidth  - border*DW
//	y = YAdj*prefixY + border*DY     h = blockHeight - border*DH
type Modifier struct {
	DX   float64
	DY   float64
	DW   float64
	DH   float64
	XAdj float64
	YAdj float64
}

// Style selects one of the fixed modifier tables
type Style int

const (
	// StyleCrop insets the block toward its own corner
	StyleCrop Style = iota
	// StyleMask grows the block toward the opposite edges
	StyleMask
	// StyleSPR has no inset, the block occupies exactly its share of the frame
	StyleSPR
)

func (s Style) String() string {
	switch s {
	case StyleCrop:
		return "crop"
	case StyleMask:
		return "mask"
	case StyleSPR:
		return "spr"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

var cropModifiers = [...]Modifier{
	TopLeft:     {DX: 1, DY: 1, DW: 1.5, DH: 1.5, XAdj: 0, YAdj: 0},
	TopRight:    {DX: 0.5, DY: 1, DW: 1.5, DH: 1.5, XAdj: 1, YAdj: 0},
	BottomLeft:  {DX: 1, DY: 0.5, DW: 1.5, DH: 2, XAdj: 0, YAdj: 1},
	BottomRight: {DX: 0.5, DY: 0.5, DW: 1.5, DH: 2, XAdj: 1, YAdj: 1},
}

var maskModifiers = [...]Modifier{
	TopLeft:     {DX: 0, DY: 0, DW: -0.5, DH: -0.5, XAdj: 0, YAdj: 0},
	TopRight:    {DX: -0.5, DY: 0, DW: -0.5, DH: -0.5, XAdj: 1, YAdj: 0},
	BottomLeft:  {DX: 0, DY: -0.5, DW: -0.5, DH: -0.5, XAdj: 0, YAdj: 1},
	BottomRight: {DX: -0.5, DY: -0.5, DW: -0.5, DH: -0.5, XAdj: 1, YAdj: 1},
}

var sprModifiers = [...]Modifier{
	TopLeft:     {XAdj: 0, YAdj: 0},
	TopRight:    {XAdj: 1, YAdj: 0},
	BottomLeft:  {XAdj: 0, YAdj: 1},
	BottomRight: {XAdj: 1, YAdj: 1},
}

// ModifierFor returns the modifier of a corner in the given table. The tables
// are arrays so callers always receive a copy.
func ModifierFor(style Style, corner Corner) (Modifier, error) {
	if corner < TopLeft || corner > BottomRight {
		return Modifier{}, fmt.Errorf("unknown corner: %s", corner)
	}
	switch style {
	case StyleCrop:
		return cropModifiers[corner], nil
	case StyleMask:
		return maskModifiers[corner], nil
	case StyleSPR:
		return sprModifiers[corner], nil
	default:
		return Modifier{}, fmt.Errorf("unknown modifier style: %s", style)
	}
}

// MustModifier is ModifierFor for the fixed corner/style constants
func MustModifier(style Style, corner Corner) Modifier {
	mod, err := ModifierFor(style, corner)
	if err != nil {
		panic(err)
	}
	return mod
}
