package geometry

// BorderCalc sizes a block that covers Size percent of the frame. Every
// derived value is recomputed from the four inputs on demand.
type BorderCalc struct {
	Size    float64 // percent, (0,100]
	Frame   Frame
	Padding int
}

// NewBorderCalc returns a calculator for the default UHD frame and padding
func NewBorderCalc(size float64) BorderCalc {
	return BorderCalc{Size: size, Frame: DefaultFrame(), Padding: DefaultPadding}
}

// PrefixX is the horizontal inset left free when the block is smaller than the frame
func (b BorderCalc) PrefixX() float64 {
	return ((100 - b.Size) / 100) * float64(b.Frame.Width)
}

// PrefixY is the vertical counterpart of PrefixX
func (b BorderCalc) PrefixY() float64 {
	return ((100 - b.Size) / 100) * float64(b.Frame.Height)
}

// Border is the per-edge inset, half of the padding
func (b BorderCalc) Border() float64 {
	return float64(b.Padding) / 2
}

func (b BorderCalc) BlockWidth() float64 {
	return float64(b.Frame.Width) * (b.Size / 100)
}

func (b BorderCalc) BlockHeight() float64 {
	return float64(b.Frame.Height) * (b.Size / 100)
}

// StartPoint returns the unrounded top left point of the block
func (b BorderCalc) StartPoint(mod Modifier) (x, y float64) {
	x = mod.XAdj*b.PrefixX() + b.Border()*mod.DX
	y = mod.YAdj*b.PrefixY() + b.Border()*mod.DY
	return x, y
}

// Compute applies a modifier and rounds each component independently
func (b BorderCalc) Compute(mod Modifier) Rectangle {
	x, y := b.StartPoint(mod)
	w := b.BlockWidth() - b.Border()*mod.DW
	h := b.BlockHeight() - b.Border()*mod.DH
	return Rectangle{X: round(x), Y: round(y), Width: round(w), Height: round(h)}
}

func (b BorderCalc) Crop(corner Corner) Rectangle {
	return b.Compute(MustModifier(StyleCrop, corner))
}

func (b BorderCalc) Mask(corner Corner) Rectangle {
	return b.Compute(MustModifier(StyleMask, corner))
}

func (b BorderCalc) SPR(corner Corner) Rectangle {
	return b.Compute(MustModifier(StyleSPR, corner))
}

// Block computes the rectangle of a corner for any modifier style
func (b BorderCalc) Block(style Style, corner Corner) (Rectangle, error) {
	mod, err := ModifierFor(style, corner)
	if err != nil {
		return Rectangle{}, err
	}
	return b.Compute(mod), nil
}

// Compute is the stateless form of BorderCalc.Compute
func Compute(frame Frame, padding int, size float64, mod Modifier) Rectangle {
	return BorderCalc{Size: size, Frame: frame, Padding: padding}.Compute(mod)
}
