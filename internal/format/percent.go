// Package format converts pixel values to the frame relative percent strings
// Shotcut stores in its rect properties.
package format

import (
	"strconv"
	"strings"

	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Precision is the number of decimals written after the point
const Precision = 4

type number interface {
	constraints.Integer | constraints.Float
}

// ToPercent formats value/maxValue*100 as e.g. "49.5833%"
func ToPercent[T number](value, maxValue T) string {
	percent := (float64(value) / float64(maxValue)) * 100
	return strconv.FormatFloat(percent, 'f', Precision, 64) + "%"
}

// FromPercent parses a percent string and scales it back to maxValue
func FromPercent[T number](s string, maxValue T) (float64, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	percent, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid percent value %q", s)
	}
	return percent * float64(maxValue) / 100, nil
}

// RectPercents holds a rectangle expressed relative to its frame
type RectPercents struct {
	X      string
	Y      string
	Width  string
	Height string
}

// Percents converts a rectangle, x and width against the frame width, y and
// height against the frame height.
func Percents(r geometry.Rectangle, f geometry.Frame) RectPercents {
	return RectPercents{
		X:      ToPercent(r.X, f.Width),
		Y:      ToPercent(r.Y, f.Height),
		Width:  ToPercent(r.Width, f.Width),
		Height: ToPercent(r.Height, f.Height),
	}
}

// Rect renders the Shotcut rect value "x y w h 1"
func (p RectPercents) Rect() string {
	return strings.Join([]string{p.X, p.Y, p.Width, p.Height, "1"}, " ")
}
