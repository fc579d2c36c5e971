package canvas

import (
	"fmt"
	"sort"

	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
)

// Canvas describes a project resolution presets can be generated for
type Canvas interface {
	// GetName returns the canvas name used on the command line
	GetName() string

	// GetDimensions returns the frame size in pixels
	GetDimensions() (width, height int)

	// GetDefaultPadding returns the border thickness that looks right at this size
	GetDefaultPadding() int
}

var canvases = make(map[string]Canvas)

// Register adds a canvas to the registry
func Register(c Canvas) {
	canvases[c.GetName()] = c
}

// Get returns a canvas by name
func Get(name string) (Canvas, error) {
	c, ok := canvases[name]
	if !ok {
		return nil, fmt.Errorf("unsupported canvas: %s", name)
	}
	return c, nil
}

// Frame returns the frame of a canvas
func Frame(c Canvas) geometry.Frame {
	w, h := c.GetDimensions()
	return geometry.Frame{Width: w, Height: h}
}

// GetSupportedCanvases returns the registered canvas names, sorted
func GetSupportedCanvases() []string {
	names := make([]string, 0, len(canvases))
	for name := range canvases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
