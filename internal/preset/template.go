package preset

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ZacxDev/shotcut-preset-generator/internal/format"
	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
	"github.com/pkg/errors"
)

// Template is a Shotcut preset body with $name placeholders. Text is kept
// byte for byte, Shotcut is picky about key order.
type Template struct {
	Name string
	Text string
}

var (
	CropTemplate = Template{Name: "crop", Text: `---
rect: $x $y $width $height 1
radius: 0
color: "#00000000"
...`}

	SizePositionTemplate = Template{Name: "size-position", Text: `---
transition.fill: 1
transition.distort: 0
transition.rect: $x $y $width $height 1
transition.halign: center
transition.valign: middle
"shotcut:animIn": "00:00:00.000"
"shotcut:animOut": "00:00:00.000"
...`}

	MaskTemplate = Template{Name: "mask", Text: `---
filter.1: 0.252083
filter.2: 0.253704
filter.3: 0.252083
filter.4: 0.253704
filter.0: 0
filter.5: 0.5
filter.6: 0
filter.9: 0
"shotcut:rect": $x $y $width $height 1
...`}

	// SlideInTemplate grows the crop from a point to the block, holds it, and
	// shrinks it back
	SlideInTemplate = Template{Name: "slidein", Text: `---
rect: 0=$x_start $y_start 0 0 1;$frame_in=$x_end $y_end $width $height 1;$frame_out=$x_end $y_end $width $height 1;$frame_end=$x_start $y_start 0 0 1
radius: 0=0;$frame_in=0;$frame_out=0;$frame_end=0
color: "#00000000"
"shotcut:animIn": "00:00:01.000"
"shotcut:animOut": "00:00:01.000"
...`}

	SlideInBorderTemplate = Template{Name: "slidein-border", Text: `---
rect: 0|=0 0 0 0 1;$frame_in|=$x_end $y_end $width $height 1;$frame_out|=0 0 0 0 1
radius: 0
color: "#00000000"
"shotcut:animIn": "00:00:00.000"
"shotcut:animOut": "00:00:00.000"
...`}
)

// Render substitutes every placeholder. A placeholder without a value is an
// error; unused values are ignored.
func (t Template) Render(values map[string]string) (string, error) {
	var missing []string
	out := os.Expand(t.Text, func(name string) string {
		v, ok := values[name]
		if !ok {
			missing = append(missing, name)
		}
		return v
	})
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", errors.Errorf("template %s: no value for %s", t.Name, strings.Join(missing, ", "))
	}
	return out, nil
}

// Placeholders lists the distinct placeholder names of the template
func (t Template) Placeholders() []string {
	seen := map[string]bool{}
	var names []string
	os.Expand(t.Text, func(name string) string {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return ""
	})
	return names
}

// StaticTemplate returns the single keyframe template of a family
func StaticTemplate(family types.PresetFamily) (Template, error) {
	switch family {
	case types.PresetFamilyCropRectangle:
		return CropTemplate, nil
	case types.PresetFamilySizePositionRotate:
		return SizePositionTemplate, nil
	case types.PresetFamilyMaskSimpleShape:
		return MaskTemplate, nil
	default:
		return Template{}, errors.Errorf("no template for preset family %s", family)
	}
}

func rectValues(p format.RectPercents) map[string]string {
	return map[string]string{
		"x":      p.X,
		"y":      p.Y,
		"width":  p.Width,
		"height": p.Height,
	}
}

func keyframeValues(p format.RectPercents, k Keyframes) map[string]string {
	return map[string]string{
		"x_start":   p.X,
		"y_start":   p.Y,
		"x_end":     p.X,
		"y_end":     p.Y,
		"width":     p.Width,
		"height":    p.Height,
		"frame_in":  strconv.Itoa(k.In),
		"frame_out": strconv.Itoa(k.Out),
		"frame_end": strconv.Itoa(k.End),
	}
}
