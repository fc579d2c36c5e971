package preset

import (
	"testing"

	"github.com/ZacxDev/shotcut-preset-generator/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRender(t *testing.T) {
	out, err := CropTemplate.Render(map[string]string{"x": "1%", "y": "2%", "width": "3%", "height": "4%"})
	require.NoError(t, err)
	assert.Equal(t, "---\nrect: 1% 2% 3% 4% 1\nradius: 0\ncolor: \"#00000000\"\n...", out)
}

func TestTemplateRenderMissing(t *testing.T) {
	_, err := CropTemplate.Render(map[string]string{"x": "1%"})
	assert.ErrorContains(t, err, "height, width, y")
}

func TestTemplatePlaceholders(t *testing.T) {
	assert.Equal(t, []string{"x", "y", "width", "height"}, CropTemplate.Placeholders())
	assert.Equal(t, []string{"x_start", "y_start", "frame_in", "x_end", "y_end", "width", "height", "frame_out", "frame_end"},
		SlideInTemplate.Placeholders())
	assert.Equal(t, []string{"frame_in", "x_end", "y_end", "width", "height", "frame_out"},
		SlideInBorderTemplate.Placeholders())
}

func TestStaticTemplate(t *testing.T) {
	tpl, err := StaticTemplate(types.PresetFamilyMaskSimpleShape)
	require.NoError(t, err)
	assert.Equal(t, MaskTemplate, tpl)

	_, err = StaticTemplate(types.PresetFamily("blur"))
	assert.Error(t, err)
}
