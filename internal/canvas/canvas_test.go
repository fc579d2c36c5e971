package canvas

import (
	"testing"

	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	c, err := Get("uhd")
	require.NoError(t, err)
	assert.Equal(t, geometry.DefaultFrame(), Frame(c))
	assert.Equal(t, geometry.DefaultPadding, c.GetDefaultPadding())

	portrait, err := Get("portrait")
	require.NoError(t, err)
	w, h := portrait.GetDimensions()
	assert.Less(t, w, h)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("imax")
	assert.EqualError(t, err, "unsupported canvas: imax")
}

func TestGetSupportedCanvases(t *testing.T) {
	assert.Equal(t, []string{"fhd", "hd", "portrait", "qhd", "square", "uhd"}, GetSupportedCanvases())
}
