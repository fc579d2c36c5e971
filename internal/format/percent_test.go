package format

import (
	"math"
	"testing"

	"github.com/ZacxDev/shotcut-preset-generator/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPercent(t *testing.T) {
	assert.Equal(t, "50.0000%", ToPercent(5, 10))
	assert.Equal(t, "33.3333%", ToPercent(100.0/3, 100))
	assert.Equal(t, "66.6667%", ToPercent(200.0/3, 100))
	assert.Equal(t, "0.4167%", ToPercent(16, 3840))
	assert.Equal(t, "49.2593%", ToPercent(1064, 2160))
}

func TestToPercentIdentities(t *testing.T) {
	for _, x := range []int{1, 7, 1080, 2160, 3840, 123456} {
		assert.Equal(t, "100.0000%", ToPercent(x, x))
		assert.Equal(t, "0.0000%", ToPercent(0, x))
	}
	assert.Equal(t, "100.0000%", ToPercent(0.25, 0.25))
}

func TestPercentRoundTrip(t *testing.T) {
	for _, maxValue := range []int{1080, 1920, 2160, 3840} {
		for value := 0; value <= maxValue; value += 37 {
			back, err := FromPercent(ToPercent(value, maxValue), maxValue)
			require.NoError(t, err)
			assert.LessOrEqual(t, math.Abs(back-float64(value)), 1.0, "value %d of %d", value, maxValue)
		}
	}
}

func TestFromPercentInvalid(t *testing.T) {
	_, err := FromPercent("abc%", 100)
	assert.Error(t, err)
}

func TestPercentsRect(t *testing.T) {
	p := Percents(geometry.Rectangle{X: 16, Y: 16, Width: 1904, Height: 1064}, geometry.DefaultFrame())
	assert.Equal(t, "0.4167% 0.7407% 49.5833% 49.2593% 1", p.Rect())
}
