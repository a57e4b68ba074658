package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestNew_RejectsBadDimensions(t *testing.T) {
	assert := assert.New(t)

	_, err := New(0, 10, FormatRGBA32F, true, nil)
	assert.Error(err)
}

func TestGetSet_RGBA32F_RoundTrips(t *testing.T) {
	assert := assert.New(t)

	bmp, err := New(4, 4, FormatRGBA32F, true, nil)
	assert.NoError(err)

	offset := (1*4 + 2) * 16
	writeF32(bmp.data[offset:], 0.25)
	writeF32(bmp.data[offset+4:], 0.5)
	writeF32(bmp.data[offset+8:], 0.75)

	c, err := bmp.Get(2, 1, true)
	assert.NoError(err)
	assert.InDelta(0.25, float64(c.X), 1e-5)
	assert.InDelta(0.5, float64(c.Y), 1e-5)
	assert.InDelta(0.75, float64(c.Z), 1e-5)
}

func TestGet_OutOfBoundsErrors(t *testing.T) {
	assert := assert.New(t)

	bmp, _ := New(2, 2, FormatR8, true, nil)
	_, err := bmp.Get(5, 5, true)
	assert.ErrorIs(err, ErrOutOfBounds)
}

func TestGet_AppliesSRGBSquareWhenNotLinear(t *testing.T) {
	assert := assert.New(t)

	bmp, _ := New(1, 1, FormatR8, false, []byte{128})
	c, err := bmp.Get(0, 0, false)
	assert.NoError(err)

	raw := float32(128) / 255
	assert.InDelta(float64(raw*raw), float64(c.X), 1e-5)

	linear, err := bmp.Get(0, 0, true)
	assert.NoError(err)
	assert.InDelta(float64(raw), float64(linear.X), 1e-5)
}

func TestCopy_RejectsMismatch(t *testing.T) {
	assert := assert.New(t)

	a, _ := New(2, 2, FormatR8, true, nil)
	b, _ := New(3, 3, FormatR8, true, nil)
	assert.ErrorIs(Copy(a, b), ErrDimensionMismatch)
}

func TestSample_NearestWrapsCoordinates(t *testing.T) {
	assert := assert.New(t)

	bmp, _ := New(2, 1, FormatR8, true, []byte{0, 255})
	c, err := bmp.Sample(mathx.Vec2{X: -0.01, Y: 0}, FilterNearest, true)
	assert.NoError(err)
	assert.InDelta(1.0, float64(c.X), 1e-3)
}

func TestSample_BilinearInterpolatesBetweenTexels(t *testing.T) {
	assert := assert.New(t)

	bmp, _ := New(2, 1, FormatR8, true, []byte{0, 255})
	c, err := bmp.Sample(mathx.Vec2{X: 0.25, Y: 0.5}, FilterBilinear, true)
	assert.NoError(err)
	assert.True(c.X > 0 && c.X < 1)
}

func TestDecodeBC1_InterpolatesEndpoints(t *testing.T) {
	assert := assert.New(t)

	block := make([]byte, 8)
	block[0], block[1] = 0x00, 0x00
	block[2], block[3] = 0xff, 0xff
	block[4], block[5], block[6], block[7] = 0, 0, 0, 0

	c, err := DecodeBC1(block, 0, 0, 4)
	assert.NoError(err)
	assert.Equal(float32(0), c.X)
	assert.Equal(float32(0), c.Y)
	assert.Equal(float32(0), c.Z)
}
