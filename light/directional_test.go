package light

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestDirectionalLight_IlluminateReturnsFixedDirection(t *testing.T) {
	assert := assert.New(t)

	l := &DirectionalLight{Direction: mathx.NewVec3(0, -1, 0), Color: mathx.NewVec3(2, 2, 2)}
	sample := l.Illuminate(mathx.NewVec3(5, 5, 5), nil)

	assert.True(sample.Valid)
	assert.Equal(float32(1), sample.Distance)
	assert.Equal(float32(1), sample.DirectPdfW)
	assert.InDelta(1.0, float64(sample.DirectionToLight.Y), 1e-6)
}

func TestDirectionalLight_IsNotFiniteButIsDelta(t *testing.T) {
	assert := assert.New(t)

	l := &DirectionalLight{}
	assert.False(l.IsFinite())
	assert.True(l.IsDelta())
}

func TestDirectionalLight_BoundingBoxIsEmpty(t *testing.T) {
	assert := assert.New(t)

	l := &DirectionalLight{}
	assert.Equal(mathx.EmptyBox(), l.BoundingBox())
}
