package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestEnvironmentUV_StraightUpMapsToZeroTheta(t *testing.T) {
	assert := assert.New(t)

	uv := environmentUV(mathx.NewVec3(0, 1, 0))
	assert.InDelta(0.0, float64(uv.Y), 1e-4)
}

func TestEnvironmentUV_StraightDownMapsToOneTheta(t *testing.T) {
	assert := assert.New(t)

	uv := environmentUV(mathx.NewVec3(0, -1, 0))
	assert.InDelta(1.0, float64(uv.Y), 1e-4)
}

func TestEnvironmentUV_WrapsPhiIntoUnitRange(t *testing.T) {
	assert := assert.New(t)

	uv := environmentUV(mathx.NewVec3(1, 0, 0))
	assert.True(uv.X >= 0 && uv.X <= 1)
}
