package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestDiffuseBSDF_SampleReturnsBaseColorAsWeight(t *testing.T) {
	assert := assert.New(t)

	bsdf := DiffuseBSDF{}
	rng := mathx.NewRandomSeeded(1)
	param := Params{BaseColor: mathx.NewVec3(0.5, 0.25, 0.1)}

	result := bsdf.Sample(mathx.NewVec3(0, 0, 1), rng, param)

	assert.True(result.Valid)
	assert.Greater(result.IncomingDir.Z, float32(0))
	assert.InDelta(0.5, float64(result.Weight.X), 1e-6)
	assert.InDelta(0.25, float64(result.Weight.Y), 1e-6)
	assert.InDelta(0.1, float64(result.Weight.Z), 1e-6)
	assert.Greater(result.PDF, float32(0))
}

func TestDiffuseBSDF_SampleRejectsGrazingOutgoing(t *testing.T) {
	assert := assert.New(t)

	bsdf := DiffuseBSDF{}
	rng := mathx.NewRandomSeeded(1)
	result := bsdf.Sample(mathx.NewVec3(1, 0, 0), rng, Params{})
	assert.False(result.Valid)
}

func TestDiffuseBSDF_EvaluateMatchesCosineOverPi(t *testing.T) {
	assert := assert.New(t)

	bsdf := DiffuseBSDF{}
	param := Params{BaseColor: mathx.NewVec3(1, 1, 1)}
	value, pdf := bsdf.Evaluate(mathx.NewVec3(0, 0, 1), mathx.NewVec3(0, 0, 1), param)

	assert.InDelta(1.0/3.14159265, float64(value.X), 1e-3)
	assert.InDelta(1.0/3.14159265, float64(pdf), 1e-3)
}

func TestDiffuseBSDF_SampleSpreadStaysInUpperHemisphere(t *testing.T) {
	assert := assert.New(t)

	bsdf := DiffuseBSDF{}
	rng := mathx.NewRandomSeeded(42)
	param := Params{BaseColor: mathx.NewVec3(1, 1, 1)}

	for i := 0; i < 100; i++ {
		result := bsdf.Sample(mathx.NewVec3(0, 0, 1), rng, param)
		assert.True(result.Valid)
		assert.GreaterOrEqual(result.IncomingDir.Z, float32(0))
	}
}
