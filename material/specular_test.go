package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestSpecularBSDF_SampleReflectsAboutNormal(t *testing.T) {
	assert := assert.New(t)

	bsdf := SpecularBSDF{}
	rng := mathx.NewRandomSeeded(1)
	outgoing := mathx.NewVec3(0.3, 0, 0.95).Normalized()

	result := bsdf.Sample(outgoing, rng, Params{})

	assert.True(result.Valid)
	assert.Equal(EventSpecularReflection, result.Event)
	assert.Equal(float32(1), result.PDF)
	assert.InDelta(float64(outgoing.Z), float64(result.IncomingDir.Z), 1e-5)
	assert.InDelta(float64(-outgoing.X), float64(result.IncomingDir.X), 1e-5)
}

func TestSpecularBSDF_SampleRejectsGrazingOutgoing(t *testing.T) {
	assert := assert.New(t)

	bsdf := SpecularBSDF{}
	rng := mathx.NewRandomSeeded(1)
	result := bsdf.Sample(mathx.NewVec3(1, 0, 0), rng, Params{})
	assert.False(result.Valid)
}

func TestSpecularBSDF_EvaluateIsAlwaysZero(t *testing.T) {
	assert := assert.New(t)

	bsdf := SpecularBSDF{}
	value, pdf := bsdf.Evaluate(mathx.NewVec3(0, 0, 1), mathx.NewVec3(0, 0, 1), Params{})
	assert.True(value.IsZero())
	assert.Equal(float32(0), pdf)
}
