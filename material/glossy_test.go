package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestGlossyBSDF_LowRoughnessFallsBackToSpecular(t *testing.T) {
	assert := assert.New(t)

	bsdf := GlossyBSDF{}
	rng := mathx.NewRandomSeeded(5)
	param := Params{Roughness: 0.001}
	outgoing := mathx.NewVec3(0, 0, 1)

	result := bsdf.Sample(outgoing, rng, param)

	assert.True(result.Valid)
	assert.Equal(EventSpecularReflection, result.Event)
	assert.Equal(float32(1), result.PDF)
}

func TestGlossyBSDF_SampleProducesUpperHemisphereDirections(t *testing.T) {
	assert := assert.New(t)

	bsdf := GlossyBSDF{}
	rng := mathx.NewRandomSeeded(11)
	param := Params{Roughness: 0.5}
	outgoing := mathx.NewVec3(0, 0, 1)

	hits := 0
	for i := 0; i < 200; i++ {
		result := bsdf.Sample(outgoing, rng, param)
		if !result.Valid {
			continue
		}
		hits++
		assert.GreaterOrEqual(result.IncomingDir.Z, float32(0))
		assert.Greater(result.PDF, float32(0))
	}
	assert.Greater(hits, 0)
}

func TestGlossyBSDF_EvaluateRejectsLowRoughness(t *testing.T) {
	assert := assert.New(t)

	bsdf := GlossyBSDF{}
	param := Params{Roughness: 0.001}
	value, pdf := bsdf.Evaluate(mathx.NewVec3(0, 0, 1), mathx.NewVec3(0, 0, 1), param)
	assert.True(value.IsZero())
	assert.Equal(float32(0), pdf)
}

func TestGlossyBSDF_EvaluateIsNonNegative(t *testing.T) {
	assert := assert.New(t)

	bsdf := GlossyBSDF{}
	param := Params{Roughness: 0.6}
	outgoing := mathx.NewVec3(0.1, 0, 0.99).Normalized()
	incoming := mathx.NewVec3(-0.1, 0.05, 0.99).Normalized()

	value, pdf := bsdf.Evaluate(outgoing, incoming, param)
	assert.GreaterOrEqual(value.X, float32(0))
	assert.GreaterOrEqual(pdf, float32(0))
}
