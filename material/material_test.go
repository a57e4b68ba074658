package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestNewDefault_IsDiffuseWhite(t *testing.T) {
	assert := assert.New(t)

	mat := NewDefault()
	assert.Len(mat.Contributions, 1)
	assert.Equal(float32(1), mat.IOR)
}

func TestMaterial_ResolveWithoutTexturesReturnsScalars(t *testing.T) {
	assert := assert.New(t)

	mat := &Material{
		BaseColor: mathx.NewVec3(0.2, 0.4, 0.6),
		Roughness: 0.7,
		Metallic:  0.1,
		IOR:       1.33,
	}

	param, err := mat.Resolve(mathx.Vec2{X: 0.5, Y: 0.5})
	assert.NoError(err)
	assert.Equal(mat.BaseColor, param.BaseColor)
	assert.Equal(float32(0.7), param.Roughness)
	assert.Equal(float32(1.33), param.IOR)
}

func TestMaterial_ResolveDefaultsIORToOne(t *testing.T) {
	assert := assert.New(t)

	mat := &Material{BaseColor: mathx.NewVec3(1, 1, 1)}
	param, err := mat.Resolve(mathx.Vec2{})
	assert.NoError(err)
	assert.Equal(float32(1), param.IOR)
}

func TestMaterial_SampleBSDFSingleContributionDelegatesDirectly(t *testing.T) {
	assert := assert.New(t)

	mat := NewDefault()
	rng := mathx.NewRandomSeeded(2)
	param, _ := mat.Resolve(mathx.Vec2{})

	result := mat.SampleBSDF(mathx.NewVec3(0, 0, 1), rng, param)
	assert.True(result.Valid)
	assert.Equal(EventDiffuseReflection, result.Event)
}

func TestMaterial_SampleBSDFEmptyContributionsIsInvalid(t *testing.T) {
	assert := assert.New(t)

	mat := &Material{}
	rng := mathx.NewRandomSeeded(2)
	result := mat.SampleBSDF(mathx.NewVec3(0, 0, 1), rng, Params{})
	assert.False(result.Valid)
}

func TestMaterial_SampleBSDFWeightedPickHonorsBothLobes(t *testing.T) {
	assert := assert.New(t)

	mat := &Material{
		BaseColor: mathx.NewVec3(1, 1, 1),
		Roughness: 1,
		IOR:       1,
		Contributions: []Contribution{
			{BSDF: DiffuseBSDF{}, Weight: 0.5},
			{BSDF: SpecularBSDF{}, Weight: 0.5},
		},
	}
	rng := mathx.NewRandomSeeded(3)
	param, _ := mat.Resolve(mathx.Vec2{})

	outgoing := mathx.NewVec3(0, 0, 1)
	sawDiffuse, sawSpecular := false, false
	for i := 0; i < 200; i++ {
		result := mat.SampleBSDF(outgoing, rng, param)
		if !result.Valid {
			continue
		}
		switch result.Event {
		case EventDiffuseReflection:
			sawDiffuse = true
			// DiffuseBSDF's own weight is BaseColor; a 0.5 selection
			// probability must divide it back out to stay unbiased.
			assert.InDelta(float64(param.BaseColor.X/0.5), float64(result.Weight.X), 1e-4)
		case EventSpecularReflection:
			sawSpecular = true
			assert.InDelta(float64(1/outgoing.Z/0.5), float64(result.Weight.X), 1e-4)
		}
	}
	assert.True(sawDiffuse)
	assert.True(sawSpecular)
}
