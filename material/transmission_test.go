package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestTransmissionBSDF_SamplePicksReflectOrRefract(t *testing.T) {
	assert := assert.New(t)

	bsdf := TransmissionBSDF{}
	rng := mathx.NewRandomSeeded(9)
	param := Params{IOR: 1.5}
	outgoing := mathx.NewVec3(0, 0, 1)

	sawReflect, sawRefract := false, false
	for i := 0; i < 200; i++ {
		result := bsdf.Sample(outgoing, rng, param)
		if !result.Valid {
			continue
		}
		switch result.Event {
		case EventSpecularReflection:
			sawReflect = true
			assert.Greater(result.IncomingDir.Z, float32(0))
		case EventSpecularTransmission:
			sawRefract = true
			assert.Less(result.IncomingDir.Z, float32(0))
		}
	}
	assert.True(sawReflect)
	assert.True(sawRefract)
}

func TestTransmissionBSDF_RejectsGrazingOutgoing(t *testing.T) {
	assert := assert.New(t)

	bsdf := TransmissionBSDF{}
	rng := mathx.NewRandomSeeded(1)
	result := bsdf.Sample(mathx.NewVec3(1, 0, 0), rng, Params{IOR: 1.5})
	assert.False(result.Valid)
}

func TestFresnelDielectric_NormalIncidenceMatchesSchlickR0(t *testing.T) {
	assert := assert.New(t)

	ior := float32(1.5)
	fr := fresnelDielectric(1, 1/ior)
	r0 := (ior - 1) / (ior + 1)
	r0 *= r0

	assert.InDelta(float64(r0), float64(fr), 1e-4)
}

func TestFresnelDielectric_TotalInternalReflectionReturnsOne(t *testing.T) {
	assert := assert.New(t)

	fr := fresnelDielectric(0.1, 1.5)
	assert.Equal(float32(1), fr)
}
