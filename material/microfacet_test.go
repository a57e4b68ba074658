package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestMicrofacet_DPeaksAtNormalIncidence(t *testing.T) {
	assert := assert.New(t)

	mf := NewMicrofacet(0.3)
	dNormal := mf.D(mathx.NewVec3(0, 0, 1))
	dGrazing := mf.D(mathx.NewVec3(0.9, 0, 0.436))

	assert.Greater(dNormal, dGrazing)
}

func TestMicrofacet_G1IsOneAtNormalIncidence(t *testing.T) {
	assert := assert.New(t)

	mf := NewMicrofacet(0.3)
	assert.InDelta(1.0, float64(mf.G1(1)), 1e-5)
}

func TestMicrofacet_G1IsBoundedByOne(t *testing.T) {
	assert := assert.New(t)

	mf := NewMicrofacet(0.6)
	for _, nDotX := range []float32{0.1, 0.3, 0.5, 0.8, 1.0} {
		g1 := mf.G1(nDotX)
		assert.GreaterOrEqual(g1, float32(0))
		assert.LessOrEqual(g1, float32(1))
	}
}

func TestMicrofacet_SampleStaysInUpperHemisphere(t *testing.T) {
	assert := assert.New(t)

	mf := NewMicrofacet(0.4)
	rng := mathx.NewRandomSeeded(7)
	for i := 0; i < 50; i++ {
		m := mf.Sample(rng.GetVector2())
		assert.GreaterOrEqual(m.Z, float32(0))
		assert.InDelta(1.0, float64(m.Length()), 0.1)
	}
}

func TestMicrofacet_PdfIsNonNegative(t *testing.T) {
	assert := assert.New(t)

	mf := NewMicrofacet(0.25)
	rng := mathx.NewRandomSeeded(3)
	for i := 0; i < 50; i++ {
		m := mf.Sample(rng.GetVector2())
		assert.GreaterOrEqual(mf.Pdf(m), float32(0))
	}
}
