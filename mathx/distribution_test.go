package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistribution1D_SampleDiscreteFavorsLargerWeights(t *testing.T) {
	assert := assert.New(t)

	d := NewDistribution1D([]float32{0, 0, 1, 0})
	index, pdf := d.SampleDiscrete(0.9)
	assert.Equal(2, index)
	assert.Greater(pdf, float32(0))
}

func TestDistribution1D_UniformWeightsGiveUniformPDF(t *testing.T) {
	assert := assert.New(t)

	d := NewDistribution1D([]float32{1, 1, 1, 1})
	for _, u := range []float32{0.01, 0.3, 0.6, 0.99} {
		_, pdf := d.SampleDiscrete(u)
		assert.InDelta(1.0, float64(pdf), 1e-4)
	}
}

func TestDistribution1D_AllZeroWeightsStillSamples(t *testing.T) {
	assert := assert.New(t)

	d := NewDistribution1D([]float32{0, 0, 0})
	index, pdf := d.SampleDiscrete(0.5)
	assert.GreaterOrEqual(index, 0)
	assert.Less(index, 3)
	assert.Greater(pdf, float32(0))
}

func TestDistribution1D_ContinuousStaysInRange(t *testing.T) {
	assert := assert.New(t)

	d := NewDistribution1D([]float32{1, 2, 3, 4})
	value, pdf, index := d.Continuous(0.42)
	assert.GreaterOrEqual(value, float32(0))
	assert.Less(value, float32(1))
	assert.Greater(pdf, float32(0))
	assert.GreaterOrEqual(index, 0)
	assert.Less(index, 4)
}
