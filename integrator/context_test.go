package integrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext_SeedsDeterministicRandom(t *testing.T) {
	assert := assert.New(t)

	a := NewContext(DefaultParams(), 123)
	b := NewContext(DefaultParams(), 123)

	assert.Equal(a.Random.GetFloat(), b.Random.GetFloat())
}

func TestDefaultParams_HasPositiveMaxDepth(t *testing.T) {
	assert := assert.New(t)

	assert.Greater(DefaultParams().MaxDepth, 0)
}
