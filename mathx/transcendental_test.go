package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastSin_MatchesMathSinOutsidePrincipalRange(t *testing.T) {
	assert := assert.New(t)

	for _, x := range []float32{0, 1, 2, 3, -3, float32(math.Pi) + 0.1, 2 * float32(math.Pi), -5, 7, 100} {
		want := math.Sin(float64(x))
		got := FastSin(x)
		assert.InDelta(want, float64(got), 5e-3, "x=%v", x)
	}
}

func TestFastCos_MatchesMathCosOutsidePrincipalRange(t *testing.T) {
	assert := assert.New(t)

	for _, x := range []float32{0, 1, 2, 3, -3, float32(math.Pi) + 0.1, 2 * float32(math.Pi), -5, 7, 100} {
		want := math.Cos(float64(x))
		got := FastCos(x)
		assert.InDelta(want, float64(got), 5e-3, "x=%v", x)
	}
}
