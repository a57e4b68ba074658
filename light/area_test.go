package light

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestNewAreaLight_TriangleHalvesQuadArea(t *testing.T) {
	assert := assert.New(t)

	edge0 := mathx.NewVec3(2, 0, 0)
	edge1 := mathx.NewVec3(0, 2, 0)

	quad := NewAreaLight(mathx.NewVec3(0, 0, 0), edge0, edge1, mathx.NewVec3(1, 1, 1), false)
	tri := NewAreaLight(mathx.NewVec3(0, 0, 0), edge0, edge1, mathx.NewVec3(1, 1, 1), true)

	assert.InDelta(float64(quad.invArea)*2, float64(tri.invArea), 1e-4)
}

func TestAreaLight_IlluminateFacesNormalDirection(t *testing.T) {
	assert := assert.New(t)

	l := NewAreaLight(
		mathx.NewVec3(-1, 0, -1),
		mathx.NewVec3(2, 0, 0),
		mathx.NewVec3(0, 0, 2),
		mathx.NewVec3(1, 1, 1),
		false,
	)
	rng := mathx.NewRandomSeeded(1)

	sample := l.Illuminate(mathx.NewVec3(0, 5, 0), rng)
	assert.True(sample.Valid)
	assert.Greater(sample.DirectPdfW, float32(0))
}

func TestAreaLight_TestRayHitOnTriangle(t *testing.T) {
	assert := assert.New(t)

	l := NewAreaLight(
		mathx.NewVec3(-1, 0, -1),
		mathx.NewVec3(2, 0, 0),
		mathx.NewVec3(0, 0, 2),
		mathx.NewVec3(1, 1, 1),
		true,
	)
	ray := mathx.NewRay(mathx.NewVec3(0, 5, 0), mathx.NewVec3(0, -1, 0))

	_, hit := l.TestRayHit(ray)
	assert.True(hit)
}

func TestAreaLight_TestRayHitMisses(t *testing.T) {
	assert := assert.New(t)

	l := NewAreaLight(
		mathx.NewVec3(-1, 0, -1),
		mathx.NewVec3(2, 0, 0),
		mathx.NewVec3(0, 0, 2),
		mathx.NewVec3(1, 1, 1),
		true,
	)
	ray := mathx.NewRay(mathx.NewVec3(100, 5, 100), mathx.NewVec3(0, -1, 0))

	_, hit := l.TestRayHit(ray)
	assert.False(hit)
}

func TestAreaLight_IsNotDeltaButIsFinite(t *testing.T) {
	assert := assert.New(t)

	l := &AreaLight{}
	assert.False(l.IsDelta())
	assert.True(l.IsFinite())
}

func TestAreaLight_GetRadianceRejectsBackfacingRay(t *testing.T) {
	assert := assert.New(t)

	l := NewAreaLight(
		mathx.NewVec3(-1, 0, -1),
		mathx.NewVec3(2, 0, 0),
		mathx.NewVec3(0, 0, 2),
		mathx.NewVec3(1, 1, 1),
		false,
	)
	radiance, pdf := l.GetRadiance(mathx.NewVec3(0, 1, 0), mathx.NewVec3(0, 0, 0))
	assert.True(radiance.IsZero())
	assert.Equal(float32(0), pdf)
}

func TestAreaLight_BoundingBoxUnionsQuadCorners(t *testing.T) {
	assert := assert.New(t)

	l := NewAreaLight(
		mathx.NewVec3(-1, 0, -1),
		mathx.NewVec3(2, 0, 0),
		mathx.NewVec3(0, 0, 2),
		mathx.NewVec3(1, 1, 1),
		false,
	)
	box := l.BoundingBox()
	assert.Equal(float32(-1), box.Min.X)
	assert.Equal(float32(1), box.Max.X)
	assert.Equal(float32(-1), box.Min.Z)
	assert.Equal(float32(1), box.Max.Z)
}

func TestAreaLight_BoundingBoxTriangleSkipsOppositeCorner(t *testing.T) {
	assert := assert.New(t)

	l := NewAreaLight(
		mathx.NewVec3(0, 0, 0),
		mathx.NewVec3(2, 0, 0),
		mathx.NewVec3(0, 0, 2),
		mathx.NewVec3(1, 1, 1),
		true,
	)
	box := l.BoundingBox()
	assert.Equal(float32(2), box.Max.X)
	assert.Equal(float32(2), box.Max.Z)
}
