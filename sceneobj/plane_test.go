package sceneobj

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestPlane_TraverseSingleHitsFromAbove(t *testing.T) {
	assert := assert.New(t)

	p := NewPlane(mathx.Vec2{X: 1, Y: 1}, nil)
	ray := mathx.NewRay(mathx.NewVec3(0, 5, 0), mathx.NewVec3(0, -1, 0))

	hit := p.TraverseSingle(ray, 1e30)
	assert.True(hit.Valid)
	assert.InDelta(5.0, float64(hit.Distance), 1e-4)
}

func TestPlane_TraverseSingleParallelMisses(t *testing.T) {
	assert := assert.New(t)

	p := NewPlane(mathx.Vec2{X: 1, Y: 1}, nil)
	ray := mathx.NewRay(mathx.NewVec3(0, 5, 0), mathx.NewVec3(1, 0, 0))

	hit := p.TraverseSingle(ray, 1e30)
	assert.False(hit.Valid)
}

func TestPlane_EvaluateShadingDataUsesWorldXZ(t *testing.T) {
	assert := assert.New(t)

	p := NewPlane(mathx.Vec2{X: 2, Y: 3}, nil)
	ray := mathx.NewRay(mathx.NewVec3(4, 5, 6), mathx.NewVec3(0, -1, 0))
	hit := p.TraverseSingle(ray, 1e30)
	assert.True(hit.Valid)

	sd := p.EvaluateShadingData(ray, hit)
	assert.Equal(mathx.NewVec3(0, 1, 0), sd.Normal)
	assert.InDelta(8.0, float64(sd.TexCoord.X), 1e-4)
	assert.InDelta(18.0, float64(sd.TexCoord.Y), 1e-4)
}

func TestPlane_BoundingBoxIsFull(t *testing.T) {
	assert := assert.New(t)

	p := NewPlane(mathx.Vec2{}, nil)
	assert.Equal(mathx.FullBox(), p.BoundingBox())
}
