package sceneobj

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func TestTraversePacketDefault_SkipsInactiveLanes(t *testing.T) {
	assert := assert.New(t)

	s := NewSphere(1, nil)
	var rays [8]mathx.Ray
	var maxDist [8]float32
	var active [8]bool

	rays[0] = mathx.NewRay(mathx.NewVec3(0, 0, -5), mathx.NewVec3(0, 0, 1))
	maxDist[0] = 1e30
	active[0] = true

	rays[1] = mathx.NewRay(mathx.NewVec3(0, 0, -5), mathx.NewVec3(0, 0, 1))
	maxDist[1] = 1e30
	active[1] = false

	hits := s.TraversePacket(rays, maxDist, active)
	assert.True(hits[0].Valid)
	assert.False(hits[1].Valid)
}

func TestStaticTransform_ComputeTransformIsIdentityByDefault(t *testing.T) {
	assert := assert.New(t)

	s := NewSphere(1, nil)
	assert.Equal(mathx.IdentityTransform(), s.ComputeTransform(0))
	assert.Equal(mathx.IdentityTransform().Inverted(), s.ComputeInverseTransform(0))
}
