package meshdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func buildSingleTriangleMesh(t *testing.T) *Mesh {
	t.Helper()
	m := &Mesh{
		VertexBuffer: VertexBuffer{
			Positions: []mathx.Vec3{
				mathx.NewVec3(-1, -1, 0),
				mathx.NewVec3(1, -1, 0),
				mathx.NewVec3(0, 1, 0),
			},
			Scale:           1,
			TriangleIndices: []Indices{{I0: 0, I1: 1, I2: 2}},
		},
	}
	assert.NoError(t, m.Build())
	return m
}

func TestMesh_IntersectHitsTriangle(t *testing.T) {
	assert := assert.New(t)

	m := buildSingleTriangleMesh(t)
	ray := mathx.NewRay(mathx.NewVec3(0, 0, -10), mathx.NewVec3(0, 0, 1))

	hit := m.Intersect(ray, 1e30)
	assert.True(hit.Found)
	assert.InDelta(10.0, float64(hit.Distance), 1e-3)
}

func TestMesh_IntersectMissesOutsideTriangle(t *testing.T) {
	assert := assert.New(t)

	m := buildSingleTriangleMesh(t)
	ray := mathx.NewRay(mathx.NewVec3(5, 5, -10), mathx.NewVec3(0, 0, 1))

	hit := m.Intersect(ray, 1e30)
	assert.False(hit.Found)
}

func TestMesh_EvaluateShadingDataInterpolatesPosition(t *testing.T) {
	assert := assert.New(t)

	m := buildSingleTriangleMesh(t)
	ray := mathx.NewRay(mathx.NewVec3(0, 0, -10), mathx.NewVec3(0, 0, 1))
	hit := m.Intersect(ray, 1e30)
	assert.True(hit.Found)

	shading := m.EvaluateShadingData(ray, hit)
	assert.InDelta(0.0, float64(shading.Position.Z), 1e-3)
	assert.InDelta(1.0, float64(shading.Normal.Length()), 1e-3)
}
