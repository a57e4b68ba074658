// Package meshdata implements the packed triangle-mesh vertex storage
// and its own BVH-accelerated traversal, grounded on
// original_source/RaytracerLib/VertexBuffer.h/.cpp and CPU/CpuMesh.cpp.
package meshdata

import (
	"fmt"

	"github.com/rayforge/pathtracer/material"
	"github.com/rayforge/pathtracer/mathx"
)

// Indices is the three vertex indices of one triangle, the Go analogue
// of VertexIndices.
type Indices struct {
	I0, I1, I2 uint32
}

// VertexBuffer holds one mesh's per-vertex streams and per-triangle
// index/material data. The original packs every stream into one
// allocation with byte offsets and a per-stream format tag to save
// memory on large scenes; Go's slice headers and garbage collector make
// that packing unnecessary, so each stream is a plain typed slice
// instead, while keeping the same stream set and per-triangle material
// indirection spec §3's "vertex buffer" bullet calls out.
type VertexBuffer struct {
	Positions []mathx.Vec3
	Normals   []mathx.Vec3
	Tangents  []mathx.Vec3
	TexCoords []mathx.Vec2

	TriangleIndices []Indices
	MaterialIndices []uint32
	Materials       []*material.Material

	Scale float32
}

// ErrIndexOutOfRange reports a triangle/vertex index beyond the
// buffer's bounds.
var ErrIndexOutOfRange = fmt.Errorf("meshdata: index out of range")

func (vb *VertexBuffer) NumVertices() int  { return len(vb.Positions) }
func (vb *VertexBuffer) NumTriangles() int { return len(vb.TriangleIndices) }

// GetVertexIndices returns the three vertex indices making up
// triangleIndex, matching VertexBuffer::GetVertexIndices.
func (vb *VertexBuffer) GetVertexIndices(triangleIndex uint32) (Indices, error) {
	if int(triangleIndex) >= len(vb.TriangleIndices) {
		return Indices{}, ErrIndexOutOfRange
	}
	return vb.TriangleIndices[triangleIndex], nil
}

// GetMaterial returns the material bound to triangleIndex, or nil if
// the mesh carries no material table or no entry for it. No default is
// substituted; the integrator ends the path at a nil-material hit.
func (vb *VertexBuffer) GetMaterial(triangleIndex uint32) *material.Material {
	if int(triangleIndex) >= len(vb.MaterialIndices) || len(vb.Materials) == 0 {
		return nil
	}
	matIndex := vb.MaterialIndices[triangleIndex]
	if int(matIndex) >= len(vb.Materials) {
		return nil
	}
	return vb.Materials[matIndex]
}

// GetVertexPositions extracts one triangle's mesh-space positions,
// multiplied by Scale the way VertexBufferDesc.scale is applied.
func (vb *VertexBuffer) GetVertexPositions(idx Indices) mathx.Triangle {
	scale := vb.Scale
	if scale == 0 {
		scale = 1
	}
	return mathx.Triangle{
		V0: vb.Positions[idx.I0].Scale(scale),
		V1: vb.Positions[idx.I1].Scale(scale),
		V2: vb.Positions[idx.I2].Scale(scale),
	}
}

// GetVertexNormals extracts one triangle's per-vertex normals. Falls
// back to the geometric face normal on all three vertices if the mesh
// carries no normal stream.
func (vb *VertexBuffer) GetVertexNormals(idx Indices) mathx.Triangle {
	if len(vb.Normals) == 0 {
		n := mathx.TriangleNormal(vb.GetVertexPositions(idx))
		return mathx.Triangle{V0: n, V1: n, V2: n}
	}
	return mathx.Triangle{V0: vb.Normals[idx.I0], V1: vb.Normals[idx.I1], V2: vb.Normals[idx.I2]}
}

// GetVertexTangents extracts one triangle's per-vertex tangents,
// defaulting to a zero vector (Mesh.EvaluateShadingData then derives a
// tangent from the normal alone) when absent.
func (vb *VertexBuffer) GetVertexTangents(idx Indices) mathx.Triangle {
	if len(vb.Tangents) == 0 {
		return mathx.Triangle{}
	}
	return mathx.Triangle{V0: vb.Tangents[idx.I0], V1: vb.Tangents[idx.I1], V2: vb.Tangents[idx.I2]}
}

// GetVertexTexCoords extracts one triangle's per-vertex uv, defaulting
// to zero when the mesh carries no uv stream.
func (vb *VertexBuffer) GetVertexTexCoords(idx Indices) (v0, v1, v2 mathx.Vec2) {
	if len(vb.TexCoords) == 0 {
		return
	}
	return vb.TexCoords[idx.I0], vb.TexCoords[idx.I1], vb.TexCoords[idx.I2]
}
