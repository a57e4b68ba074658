package meshdata

import (
	"github.com/rayforge/pathtracer/bvh"
	"github.com/rayforge/pathtracer/material"
	"github.com/rayforge/pathtracer/mathx"
	"github.com/rayforge/pathtracer/traversal"
)

// Hit is the result of intersecting a ray against a Mesh: the hit
// distance, barycentric u/v, and which triangle was struck. The
// original's MeshIntersectionData equivalent.
type Hit struct {
	Distance float32
	U, V     float32
	Triangle uint32
	Found    bool
}

// ShadingData is the interpolated per-point surface data a hit resolves
// to, in the mesh's local space (the scene transforms it to world
// space), matching CpuMesh::EvaluateShadingData_Single.
type ShadingData struct {
	Position mathx.Vec3
	Normal   mathx.Vec3
	Tangent  mathx.Vec3
	Binormal mathx.Vec3
	TexCoord mathx.Vec2
	Material *material.Material
}

// Mesh owns a VertexBuffer and its own triangle BVH, built once at load
// time. Grounded on CPU/CpuMesh.h/.cpp, generalized to delegate
// traversal to a BVH (spec §4.5's "mesh object delegates everything to
// its mesh's BVH using the generic walkers") instead of the original's
// brute-force/4-wide-SIMD triangle scan.
type Mesh struct {
	VertexBuffer VertexBuffer
	BVH          *bvh.BVH
	DebugName    string
}

// Build constructs the mesh's BVH over its triangle bounding boxes. Must
// be called once after populating VertexBuffer.
func (m *Mesh) Build() error {
	boxes := make([]mathx.Box, m.VertexBuffer.NumTriangles())
	for i := range boxes {
		idx, err := m.VertexBuffer.GetVertexIndices(uint32(i))
		if err != nil {
			return err
		}
		tri := m.VertexBuffer.GetVertexPositions(idx)
		box := mathx.EmptyBox()
		box = box.ExtendPoint(tri.V0)
		box = box.ExtendPoint(tri.V1)
		box = box.ExtendPoint(tri.V2)
		boxes[i] = box
	}

	tree, err := bvh.Build(boxes, bvh.DefaultBuildParams())
	if err != nil {
		return err
	}
	m.BVH = tree
	return nil
}

// meshLeaf adapts Mesh to traversal.Leaf, testing every triangle in a
// leaf node and keeping the closest hit.
type meshLeaf struct {
	mesh *Mesh
	ray  mathx.Ray
	best Hit
}

func (l *meshLeaf) TraverseLeaf(ctx *traversal.SingleContext, node bvh.Node) {
	start := node.FirstChild
	count := node.LeafCount()
	for i := uint32(0); i < count; i++ {
		triIndex := l.mesh.BVH.LeafOrder[start+i]
		idx, err := l.mesh.VertexBuffer.GetVertexIndices(triIndex)
		if err != nil {
			continue
		}
		tri := l.mesh.VertexBuffer.GetVertexPositions(idx)

		ctx.Counters.RayTriangleTests++
		dist, u, v, hit := mathx.IntersectRayTriangle(l.ray, tri, ctx.MaxDist)
		if !hit {
			continue
		}
		ctx.Counters.PassedRayTriangleTests++
		if dist < ctx.MaxDist {
			ctx.MaxDist = dist
			l.best = Hit{Distance: dist, U: u, V: v, Triangle: triIndex, Found: true}
		}
	}
}

// Intersect walks the mesh's BVH with ray, returning the closest hit
// within [0, maxDistance].
func (m *Mesh) Intersect(ray mathx.Ray, maxDistance float32) Hit {
	leaf := &meshLeaf{mesh: m, ray: ray}
	ctx := &traversal.SingleContext{Ray: ray, MaxDist: maxDistance}
	traversal.TraverseSingle(m.BVH, ctx, leaf)
	return leaf.best
}

// EvaluateShadingData interpolates the tangent frame, uv, and material
// for hit, matching CpuMesh::EvaluateShadingData_Single.
func (m *Mesh) EvaluateShadingData(ray mathx.Ray, hit Hit) ShadingData {
	idx, err := m.VertexBuffer.GetVertexIndices(hit.Triangle)
	if err != nil {
		return ShadingData{}
	}

	normals := m.VertexBuffer.GetVertexNormals(idx)
	tangents := m.VertexBuffer.GetVertexTangents(idx)
	uv0, uv1, uv2 := m.VertexBuffer.GetVertexTexCoords(idx)

	c1 := hit.U
	c2 := hit.V
	c0 := 1 - c1 - c2

	normal := normals.V0.Scale(c0).Add(normals.V1.Scale(c1)).Add(normals.V2.Scale(c2)).FastNormalized()
	tangent := tangents.V0.Scale(c0).Add(tangents.V1.Scale(c1)).Add(tangents.V2.Scale(c2))
	if tangent.SqrLength() > 1e-12 {
		tangent = tangent.FastNormalized()
	} else {
		tangent = arbitraryTangent(normal)
	}
	binormal := tangent.Cross(normal).FastNormalized()

	texCoord := mathx.Vec2{
		X: uv0.X*c0 + uv1.X*c1 + uv2.X*c2,
		Y: uv0.Y*c0 + uv1.Y*c1 + uv2.Y*c2,
	}

	return ShadingData{
		Position: ray.GetAtDistance(hit.Distance),
		Normal:   normal,
		Tangent:  tangent,
		Binormal: binormal,
		TexCoord: texCoord,
		Material: m.VertexBuffer.GetMaterial(hit.Triangle),
	}
}

// arbitraryTangent picks a tangent perpendicular to normal when the
// mesh carries no tangent stream.
func arbitraryTangent(normal mathx.Vec3) mathx.Vec3 {
	up := mathx.NewVec3(0, 1, 0)
	if absf32(normal.Y) > 0.99 {
		up = mathx.NewVec3(1, 0, 0)
	}
	return up.Cross(normal).FastNormalized()
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
