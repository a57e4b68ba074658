package sceneobj

import (
	"github.com/rayforge/pathtracer/mathx"
	"github.com/rayforge/pathtracer/meshdata"
)

// Mesh delegates entirely to its mesh's own BVH using the generic
// traversal walkers, matching spec §4.5's "Mesh object delegates
// everything to its mesh's BVH using the generic walkers."
type Mesh struct {
	staticTransform
	MeshData *meshdata.Mesh
}

func NewMesh(data *meshdata.Mesh) *Mesh {
	return &Mesh{staticTransform: identityTransform(), MeshData: data}
}

func (m *Mesh) BoundingBox() mathx.Box {
	if m.MeshData == nil || m.MeshData.BVH == nil || m.MeshData.BVH.Empty() {
		return mathx.EmptyBox()
	}
	return m.MeshData.BVH.Root().Box()
}

func (m *Mesh) TraverseSingle(ray mathx.Ray, maxDist float32) Hit {
	hit := m.MeshData.Intersect(ray, maxDist)
	if !hit.Found {
		return Hit{}
	}
	return Hit{Distance: hit.Distance, PrimitiveID: hit.Triangle, BaryU: hit.U, BaryV: hit.V, Valid: true}
}

func (m *Mesh) TraverseShadowSingle(ray mathx.Ray, maxDist float32) bool {
	return m.TraverseSingle(ray, maxDist).Valid
}

func (m *Mesh) TraversePacket(rays [8]mathx.Ray, maxDist [8]float32, active [8]bool) [8]Hit {
	return traversePacketDefault(m, rays, maxDist, active)
}

func (m *Mesh) EvaluateShadingData(ray mathx.Ray, hit Hit) ShadingData {
	meshHit := meshdata.Hit{Distance: hit.Distance, Triangle: hit.PrimitiveID, U: hit.BaryU, V: hit.BaryV, Found: true}
	sd := m.MeshData.EvaluateShadingData(ray, meshHit)
	return ShadingData{
		Position: sd.Position,
		Normal:   sd.Normal,
		Tangent:  sd.Tangent,
		Binormal: sd.Binormal,
		TexCoord: sd.TexCoord,
		Material: sd.Material,
	}
}
