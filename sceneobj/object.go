// Package sceneobj implements the scene object variants the top-level
// scene BVH routes rays into: sphere, box, plane, mesh (delegating to
// its own BVH), and light-proxy. Grounded on
// original_source/RaytracerLib/Scene/Object/SceneObject_{Sphere,Box,
// Plane,Mesh}.cpp and Scene/SceneObject.h.
package sceneobj

import (
	"github.com/rayforge/pathtracer/material"
	"github.com/rayforge/pathtracer/mathx"
)

// LightObjectPrimitiveID is RT_LIGHT_OBJECT: the primitive id sentinel
// a light-proxy hit reports so shading can skip BSDF evaluation and
// route straight to the light's own radiance (spec §4.5).
const LightObjectPrimitiveID = ^uint32(0)

// Hit is a single object's local-space intersection result. BaryU/V
// carry the mesh triangle's barycentric coordinates; other object
// types leave them zero.
type Hit struct {
	Distance    float32
	SubObjectID uint32
	PrimitiveID uint32
	BaryU       float32
	BaryV       float32
	Valid       bool
}

// ShadingData is the object-local shading frame and material a Hit
// resolves to; the scene transforms it into world space afterwards.
type ShadingData struct {
	Position mathx.Vec3
	Normal   mathx.Vec3
	Tangent  mathx.Vec3
	Binormal mathx.Vec3
	TexCoord mathx.Vec2
	Material *material.Material
}

// Object is implemented by every scene-object variant. All four
// traversal entry points the spec describes (Single, Shadow_Single,
// Simd8, Packet) are represented: TraverseSingle/TraverseShadowSingle
// are the primitive's own math, while TraversePacket has a single
// shared default (traversePacketDefault) that loops active lanes
// through TraverseSingle -- a generalization of the original's
// per-object Simd8/Packet entry points, which for the non-mesh
// primitives are empty "// TODO" stubs in the source.
type Object interface {
	BoundingBox() mathx.Box
	ComputeTransform(t float32) mathx.Transform
	ComputeInverseTransform(t float32) mathx.Transform

	TraverseSingle(ray mathx.Ray, maxDist float32) Hit
	TraverseShadowSingle(ray mathx.Ray, maxDist float32) bool
	TraversePacket(rays [8]mathx.Ray, maxDist [8]float32, active [8]bool) [8]Hit

	EvaluateShadingData(ray mathx.Ray, hit Hit) ShadingData
}

// traversePacketDefault loops the eight lanes of a packet through a
// primitive's own TraverseSingle, the software substitute for the
// original's unfinished Traverse_Simd8/Traverse_Packet entry points.
func traversePacketDefault(obj Object, rays [8]mathx.Ray, maxDist [8]float32, active [8]bool) [8]Hit {
	var hits [8]Hit
	for i := 0; i < 8; i++ {
		if !active[i] {
			continue
		}
		hits[i] = obj.TraverseSingle(rays[i], maxDist[i])
	}
	return hits
}

// staticTransform is embedded by objects that don't animate (no
// recorded start/end keyframe), returning the identity for both
// ComputeTransform and ComputeInverseTransform.
type staticTransform struct {
	Transform mathx.Transform
}

func (s staticTransform) ComputeTransform(t float32) mathx.Transform {
	return s.Transform
}

func (s staticTransform) ComputeInverseTransform(t float32) mathx.Transform {
	return s.Transform.Inverted()
}

// identityTransform gives every scene-object constructor an explicit
// identity starting pose. A bare zero-value staticTransform happens to
// transform vectors the same way (its zero quaternion's imaginary part
// is zero, so TransformVector is a no-op either way), but Compose and
// Inverted do read W, so relying on that coincidence would silently
// break the first time a constructed object's Transform is composed
// with another. Callers reposition an object with `obj.Transform =
// mathx.NewTransform(position, rotation)` after construction.
func identityTransform() staticTransform {
	return staticTransform{Transform: mathx.IdentityTransform()}
}
