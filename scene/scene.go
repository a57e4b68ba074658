// Package scene implements the top-level object BVH, environment
// sampling, and shading-data extraction the integrator drives.
// Grounded on original_source/RaytracerLib/Scene/Scene.h/.cpp.
package scene

import (
	"github.com/rayforge/pathtracer/bitmap"
	"github.com/rayforge/pathtracer/bvh"
	"github.com/rayforge/pathtracer/light"
	"github.com/rayforge/pathtracer/material"
	"github.com/rayforge/pathtracer/mathx"
	"github.com/rayforge/pathtracer/sceneobj"
	"github.com/rayforge/pathtracer/traversal"
)

// Environment holds the background color and optional spherical
// texture sampled on a scene miss, matching Scene.h's SceneEnvironment.
type Environment struct {
	BackgroundColor mathx.Vec3
	Texture         *bitmap.Bitmap
}

// Hit is a scene-level intersection: which object was struck, its
// local-space hit record, and the resolved world-space distance. For a
// light-proxy hit, IsLightHit returns the wrapped light.
type Hit struct {
	Distance    float32
	ObjectIndex uint32
	Local       sceneobj.Hit
	Found       bool
}

// ShadingData is the world-space surface frame and material a Hit
// resolves to, matching Rendering/ShadingData.h.
type ShadingData struct {
	Position mathx.Vec3
	Normal   mathx.Vec3
	Tangent  mathx.Vec3
	Binormal mathx.Vec3
	TexCoord mathx.Vec2
	Material *material.Material
}

// Scene owns every scene object (meshes, primitives, and the
// light-proxies Build() inserts for finite lights) plus the lights
// list those proxies are built from.
type Scene struct {
	Objects     []sceneobj.Object
	Lights      []light.Light
	Environment Environment

	bvh *bvh.BVH
}

func NewScene() *Scene {
	return &Scene{Environment: Environment{BackgroundColor: mathx.NewVec3(0, 0, 0)}}
}

func (s *Scene) AddObject(obj sceneobj.Object) {
	s.Objects = append(s.Objects, obj)
}

func (s *Scene) AddLight(l light.Light) {
	s.Lights = append(s.Lights, l)
}

// Build inserts a light-proxy object for every finite light (so primary
// rays can strike an emitter directly, matching Scene::BuildBVH) and
// builds the object BVH over (transformed) object bounding boxes.
func (s *Scene) Build() error {
	for _, l := range s.Lights {
		if l.IsFinite() {
			s.Objects = append(s.Objects, sceneobj.NewLightProxy(l))
		}
	}

	boxes := make([]mathx.Box, len(s.Objects))
	for i, obj := range s.Objects {
		boxes[i] = obj.ComputeTransform(0).TransformBox(obj.BoundingBox())
	}

	if len(boxes) == 0 {
		s.bvh = &bvh.BVH{}
		return nil
	}

	tree, err := bvh.Build(boxes, bvh.DefaultBuildParams())
	if err != nil {
		return err
	}
	s.bvh = tree
	return nil
}

// sceneLeaf adapts Scene to traversal.Leaf, transforming the ray into
// each object's local frame before invoking its own TraverseSingle,
// matching Scene::Traverse_Object_Single.
type sceneLeaf struct {
	scene *Scene
	ray   mathx.Ray
	time  float32
	best  Hit
}

func (l *sceneLeaf) TraverseLeaf(ctx *traversal.SingleContext, node bvh.Node) {
	start := node.FirstChild
	count := node.LeafCount()
	for i := uint32(0); i < count; i++ {
		objectIndex := l.scene.bvh.LeafOrder[start+i]
		obj := l.scene.Objects[objectIndex]

		localRay := transformRayToLocal(obj, l.ray, l.time)
		hit := obj.TraverseSingle(localRay, ctx.MaxDist)
		if !hit.Valid {
			continue
		}
		if hit.Distance < ctx.MaxDist {
			ctx.MaxDist = hit.Distance
			l.best = Hit{Distance: hit.Distance, ObjectIndex: objectIndex, Local: hit, Found: true}
		}
	}
}

func transformRayToLocal(obj sceneobj.Object, ray mathx.Ray, time float32) mathx.Ray {
	inv := obj.ComputeInverseTransform(time)
	origin := inv.TransformPoint(ray.Origin)
	dir := inv.TransformVector(ray.Dir)
	return mathx.Ray{Origin: origin, Dir: dir, InvDir: mathx.Reciprocal(dir)}
}

// Traverse finds the closest hit along ray, bypassing the BVH for the
// trivial 0/1-object cases the same way Scene::Traverse_Single does.
func (s *Scene) Traverse(ray mathx.Ray, maxDist float32, time float32) Hit {
	switch len(s.Objects) {
	case 0:
		return Hit{}
	case 1:
		obj := s.Objects[0]
		localRay := transformRayToLocal(obj, ray, time)
		hit := obj.TraverseSingle(localRay, maxDist)
		if !hit.Valid {
			return Hit{}
		}
		return Hit{Distance: hit.Distance, ObjectIndex: 0, Local: hit, Found: true}
	default:
		leaf := &sceneLeaf{scene: s, ray: ray, time: time}
		ctx := &traversal.SingleContext{Ray: ray, MaxDist: maxDist}
		traversal.TraverseSingle(s.bvh, ctx, leaf)
		return leaf.best
	}
}

// TraverseShadow reports whether any object occludes ray before
// maxDist, short-circuiting on the first hit.
func (s *Scene) TraverseShadow(ray mathx.Ray, maxDist float32, time float32) bool {
	for _, obj := range s.Objects {
		localRay := transformRayToLocal(obj, ray, time)
		if obj.TraverseShadowSingle(localRay, maxDist) {
			return true
		}
	}
	return false
}

// IsLightHit reports whether hit struck a light-proxy object, and
// which light it wraps.
func (s *Scene) IsLightHit(hit Hit) (light.Light, bool) {
	if !hit.Found {
		return nil, false
	}
	proxy, ok := s.Objects[hit.ObjectIndex].(*sceneobj.LightProxy)
	if !ok {
		return nil, false
	}
	return proxy.Light, true
}

// ExtractShadingData resolves hit into world-space shading data,
// matching Scene::ExtractShadingData: position is the world ray
// evaluated at the hit distance (rigid transforms preserve distance),
// while normal/tangent/bitangent are rotated from local to world space.
func (s *Scene) ExtractShadingData(ray mathx.Ray, hit Hit, time float32) ShadingData {
	if !hit.Found {
		return ShadingData{}
	}
	obj := s.Objects[hit.ObjectIndex]
	localRay := transformRayToLocal(obj, ray, time)
	local := obj.EvaluateShadingData(localRay, hit.Local)

	transform := obj.ComputeTransform(time)
	return ShadingData{
		Position: ray.GetAtDistance(hit.Distance),
		Normal:   transform.TransformVector(local.Normal).Normalized(),
		Tangent:  transform.TransformVector(local.Tangent),
		Binormal: transform.TransformVector(local.Binormal),
		TexCoord: local.TexCoord,
		Material: local.Material,
	}
}

// GetBackgroundColor samples the environment on a scene miss, matching
// Scene::GetBackgroundColor: phi = atan2(dir.z, dir.x), theta =
// acos(dir.y), mapped to [0,1]x[0,1] texture coordinates (spec §4.7).
func (s *Scene) GetBackgroundColor(ray mathx.Ray) mathx.Vec3 {
	color := s.Environment.BackgroundColor
	if s.Environment.Texture == nil {
		return color
	}

	uv := environmentUV(ray.Dir)
	sampled, err := s.Environment.Texture.Sample(uv, bitmap.FilterBilinear, true)
	if err != nil {
		return color
	}
	return color.Mul(sampled)
}
