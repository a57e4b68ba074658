package sceneobj

import (
	"math"

	"github.com/rayforge/pathtracer/material"
	"github.com/rayforge/pathtracer/mathx"
)

// Sphere is a unit-frame analytic sphere, grounded on
// SceneObject_Sphere.cpp. Near and far roots are checked independently
// so a ray starting inside the sphere still resolves to the far root.
type Sphere struct {
	staticTransform
	Radius   float32
	Material *material.Material
}

func NewSphere(radius float32, mat *material.Material) *Sphere {
	return &Sphere{staticTransform: identityTransform(), Radius: radius, Material: mat}
}

func (s *Sphere) BoundingBox() mathx.Box {
	r := mathx.SplatVec3(s.Radius)
	return mathx.Box{Min: r.Neg(), Max: r}
}

func (s *Sphere) intersect(ray mathx.Ray) (near, far float32, hit bool) {
	d := ray.Origin.Neg()
	v := float64(ray.Dir.Dot(d))
	det := float64(s.Radius*s.Radius) - float64(d.Dot(d)) + v*v
	if det <= 0 {
		return 0, 0, false
	}
	sqrtDet := math.Sqrt(det)
	return float32(v - sqrtDet), float32(v + sqrtDet), true
}

func (s *Sphere) TraverseSingle(ray mathx.Ray, maxDist float32) Hit {
	near, far, hit := s.intersect(ray)
	if !hit {
		return Hit{}
	}
	if near > 0 && near < maxDist {
		return Hit{Distance: near, PrimitiveID: 0, Valid: true}
	}
	if far > 0 && far < maxDist {
		return Hit{Distance: far, PrimitiveID: 1, Valid: true}
	}
	return Hit{}
}

func (s *Sphere) TraverseShadowSingle(ray mathx.Ray, maxDist float32) bool {
	return s.TraverseSingle(ray, maxDist).Valid
}

func (s *Sphere) TraversePacket(rays [8]mathx.Ray, maxDist [8]float32, active [8]bool) [8]Hit {
	return traversePacketDefault(s, rays, maxDist, active)
}

func (s *Sphere) EvaluateShadingData(ray mathx.Ray, hit Hit) ShadingData {
	position := ray.GetAtDistance(hit.Distance)
	normal := position.Scale(1 / s.Radius)
	tangent := normal.Cross(mathx.NewVec3(0, 1, 0))
	if tangent.SqrLength() < 1e-10 {
		tangent = mathx.NewVec3(1, 0, 0)
	}
	tangent = tangent.FastNormalized()
	binormal := tangent.Cross(normal).FastNormalized()

	return ShadingData{
		Position: position,
		Normal:   normal.FastNormalized(),
		Tangent:  tangent,
		Binormal: binormal,
		Material: s.Material,
	}
}
