package sceneobj

import (
	"github.com/rayforge/pathtracer/material"
	"github.com/rayforge/pathtracer/mathx"
)

// Plane is the infinite y=0 plane; texture coordinates are the
// world-space xz position scaled by TexScale. Grounded on
// SceneObject_Plane.cpp.
type Plane struct {
	staticTransform
	TexScale mathx.Vec2
	Material *material.Material
}

func NewPlane(texScale mathx.Vec2, mat *material.Material) *Plane {
	return &Plane{staticTransform: identityTransform(), TexScale: texScale, Material: mat}
}

func (p *Plane) BoundingBox() mathx.Box {
	return mathx.FullBox()
}

func (p *Plane) TraverseSingle(ray mathx.Ray, maxDist float32) Hit {
	if absf(ray.Dir.Y) <= mathx.Epsilon {
		return Hit{}
	}
	t := -ray.Origin.Y * ray.InvDir.Y
	if t > 0 && t < maxDist {
		return Hit{Distance: t, Valid: true}
	}
	return Hit{}
}

func (p *Plane) TraverseShadowSingle(ray mathx.Ray, maxDist float32) bool {
	return p.TraverseSingle(ray, maxDist).Valid
}

func (p *Plane) TraversePacket(rays [8]mathx.Ray, maxDist [8]float32, active [8]bool) [8]Hit {
	return traversePacketDefault(p, rays, maxDist, active)
}

func (p *Plane) EvaluateShadingData(ray mathx.Ray, hit Hit) ShadingData {
	position := ray.GetAtDistance(hit.Distance)
	return ShadingData{
		Position: position,
		Normal:   mathx.NewVec3(0, 1, 0),
		Tangent:  mathx.NewVec3(1, 0, 0),
		Binormal: mathx.NewVec3(1, 0, 0).Cross(mathx.NewVec3(0, 1, 0)).FastNormalized(),
		TexCoord: mathx.Vec2{X: position.X * p.TexScale.X, Y: position.Z * p.TexScale.Y},
		Material: p.Material,
	}
}
