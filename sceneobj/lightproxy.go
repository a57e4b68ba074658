package sceneobj

import (
	"github.com/rayforge/pathtracer/light"
	"github.com/rayforge/pathtracer/mathx"
)

// LightProxy wraps a finite light so the scene BVH can route primary
// rays onto the light's own surface; a hit always reports
// LightObjectPrimitiveID so shading skips BSDF evaluation and routes
// straight to the light's GetRadiance (spec §4.5).
type LightProxy struct {
	staticTransform
	Light light.Light
}

func NewLightProxy(l light.Light) *LightProxy {
	return &LightProxy{staticTransform: identityTransform(), Light: l}
}

func (p *LightProxy) BoundingBox() mathx.Box {
	return p.Light.BoundingBox()
}

func (p *LightProxy) TraverseSingle(ray mathx.Ray, maxDist float32) Hit {
	dist, hit := p.Light.TestRayHit(ray)
	if !hit || dist <= 0 || dist >= maxDist {
		return Hit{}
	}
	return Hit{Distance: dist, PrimitiveID: LightObjectPrimitiveID, Valid: true}
}

func (p *LightProxy) TraverseShadowSingle(ray mathx.Ray, maxDist float32) bool {
	return p.TraverseSingle(ray, maxDist).Valid
}

func (p *LightProxy) TraversePacket(rays [8]mathx.Ray, maxDist [8]float32, active [8]bool) [8]Hit {
	return traversePacketDefault(p, rays, maxDist, active)
}

func (p *LightProxy) EvaluateShadingData(ray mathx.Ray, hit Hit) ShadingData {
	position := ray.GetAtDistance(hit.Distance)
	return ShadingData{
		Position: position,
		Normal:   ray.Dir.Neg(),
	}
}
