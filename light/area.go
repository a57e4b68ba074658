package light

import "github.com/rayforge/pathtracer/mathx"

// AreaLight is a flat emitter defined by an origin and two edges: a
// triangle if Triangle is set, otherwise a parallelogram (quad).
// Grounded on AreaLight in Scene/Light.cpp.
type AreaLight struct {
	Origin   mathx.Vec3
	Edge0    mathx.Vec3
	Edge1    mathx.Vec3
	Color    mathx.Vec3
	Triangle bool

	invArea float32
}

// NewAreaLight precomputes the inverse surface area the way AreaLight's
// constructor does, halving the parallelogram area for a triangle.
func NewAreaLight(origin, edge0, edge1, color mathx.Vec3, isTriangle bool) *AreaLight {
	area := edge0.Cross(edge1).Length()
	if isTriangle {
		area *= 0.5
	}
	invArea := float32(0)
	if area > 0 {
		invArea = 1 / area
	}
	return &AreaLight{Origin: origin, Edge0: edge0, Edge1: edge1, Color: color, Triangle: isTriangle, invArea: invArea}
}

func (l *AreaLight) normal() mathx.Vec3 {
	return l.Edge1.Cross(l.Edge0).Normalized()
}

func (l *AreaLight) Illuminate(scenePoint mathx.Vec3, rng *mathx.Random) Sample {
	var u, v float32
	if l.Triangle {
		u, v = rng.GetTriangle()
	} else {
		uv := rng.GetVector2()
		u, v = uv.X, uv.Y
	}
	lightPoint := l.Origin.Add(l.Edge0.Scale(u)).Add(l.Edge1.Scale(v))

	toLight := lightPoint.Sub(scenePoint)
	sqrDistance := toLight.SqrLength()
	distance := toLight.Length()
	if distance <= 0 {
		return Sample{}
	}
	dir := toLight.Scale(1 / distance)

	normal := l.normal()
	cosNormalDir := normal.Dot(dir.Neg())
	if cosNormalDir < mathx.Epsilon {
		return Sample{}
	}

	return Sample{
		DirectionToLight: dir,
		Distance:         distance,
		DirectPdfW:       l.invArea * sqrDistance / cosNormalDir,
		Radiance:         l.Color,
		Valid:            true,
	}
}

func (l *AreaLight) TestRayHit(ray mathx.Ray) (float32, bool) {
	if dist, _, _, hit := mathx.IntersectRayTriangle(ray, mathx.Triangle{V0: l.Origin, V1: l.Origin.Add(l.Edge0), V2: l.Origin.Add(l.Edge1)}, 1e30); hit {
		return dist, true
	}
	if l.Triangle {
		return 0, false
	}

	opposite := l.Origin.Add(l.Edge0).Add(l.Edge1)
	tri := mathx.Triangle{V0: opposite, V1: opposite.Sub(l.Edge0), V2: opposite.Sub(l.Edge1)}
	if dist, _, _, hit := mathx.IntersectRayTriangle(ray, tri, 1e30); hit {
		return dist, true
	}
	return 0, false
}

func (l *AreaLight) GetRadiance(rayDirection, hitPoint mathx.Vec3) (mathx.Vec3, float32) {
	normal := l.normal()
	cosNormalDir := normal.Dot(rayDirection.Neg())
	if cosNormalDir < mathx.Epsilon {
		return mathx.Vec3{}, 0
	}
	return l.Color, l.invArea
}

func (l *AreaLight) IsFinite() bool { return true }
func (l *AreaLight) IsDelta() bool  { return false }

func (l *AreaLight) BoundingBox() mathx.Box {
	box := mathx.EmptyBox()
	box = box.ExtendPoint(l.Origin)
	box = box.ExtendPoint(l.Origin.Add(l.Edge0))
	box = box.ExtendPoint(l.Origin.Add(l.Edge1))
	if !l.Triangle {
		box = box.ExtendPoint(l.Origin.Add(l.Edge0).Add(l.Edge1))
	}
	return box
}
