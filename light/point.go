package light

import (
	"math"

	"github.com/rayforge/pathtracer/mathx"
)

// PointLight emits uniformly from a single position. Grounded on
// PointLight in Scene/Light.cpp: the direct-area pdf is the squared
// distance so the integrator never special-cases inverse-square
// falloff (spec §4.7).
type PointLight struct {
	Position mathx.Vec3
	Color    mathx.Vec3
}

func (l *PointLight) Illuminate(scenePoint mathx.Vec3, rng *mathx.Random) Sample {
	toLight := l.Position.Sub(scenePoint)
	sqrDistance := toLight.SqrLength()
	distance := float32(0)
	if sqrDistance > 0 {
		distance = float32(math.Sqrt(float64(sqrDistance)))
	}
	dir := toLight
	if distance > 0 {
		dir = toLight.Scale(1 / distance)
	}

	return Sample{
		DirectionToLight: dir,
		Distance:         distance,
		DirectPdfW:       sqrDistance,
		Radiance:         l.Color,
		Valid:            true,
	}
}

func (l *PointLight) TestRayHit(ray mathx.Ray) (float32, bool) {
	return 0, false
}

func (l *PointLight) GetRadiance(rayDirection, hitPoint mathx.Vec3) (mathx.Vec3, float32) {
	return mathx.Vec3{}, 0
}

func (l *PointLight) IsFinite() bool { return true }
func (l *PointLight) IsDelta() bool  { return true }

func (l *PointLight) BoundingBox() mathx.Box {
	return mathx.Box{Min: l.Position, Max: l.Position}
}
