package light

import "github.com/rayforge/pathtracer/mathx"

// DirectionalLight illuminates every scene point from one fixed
// direction at infinite distance, like sunlight. Grounded on
// DirectionalLight in Scene/Light.cpp.
type DirectionalLight struct {
	Direction mathx.Vec3
	Color     mathx.Vec3
}

func (l *DirectionalLight) Illuminate(scenePoint mathx.Vec3, rng *mathx.Random) Sample {
	return Sample{
		DirectionToLight: l.Direction.Neg(),
		Distance:         1,
		DirectPdfW:       1,
		Radiance:         l.Color,
		Valid:            true,
	}
}

func (l *DirectionalLight) TestRayHit(ray mathx.Ray) (float32, bool) {
	return 0, false
}

func (l *DirectionalLight) GetRadiance(rayDirection, hitPoint mathx.Vec3) (mathx.Vec3, float32) {
	return mathx.Vec3{}, 0
}

func (l *DirectionalLight) IsFinite() bool { return false }
func (l *DirectionalLight) IsDelta() bool  { return true }

func (l *DirectionalLight) BoundingBox() mathx.Box {
	return mathx.EmptyBox()
}
