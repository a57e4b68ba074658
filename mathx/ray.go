package mathx

// Ray is a single traversal ray: an origin, a normalized direction, and the
// precomputed reciprocal of that direction used by the slab box test so the
// traversal hot path never divides.
type Ray struct {
	Origin Vec3
	Dir    Vec3
	InvDir Vec3
}

// NewRay normalizes dir and derives InvDir, matching Ray::Ray.
func NewRay(origin, dir Vec3) Ray {
	d := dir.Normalized()
	return Ray{Origin: origin, Dir: d, InvDir: Reciprocal(d)}
}

// GetAtDistance evaluates the point origin + dir*t.
func (r Ray) GetAtDistance(t float32) Vec3 {
	return r.Dir.MulAdd(t, r.Origin)
}
