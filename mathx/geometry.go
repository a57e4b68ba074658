package mathx

// Epsilon is the general-purpose tolerance used throughout shading and
// light sampling, matching the original's RT_EPSILON.
const Epsilon = 1e-5

// IntersectRayBox performs the slab method, returning the entry/exit
// distances along the ray and whether the ray hits the box at all within
// [0, maxDist]. Grounded on RaytracerLib/Math/Geometry.h's Intersect_BoxRay.
func IntersectRayBox(r Ray, b Box, maxDist float32) (tNear, tFar float32, hit bool) {
	t1 := (b.Min.X - r.Origin.X) * r.InvDir.X
	t2 := (b.Max.X - r.Origin.X) * r.InvDir.X
	tNear, tFar = minMax(t1, t2)

	t1 = (b.Min.Y - r.Origin.Y) * r.InvDir.Y
	t2 = (b.Max.Y - r.Origin.Y) * r.InvDir.Y
	n, f := minMax(t1, t2)
	tNear, tFar = max32(tNear, n), min32(tFar, f)

	t1 = (b.Min.Z - r.Origin.Z) * r.InvDir.Z
	t2 = (b.Max.Z - r.Origin.Z) * r.InvDir.Z
	n, f = minMax(t1, t2)
	tNear, tFar = max32(tNear, n), min32(tFar, f)

	tNear = max32(tNear, 0)
	tFar = min32(tFar, maxDist)
	hit = tNear <= tFar
	return
}

// IntersectRayBoxTwoSided is the same test but also reports whether the
// origin started inside the box (tNear < 0), matching the original's
// two-sided variant used for dielectric medium entry/exit checks.
func IntersectRayBoxTwoSided(r Ray, b Box, maxDist float32) (tNear, tFar float32, hit, inside bool) {
	tNear, tFar, hit = IntersectRayBox(r, b, maxDist)
	inside = hit && tNear <= 0
	return
}

func minMax(a, b float32) (float32, float32) {
	if a < b {
		return a, b
	}
	return b, a
}

// Triangle is three world-space vertices.
type Triangle struct {
	V0, V1, V2 Vec3
}

// IntersectRayTriangle implements the Möller-Trumbore algorithm, matching
// RaytracerLib/Math/Geometry.h's Intersect_TriangleRay.
func IntersectRayTriangle(r Ray, tri Triangle, maxDist float32) (dist, u, v float32, hit bool) {
	const epsilon = 1e-7

	edge1 := tri.V1.Sub(tri.V0)
	edge2 := tri.V2.Sub(tri.V0)
	pvec := r.Dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if det > -epsilon && det < epsilon {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	tvec := r.Origin.Sub(tri.V0)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(edge1)
	v = r.Dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	dist = edge2.Dot(qvec) * invDet
	if dist <= epsilon || dist > maxDist {
		return 0, 0, 0, false
	}
	return dist, u, v, true
}

// TriangleNormal returns the geometric (non-interpolated) face normal.
func TriangleNormal(tri Triangle) Vec3 {
	return tri.V1.Sub(tri.V0).Cross(tri.V2.Sub(tri.V0)).Normalized()
}

// TriangleArea returns the triangle's surface area (half the length of
// the edge cross product). The area lights compute their own area and
// do not call it.
func TriangleArea(tri Triangle) float32 {
	return tri.V1.Sub(tri.V0).Cross(tri.V2.Sub(tri.V0)).Length() * 0.5
}
