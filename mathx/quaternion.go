package mathx

import "math"

// Quaternion represents a rotation, grounded on RaytracerLib/Math/Quaternion.cpp.
type Quaternion struct {
	X, Y, Z, W float32
}

func Identity() Quaternion { return Quaternion{0, 0, 0, 1} }

// FromAxisAndAngle builds a rotation of angle radians about axis (expected
// normalized).
func FromAxisAndAngle(axis Vec3, angle float32) Quaternion {
	half := angle * 0.5
	s := float32(math.Sin(float64(half)))
	c := float32(math.Cos(float64(half)))
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, c}
}

func RotationX(angle float32) Quaternion { return FromAxisAndAngle(Vec3{1, 0, 0}, angle) }
func RotationY(angle float32) Quaternion { return FromAxisAndAngle(Vec3{0, 1, 0}, angle) }
func RotationZ(angle float32) Quaternion { return FromAxisAndAngle(Vec3{0, 0, 1}, angle) }

// Mul composes rotations so that (a.Mul(b)) applied to a vector equals
// applying b first, then a.
func (a Quaternion) Mul(b Quaternion) Quaternion {
	return Quaternion{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

func (a Quaternion) Inverted() Quaternion {
	n := a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W
	if n == 0 {
		return a
	}
	inv := 1 / n
	return Quaternion{-a.X * inv, -a.Y * inv, -a.Z * inv, a.W * inv}
}

// TransformVector rotates v by the quaternion.
func (a Quaternion) TransformVector(v Vec3) Vec3 {
	u := Vec3{a.X, a.Y, a.Z}
	uvCross := u.Cross(v)
	t := uvCross.Scale(2)
	return v.Add(t.Scale(a.W)).Add(u.Cross(t))
}

// InterpolateQuat performs normalized-lerp interpolation (spherical linear
// interpolation's cheap approximation, matching the original's usage on
// camera keyframes where angular error is negligible).
func InterpolateQuat(a, b Quaternion, t float32) Quaternion {
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	if dot < 0 {
		b = Quaternion{-b.X, -b.Y, -b.Z, -b.W}
	}
	r := Quaternion{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
	n := float32(math.Sqrt(float64(r.X*r.X + r.Y*r.Y + r.Z*r.Z + r.W*r.W)))
	if n == 0 {
		return Identity()
	}
	inv := 1 / n
	return Quaternion{r.X * inv, r.Y * inv, r.Z * inv, r.W * inv}
}
