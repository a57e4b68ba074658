// Package mathx provides the vector, matrix, transform, and random-number
// primitives shared by the rest of the renderer.
package mathx

import "math"

// Vec3 is a 3-component vector used for positions, directions and colors.
type Vec3 struct {
	X, Y, Z float32
}

func NewVec3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

func SplatVec3(v float32) Vec3 { return Vec3{v, v, v} }

func (a Vec3) Add(b Vec3) Vec3      { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3      { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Mul(b Vec3) Vec3      { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (a Vec3) Scale(s float32) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Neg() Vec3            { return Vec3{-a.X, -a.Y, -a.Z} }

// MulAdd returns a*s + b (fused multiply-add, matching Vector4::MulAndAdd).
func (a Vec3) MulAdd(s float32, b Vec3) Vec3 {
	return Vec3{a.X*s + b.X, a.Y*s + b.Y, a.Z*s + b.Z}
}

func (a Vec3) Dot(b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) SqrLength() float32 { return a.Dot(a) }
func (a Vec3) Length() float32    { return float32(math.Sqrt(float64(a.SqrLength()))) }

func (a Vec3) Normalized() Vec3 {
	l := a.Length()
	if l <= 0 {
		return a
	}
	return a.Scale(1 / l)
}

// FastNormalized uses the one-Newton-iteration reciprocal-sqrt approximation,
// matching the original's FastNormalized3 used on hot shading paths.
func (a Vec3) FastNormalized() Vec3 {
	sq := a.SqrLength()
	if sq <= 0 {
		return a
	}
	return a.Scale(fastRsqrt(sq))
}

func fastRsqrt(x float32) float32 {
	// one Newton-Raphson iteration refining an initial estimate.
	y := float32(1 / math.Sqrt(float64(x)))
	return y * (1.5 - 0.5*x*y*y)
}

func Reciprocal(a Vec3) Vec3 {
	return Vec3{reciprocal(a.X), reciprocal(a.Y), reciprocal(a.Z)}
}

func reciprocal(x float32) float32 {
	if x == 0 {
		return float32(math.Inf(1))
	}
	// fast reciprocal approximation refined with a single Newton iteration.
	y := 1 / x
	return y * (2 - x*y)
}

func MinVec3(a, b Vec3) Vec3 {
	return Vec3{min32(a.X, b.X), min32(a.Y, b.Y), min32(a.Z, b.Z)}
}

func MaxVec3(a, b Vec3) Vec3 {
	return Vec3{max32(a.X, b.X), max32(a.Y, b.Y), max32(a.Z, b.Z)}
}

func AbsVec3(a Vec3) Vec3 {
	return Vec3{absf(a.X), absf(a.Y), absf(a.Z)}
}

func LerpVec3(a, b Vec3, t float32) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Reflect mirrors v about normal n (both expected to be normalized),
// matching Vector4::Reflect3.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Component indexes into the vector by axis (0=X, 1=Y, 2=Z).
func (a Vec3) Component(axis int) float32 {
	switch axis {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

func (a Vec3) MaxComponent() (axis int, value float32) {
	axis, value = 0, a.X
	if a.Y > value {
		axis, value = 1, a.Y
	}
	if a.Z > value {
		axis, value = 2, a.Z
	}
	return
}

// Luminance uses Rec.709 coefficients, matching the original's ColorHelpers.
func (a Vec3) Luminance() float32 {
	return 0.2126*a.X + 0.7152*a.Y + 0.0722*a.Z
}

func (a Vec3) MaxChannel() float32 {
	return max32(a.X, max32(a.Y, a.Z))
}

func (a Vec3) IsZero() bool {
	return a.X == 0 && a.Y == 0 && a.Z == 0
}

func (a Vec3) HasNaN() bool {
	return isNaN(a.X) || isNaN(a.Y) || isNaN(a.Z)
}

func isNaN(f float32) bool { return f != f }

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absf(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}

func Clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Vec2 is used for texture coordinates and 2D sample pairs.
type Vec2 struct {
	X, Y float32
}
