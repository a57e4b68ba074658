package bitmap

import (
	"math"

	"github.com/rayforge/pathtracer/mathx"
)

// Sample evaluates the bitmap at continuous uv coordinates, wrapping uv
// to the unit range first, then wrapping texel indices at the integer
// boundary, matching Bitmap::Evaluate.
func (b *Bitmap) Sample(uv mathx.Vec2, filter FilterMode, forceLinear bool) (mathx.Vec3, error) {
	wrapped := mathx.Vec2{X: wrap01(uv.X), Y: wrap01(uv.Y)}
	fx := wrapped.X * float32(b.width)
	fy := wrapped.Y * float32(b.height)
	ix := int(math.Floor(float64(fx)))
	iy := int(math.Floor(float64(fy)))
	ix = wrapInt(ix, b.width)
	iy = wrapInt(iy, b.height)

	switch filter {
	case FilterNearest:
		return b.Get(ix, iy, forceLinear)

	case FilterBilinear, FilterBilinearSmoothstep:
		ix1 := wrapInt(ix+1, b.width)
		iy1 := wrapInt(iy+1, b.height)
		colors, err := b.GetBlock(ix, iy, ix1, iy1, forceLinear)
		if err != nil {
			return mathx.Vec3{}, err
		}
		wx := fx - float32(ix)
		wy := fy - float32(iy)
		if filter == FilterBilinearSmoothstep {
			wx = smoothstep(wx)
			wy = smoothstep(wy)
		}
		rowY0 := mathx.LerpVec3(colors[0], colors[1], wx)
		rowY1 := mathx.LerpVec3(colors[2], colors[3], wx)
		return mathx.LerpVec3(rowY0, rowY1, wy), nil

	default:
		return mathx.Vec3{}, ErrInvalidFormat
	}
}

func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

func wrap01(v float32) float32 {
	v -= float32(math.Floor(float64(v)))
	if v < 0 {
		v += 1
	}
	return v
}

func wrapInt(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
