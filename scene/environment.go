package scene

import (
	"math"

	"github.com/rayforge/pathtracer/bitmap"
	"github.com/rayforge/pathtracer/mathx"
)

// environmentUV maps a world-space direction to spherical texture
// coordinates, matching Scene::GetBackgroundColor's
// phi = atan2(dir.z, dir.x); theta = acos(dir.y) (spec §4.7).
func environmentUV(dir mathx.Vec3) mathx.Vec2 {
	theta := float32(math.Acos(clampUnit(float64(dir.Y))))
	phi := float32(math.Atan2(float64(dir.Z), float64(dir.X)))
	return mathx.Vec2{
		X: phi/(2*float32(math.Pi)) + 0.5,
		Y: theta / float32(math.Pi),
	}
}

func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

// EnvironmentDistribution importance-samples an equirectangular
// environment texture by per-pixel luminance, grounded on
// original_source/Core/Math/Distribution.h/.cpp's use for environment
// map sampling (a supplement: spec.md's distillation only mentions
// Distribution1D in the data model without wiring it to anything, but
// nothing in its Non-goals excludes environment importance sampling).
type EnvironmentDistribution struct {
	marginal    *mathx.Distribution1D
	conditional []*mathx.Distribution1D
	width       int
	height      int
}

// NewEnvironmentDistribution builds one Distribution1D per texture row
// (the conditional distributions) plus one over row-integrals (the
// marginal), the standard two-stage piecewise-constant importance
// sampler for a luminance function over a 2D domain.
func NewEnvironmentDistribution(tex *bitmap.Bitmap, width, height int) *EnvironmentDistribution {
	rowIntegrals := make([]float32, height)
	conditional := make([]*mathx.Distribution1D, height)

	for y := 0; y < height; y++ {
		weights := make([]float32, width)
		for x := 0; x < width; x++ {
			uv := mathx.Vec2{
				X: (float32(x) + 0.5) / float32(width),
				Y: (float32(y) + 0.5) / float32(height),
			}
			color, err := tex.Sample(uv, bitmap.FilterNearest, true)
			if err != nil {
				continue
			}
			weights[x] = color.Luminance()
		}
		dist := mathx.NewDistribution1D(weights)
		conditional[y] = dist
		rowIntegrals[y] = dist.FuncIntegral()
	}

	return &EnvironmentDistribution{
		marginal:    mathx.NewDistribution1D(rowIntegrals),
		conditional: conditional,
		width:       width,
		height:      height,
	}
}

// Sample draws a direction proportional to the texture's luminance,
// returning the world-space direction and its solid-angle pdf.
func (e *EnvironmentDistribution) Sample(u mathx.Vec2) (dir mathx.Vec3, pdf float32) {
	row, rowPdf := e.marginal.SampleDiscrete(u.Y)
	col, colPdf := e.conditional[row].SampleDiscrete(u.X)

	s := (float32(col) + 0.5) / float32(e.width)
	t := (float32(row) + 0.5) / float32(e.height)

	theta := t * float32(math.Pi)
	phi := (s - 0.5) * 2 * float32(math.Pi)

	sinTheta, cosTheta := mathx.FastSin(theta), mathx.FastCos(theta)
	sinPhi, cosPhi := mathx.FastSin(phi), mathx.FastCos(phi)

	dir = mathx.NewVec3(sinTheta*cosPhi, cosTheta, sinTheta*sinPhi)

	if sinTheta <= 0 {
		return dir, 0
	}
	pdf = (rowPdf * colPdf) / (2 * float32(math.Pi) * float32(math.Pi) * sinTheta)
	return dir, pdf
}
