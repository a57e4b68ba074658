package bitmap

import (
	"math"

	"github.com/rayforge/pathtracer/mathx"
)

// FloatImage is a row-major buffer of linear-space Vec3 samples, the
// working type the blur pipeline and the viewport's accumulation buffer
// share -- separate from Bitmap because it never needs to change pixel
// format or round-trip through bytes.
type FloatImage struct {
	Pixels        []mathx.Vec3
	Width, Height int
}

func NewFloatImage(width, height int) *FloatImage {
	return &FloatImage{Pixels: make([]mathx.Vec3, width*height), Width: width, Height: height}
}

func (f *FloatImage) At(x, y int) mathx.Vec3 {
	x = clampInt(x, 0, f.Width-1)
	y = clampInt(y, 0, f.Height-1)
	return f.Pixels[y*f.Width+x]
}

func (f *FloatImage) Set(x, y int, v mathx.Vec3) {
	f.Pixels[y*f.Width+x] = v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BoxBlurHorizontal runs a single-pass box filter of the given radius
// along rows, clamping at the edges, matching Bitmap::VerticalBlur's
// horizontal counterpart.
func BoxBlurHorizontal(src *FloatImage, radius int) *FloatImage {
	dst := NewFloatImage(src.Width, src.Height)
	window := float32(2*radius + 1)
	for y := 0; y < src.Height; y++ {
		var sum mathx.Vec3
		for dx := -radius; dx <= radius; dx++ {
			sum = sum.Add(src.At(dx, y))
		}
		dst.Set(0, y, sum.Scale(1/window))
		for x := 1; x < src.Width; x++ {
			sum = sum.Sub(src.At(x-radius-1, y)).Add(src.At(x+radius, y))
			dst.Set(x, y, sum.Scale(1/window))
		}
	}
	return dst
}

// BoxBlurVertical is BoxBlurHorizontal's column-wise counterpart.
func BoxBlurVertical(src *FloatImage, radius int) *FloatImage {
	dst := NewFloatImage(src.Width, src.Height)
	window := float32(2*radius + 1)
	for x := 0; x < src.Width; x++ {
		var sum mathx.Vec3
		for dy := -radius; dy <= radius; dy++ {
			sum = sum.Add(src.At(x, dy))
		}
		dst.Set(x, 0, sum.Scale(1/window))
		for y := 1; y < src.Height; y++ {
			sum = sum.Sub(src.At(x, y-radius-1)).Add(src.At(x, y+radius))
			dst.Set(x, y, sum.Scale(1/window))
		}
	}
	return dst
}

// GaussianApprox blurs src with three successive box passes whose radii
// are chosen by Ivan Kutskir's formula so the composite approximates a
// true Gaussian of standard deviation sigma (spec §4.2).
func GaussianApprox(src *FloatImage, sigma float32) *FloatImage {
	if sigma <= 0 {
		return src
	}
	radii := boxRadiiForGaussian(sigma, 3)
	out := src
	for _, r := range radii {
		out = BoxBlurVertical(BoxBlurHorizontal(out, r), r)
	}
	return out
}

// boxRadiiForGaussian computes n box-filter radii whose combined variance
// approximates a Gaussian of the given standard deviation, following
// w_ideal = sqrt(12*sigma^2/n + 1).
func boxRadiiForGaussian(sigma float32, n int) []int {
	ideal := math.Sqrt(12*float64(sigma)*float64(sigma)/float64(n) + 1)
	lower := int(math.Floor(ideal))
	if lower%2 == 0 {
		lower--
	}
	upper := lower + 2

	mIdeal := (12*float64(sigma)*float64(sigma) - float64(n)*float64(lower)*float64(lower) - 4*float64(n)*float64(lower) - 3*float64(n)) /
		(-4*float64(lower) - 4)
	m := int(math.Round(mIdeal))

	radii := make([]int, n)
	for i := 0; i < n; i++ {
		var size int
		if i < m {
			size = lower
		} else {
			size = upper
		}
		if size < 1 {
			size = 1
		}
		radii[i] = (size - 1) / 2
	}
	return radii
}
