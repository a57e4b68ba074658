package viewport

import (
	"math"

	"github.com/rayforge/pathtracer/bitmap"
	"github.com/rayforge/pathtracer/mathx"
)

// PostprocessParams mirrors spec §4.2's "Postprocess parameters":
// color filter, exposure (log2 scale), saturation, contrast, dither
// amplitude, bloom factor/size, and the tonemapper choice.
type PostprocessParams struct {
	Tonemapper      Tonemapper
	Exposure        float32 // log2 scale applied before display
	ColorFilter     mathx.Vec3
	Saturation      float32 // 1 = unchanged
	Contrast        float32 // 1 = unchanged
	BloomFactor     float32 // 0 disables bloom entirely
	BloomSize       float32 // Gaussian-approx blur sigma in pixels
	DitherAmplitude float32
	NoiseStrength   float32
}

// DefaultPostprocessParams returns a no-op-ish pipeline: ACES tonemap,
// zero exposure, white color filter, unit saturation/contrast, no
// bloom, no noise.
func DefaultPostprocessParams() PostprocessParams {
	return PostprocessParams{
		Tonemapper:  ACES,
		ColorFilter: mathx.NewVec3(1, 1, 1),
		Saturation:  1,
		Contrast:    1,
	}
}

// Postprocess turns the accumulated sample sum into a display-ready
// Bitmap, implementing spec §4.9 step 4's pipeline in the order it is
// written there: bloom composite, tonemap, exposure, color filter,
// noise. Saturation and contrast (named in spec §4.2's parameter list
// but not in the step sequence) are folded in immediately after
// exposure, ahead of the color filter. Grounded on
// original_source/Core/Rendering/Viewport.cpp's Present.
func Postprocess(sum *bitmap.FloatImage, numSamples int, params PostprocessParams, rng *mathx.Random) (*bitmap.Bitmap, error) {
	if numSamples < 1 {
		numSamples = 1
	}
	invN := 1 / float32(numSamples)

	mean := bitmap.NewFloatImage(sum.Width, sum.Height)
	for y := 0; y < sum.Height; y++ {
		for x := 0; x < sum.Width; x++ {
			mean.Set(x, y, sum.At(x, y).Scale(invN))
		}
	}

	working := mean
	if params.BloomFactor > 0 && params.BloomSize > 0 {
		working = applyBloom(mean, params.BloomFactor, params.BloomSize)
	}

	exposureScale := float32(math.Pow(2, float64(params.Exposure)))

	out := bitmap.NewFloatImage(working.Width, working.Height)
	for y := 0; y < working.Height; y++ {
		for x := 0; x < working.Width; x++ {
			c := params.Tonemapper.Apply(working.At(x, y))
			c = c.Scale(exposureScale)
			c = applySaturation(c, params.Saturation)
			c = applyContrast(c, params.Contrast)
			c = c.Mul(params.ColorFilter)
			if params.NoiseStrength > 0 && rng != nil {
				c = addNoise(c, params.NoiseStrength, params.DitherAmplitude, rng)
			}
			out.Set(x, y, clampColor(c))
		}
	}

	return bitmap.FromFloatImage(out, true)
}

// applyBloom adds a Gaussian-approx-blurred copy of src scaled by
// factor back onto itself, matching the original's additive glow
// composite.
func applyBloom(src *bitmap.FloatImage, factor, sigma float32) *bitmap.FloatImage {
	blurred := bitmap.GaussianApprox(src, sigma)
	out := bitmap.NewFloatImage(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			out.Set(x, y, src.At(x, y).Add(blurred.At(x, y).Scale(factor)))
		}
	}
	return out
}

func applySaturation(c mathx.Vec3, saturation float32) mathx.Vec3 {
	if saturation == 1 {
		return c
	}
	gray := c.Luminance()
	return mathx.NewVec3(gray, gray, gray).Scale(1 - saturation).Add(c.Scale(saturation))
}

func applyContrast(c mathx.Vec3, contrast float32) mathx.Vec3 {
	if contrast == 1 {
		return c
	}
	return mathx.NewVec3(
		(c.X-0.5)*contrast+0.5,
		(c.Y-0.5)*contrast+0.5,
		(c.Z-0.5)*contrast+0.5,
	)
}

// addNoise dithers c by a small uniform offset, amplitude combining
// NoiseStrength (the signal) with DitherAmplitude (its spread), the
// same role Bitmap dithering plays when quantizing a render to 8 bits.
func addNoise(c mathx.Vec3, strength, ditherAmplitude float32, rng *mathx.Random) mathx.Vec3 {
	spread := strength
	if ditherAmplitude > 0 {
		spread *= ditherAmplitude
	}
	offset := (rng.GetFloat() - 0.5) * spread
	return mathx.NewVec3(c.X+offset, c.Y+offset, c.Z+offset)
}
