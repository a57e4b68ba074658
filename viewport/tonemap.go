// Package viewport implements the tiled parallel render loop: tile
// dispatch across a worker pool, per-thread rendering contexts, sample
// accumulation, and the bloom/tonemap/exposure postprocess chain that
// turns the accumulated HDR buffer into a presented image. Grounded on
// original_source/RaytracerLib/CPU/CpuRaytracing.cpp's tile scheduler
// and Core/Rendering/Tonemap.h's curve set.
package viewport

import (
	"math"

	"github.com/rayforge/pathtracer/mathx"
)

// Tonemapper selects the curve Postprocess uses to compress HDR
// radiance into a displayable range, matching spec §4.9's
// {Clamped, Reinhard, Filmic, ACES} choice.
type Tonemapper int

const (
	Clamped Tonemapper = iota
	Reinhard
	Filmic
	ACES
)

func (t Tonemapper) String() string {
	switch t {
	case Clamped:
		return "clamped"
	case Reinhard:
		return "reinhard"
	case Filmic:
		return "filmic"
	case ACES:
		return "aces"
	default:
		return "unknown"
	}
}

// Apply maps an HDR linear color through t's curve, matching
// Tonemap.h's per-tonemapper functions. Filmic already bakes in a
// gamma-like rolloff so it skips the separate sRGB encode every other
// curve needs.
func (t Tonemapper) Apply(c mathx.Vec3) mathx.Vec3 {
	switch t {
	case Reinhard:
		return encodeSRGB(reinhard(c))
	case Filmic:
		return filmic(c)
	case ACES:
		return encodeSRGB(aces(c))
	default:
		return encodeSRGB(clampColor(c))
	}
}

func clampColor(c mathx.Vec3) mathx.Vec3 {
	return mathx.NewVec3(mathx.Clamp01(c.X), mathx.Clamp01(c.Y), mathx.Clamp01(c.Z))
}

func reinhard(c mathx.Vec3) mathx.Vec3 {
	return mathx.NewVec3(c.X/(1+c.X), c.Y/(1+c.Y), c.Z/(1+c.Z))
}

func filmic(c mathx.Vec3) mathx.Vec3 {
	return mathx.NewVec3(filmicChannel(c.X), filmicChannel(c.Y), filmicChannel(c.Z))
}

func filmicChannel(x float32) float32 {
	x = max32(0, x)
	return (x * (6.2*x + 0.5)) / (x*(6.2*x+1.7) + 0.06)
}

func aces(c mathx.Vec3) mathx.Vec3 {
	return mathx.NewVec3(acesChannel(c.X), acesChannel(c.Y), acesChannel(c.Z))
}

func acesChannel(x float32) float32 {
	x = max32(0, x)
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// encodeSRGB applies the square-root approximation of the sRGB curve,
// the inverse of Bitmap.Get's squaring decode (spec §4.2), so a
// tonemapped Bitmap round-trips through the same approximation the
// texture loader uses.
func encodeSRGB(c mathx.Vec3) mathx.Vec3 {
	return mathx.NewVec3(sqrtUnit(c.X), sqrtUnit(c.Y), sqrtUnit(c.Z))
}

func sqrtUnit(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
