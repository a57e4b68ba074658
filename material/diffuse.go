package material

import (
	"math"

	"github.com/rayforge/pathtracer/mathx"
)

// DiffuseBSDF is a Lambertian reflection lobe. The original's
// OrenNayarBSDF branch is present in name only -- its roughness term is
// commented out and left unused in Material/BSDF.h -- so this
// implements plain cosine-weighted Lambertian reflectance rather than
// carrying over dead code.
type DiffuseBSDF struct{}

func (DiffuseBSDF) Sample(outgoingDir mathx.Vec3, rng *mathx.Random, param Params) SampleResult {
	if outgoingDir.Z <= CosEpsilon {
		return SampleResult{}
	}
	incoming := rng.GetHemisphereCos()
	pdf := incoming.Z / float32(math.Pi)
	if pdf <= 0 {
		return SampleResult{}
	}
	weight := param.BaseColor
	return SampleResult{
		IncomingDir: incoming,
		Weight:      weight,
		PDF:         pdf,
		Event:       EventDiffuseReflection,
		Valid:       true,
	}
}

func (DiffuseBSDF) Evaluate(outgoingDir, incomingDir mathx.Vec3, param Params) (mathx.Vec3, float32) {
	if outgoingDir.Z <= CosEpsilon || incomingDir.Z <= CosEpsilon {
		return mathx.Vec3{}, 0
	}
	pdf := incomingDir.Z / float32(math.Pi)
	value := param.BaseColor.Scale(1 / float32(math.Pi))
	return value, pdf
}
