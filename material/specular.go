package material

import "github.com/rayforge/pathtracer/mathx"

// SpecularBSDF is a perfect mirror reflection lobe, a Dirac delta that
// can only be hit by Sample, never evaluated directly (its contribution
// to direct light sampling is zero, matching SpecularReflectiveBSDF).
type SpecularBSDF struct{}

func (SpecularBSDF) Sample(outgoingDir mathx.Vec3, rng *mathx.Random, param Params) SampleResult {
	if outgoingDir.Z < CosEpsilon {
		return SampleResult{}
	}
	incoming := mathx.Reflect(outgoingDir, mathx.NewVec3(0, 0, 1)).Neg()
	return SampleResult{
		IncomingDir: incoming,
		Weight:      mathx.SplatVec3(1 / outgoingDir.Z),
		PDF:         1,
		Event:       EventSpecularReflection,
		Valid:       true,
	}
}

func (SpecularBSDF) Evaluate(outgoingDir, incomingDir mathx.Vec3, param Params) (mathx.Vec3, float32) {
	return mathx.Vec3{}, 0
}
