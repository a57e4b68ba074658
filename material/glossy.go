package material

import "github.com/rayforge/pathtracer/mathx"

// roughnessSpecularThreshold below this, the GGX lobe collapses to a
// mirror to avoid the distribution's near-singular peak, matching
// GlossyReflectiveBSDF::Sample's roughness < 0.01f fallback.
const roughnessSpecularThreshold = 0.01

// GlossyBSDF is a GGX microfacet reflection lobe. Grounded on
// original_source/RaytracerLib/Material/BSDF/GlossyReflectiveBSDF.cpp.
type GlossyBSDF struct{}

func (GlossyBSDF) Sample(outgoingDir mathx.Vec3, rng *mathx.Random, param Params) SampleResult {
	if outgoingDir.Z < CosEpsilon {
		return SampleResult{}
	}

	if param.Roughness < roughnessSpecularThreshold {
		incoming := mathx.Reflect(outgoingDir, mathx.NewVec3(0, 0, 1)).Neg()
		if incoming.Z < CosEpsilon {
			return SampleResult{}
		}
		return SampleResult{
			IncomingDir: incoming,
			Weight:      mathx.SplatVec3(1 / outgoingDir.Z),
			PDF:         1,
			Event:       EventSpecularReflection,
			Valid:       true,
		}
	}

	mf := NewMicrofacet(param.Roughness)
	m := mf.Sample(rng.GetVector2())

	incoming := mathx.Reflect(outgoingDir, m).Neg()
	if incoming.Z < CosEpsilon {
		return SampleResult{}
	}

	nDotV := outgoingDir.Z
	nDotL := incoming.Z
	vDotH := outgoingDir.Dot(m)
	if vDotH < CosEpsilon {
		return SampleResult{}
	}

	pdf := mf.Pdf(m) / (4 * vDotH)
	if pdf <= 0 {
		return SampleResult{}
	}

	d := mf.D(m)
	g := mf.G(nDotV, nDotL)
	colorScale := g * d / (4 * nDotV)

	return SampleResult{
		IncomingDir: incoming,
		Weight:      mathx.SplatVec3(colorScale),
		PDF:         pdf,
		Event:       EventGlossyReflection,
		Valid:       true,
	}
}

func (GlossyBSDF) Evaluate(outgoingDir, incomingDir mathx.Vec3, param Params) (mathx.Vec3, float32) {
	if outgoingDir.Z < CosEpsilon || incomingDir.Z < CosEpsilon {
		return mathx.Vec3{}, 0
	}
	if param.Roughness < roughnessSpecularThreshold {
		return mathx.Vec3{}, 0
	}

	m := outgoingDir.Add(incomingDir).Normalized()
	nDotV := outgoingDir.Z
	nDotL := incomingDir.Z
	vDotH := outgoingDir.Dot(m)
	if vDotH < CosEpsilon {
		return mathx.Vec3{}, 0
	}

	mf := NewMicrofacet(param.Roughness)
	d := mf.D(m)
	g := mf.G(nDotV, nDotL)
	pdf := mf.Pdf(m) / (4 * vDotH)
	colorScale := g * d / (4 * nDotV)

	return mathx.SplatVec3(colorScale), pdf
}
