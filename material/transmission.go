package material

import (
	"math"

	"github.com/rayforge/pathtracer/mathx"
)

// TransmissionBSDF is a smooth dielectric lobe combining Fresnel
// reflection and refraction, stochastically picking one branch per
// sample the way a specular-delta BSDF must. The original declares
// TransparencyBSDF with an IOR field in Material/BSDF.h but ships no
// definition for it; the Fresnel/refraction math here is the standard
// dielectric closed form, grounded on that declared interface (IOR
// parameter, Sample/Evaluate shape) rather than on a missing .cpp body.
type TransmissionBSDF struct{}

func (TransmissionBSDF) Sample(outgoingDir mathx.Vec3, rng *mathx.Random, param Params) SampleResult {
	normal := mathx.NewVec3(0, 0, 1)
	entering := outgoingDir.Z > 0
	iorRatio := float32(1) / param.IOR
	if !entering {
		normal = normal.Neg()
		iorRatio = param.IOR
	}

	cosThetaI := outgoingDir.Dot(normal)
	if cosThetaI < CosEpsilon {
		return SampleResult{}
	}

	fr := fresnelDielectric(cosThetaI, iorRatio)

	if rng.GetFloat() < fr {
		incoming := mathx.Reflect(outgoingDir, normal).Neg()
		return SampleResult{
			IncomingDir: incoming,
			Weight:      mathx.SplatVec3(1 / cosThetaI),
			PDF:         fr,
			Event:       EventSpecularReflection,
			Valid:       true,
		}
	}

	refracted, ok := refract(outgoingDir, normal, iorRatio, cosThetaI)
	if !ok {
		return SampleResult{}
	}
	return SampleResult{
		IncomingDir: refracted,
		Weight:      mathx.SplatVec3(1 / cosThetaI),
		PDF:         1 - fr,
		Event:       EventSpecularTransmission,
		Valid:       true,
	}
}

func (TransmissionBSDF) Evaluate(outgoingDir, incomingDir mathx.Vec3, param Params) (mathx.Vec3, float32) {
	return mathx.Vec3{}, 0
}

// fresnelDielectric is the exact (non-Schlick) unpolarized Fresnel
// reflectance for a smooth dielectric interface.
func fresnelDielectric(cosThetaI, iorRatio float32) float32 {
	sinThetaTSqr := iorRatio * iorRatio * (1 - cosThetaI*cosThetaI)
	if sinThetaTSqr >= 1 {
		return 1
	}
	cosThetaT := float32(math.Sqrt(float64(1 - sinThetaTSqr)))

	rParallel := (iorRatio*cosThetaI - cosThetaT) / (iorRatio*cosThetaI + cosThetaT)
	rPerp := (cosThetaI - iorRatio*cosThetaT) / (cosThetaI + iorRatio*cosThetaT)
	return (rParallel*rParallel + rPerp*rPerp) / 2
}

// refract bends outgoingDir through the interface given the local
// normal (pointing towards outgoingDir's side) and eta = n1/n2.
func refract(outgoingDir, normal mathx.Vec3, eta, cosThetaI float32) (mathx.Vec3, bool) {
	sinThetaTSqr := eta * eta * (1 - cosThetaI*cosThetaI)
	if sinThetaTSqr >= 1 {
		return mathx.Vec3{}, false
	}
	cosThetaT := float32(math.Sqrt(float64(1 - sinThetaTSqr)))
	dir := outgoingDir.Neg().Scale(eta).Add(normal.Scale(eta*cosThetaI - cosThetaT))
	return dir.Normalized(), true
}
