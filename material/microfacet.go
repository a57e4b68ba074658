package material

import (
	"math"

	"github.com/rayforge/pathtracer/mathx"
)

// Microfacet is a GGX / Trowbridge-Reitz normal distribution over the
// local tangent frame, where z is the shading normal. Grounded on
// original_source/RaytracerLib/Material/BSDF/Microfacet.h.
type Microfacet struct {
	alpha    float32
	alphaSqr float32
}

// NewMicrofacet builds a distribution from a perceptual roughness in
// [0,1], squared to alpha the way the original's GlossyReflectiveBSDF
// feeds Microfacet(roughness*roughness).
func NewMicrofacet(roughness float32) Microfacet {
	alpha := roughness * roughness
	if alpha < 1e-4 {
		alpha = 1e-4
	}
	return Microfacet{alpha: alpha, alphaSqr: alpha * alpha}
}

// D evaluates the normal distribution function at half-vector m (local
// space, m.Z is cos(theta_m)).
func (mf Microfacet) D(m mathx.Vec3) float32 {
	cosThetaSqr := m.Z * m.Z
	if cosThetaSqr <= 0 {
		return 0
	}
	denom := cosThetaSqr*(mf.alphaSqr-1) + 1
	return mf.alphaSqr / (float32(math.Pi) * denom * denom)
}

// Pdf returns the half-vector sampling pdf, D(m)*m.Z, matching the
// original's Microfacet::Pdf.
func (mf Microfacet) Pdf(m mathx.Vec3) float32 {
	return mf.D(m) * m.Z
}

// G1 is the Smith masking term for a single direction.
func (mf Microfacet) G1(nDotX float32) float32 {
	if nDotX <= 0 {
		return 0
	}
	cosThetaSqr := nDotX * nDotX
	tanThetaSqr := (1 - cosThetaSqr) / cosThetaSqr
	return 2 / (1 + float32(math.Sqrt(float64(1+mf.alphaSqr*tanThetaSqr))))
}

// G is the combined view/light masking-shadowing term.
func (mf Microfacet) G(nDotV, nDotL float32) float32 {
	return mf.G1(nDotV) * mf.G1(nDotL)
}

// Sample importance-samples a half-vector from u, a pair of uniform
// random numbers in [0,1), matching Microfacet::Sample's substitution
// cosThetaSqr = (1-u.x) / (1+(alphaSqr-1)*u.x).
func (mf Microfacet) Sample(u mathx.Vec2) mathx.Vec3 {
	cosThetaSqr := (1 - u.X) / (1 + (mf.alphaSqr-1)*u.X)
	if cosThetaSqr < 0 {
		cosThetaSqr = 0
	}
	cosTheta := float32(math.Sqrt(float64(cosThetaSqr)))
	sinTheta := float32(math.Sqrt(float64(max32(0, 1-cosThetaSqr))))
	phi := 2*float32(math.Pi)*u.Y - float32(math.Pi)
	return mathx.NewVec3(sinTheta*mathx.FastSin(phi), sinTheta*mathx.FastCos(phi), cosTheta)
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
