// Package material implements the renderer's materials and their BSDF
// contributions: diffuse, specular mirror, GGX glossy, and dielectric
// transmission. Grounded on
// original_source/RaytracerLib/Material/BSDF.h/.cpp and
// Material/BSDF/{GlossyReflectiveBSDF,SpecularReflectiveBSDF}.cpp. All
// directions here are in the local tangent frame, where Z is the
// shading normal.
package material

import "github.com/rayforge/pathtracer/mathx"

// EventType classifies the kind of scattering event a Sample call
// produced; the integrator tallies it into its per-frame ray counters.
type EventType int

const (
	EventNone EventType = iota
	EventDiffuseReflection
	EventSpecularReflection
	EventGlossyReflection
	EventSpecularTransmission
)

// CosEpsilon guards near-grazing directions against division blowups in
// the BSDFs below, matching the original's CosEpsilon constant.
const CosEpsilon = 1e-5

// SampleResult is what Sample returns: the incoming (towards-light)
// direction, the throughput weight already divided by the sample's pdf,
// the pdf itself (for MIS), and the event type.
type SampleResult struct {
	IncomingDir mathx.Vec3
	Weight      mathx.Vec3
	PDF         float32
	Event       EventType
	Valid       bool
}

// BSDF is implemented by every scattering contribution a material can
// enable.
type BSDF interface {
	// Sample importance-samples an incoming direction for the given
	// outgoing direction, both in local tangent space.
	Sample(outgoingDir mathx.Vec3, rng *mathx.Random, param Params) SampleResult

	// Evaluate returns the BRDF value and the solid-angle pdf
	// (directPdfW) of having sampled incomingDir via Sample.
	Evaluate(outgoingDir, incomingDir mathx.Vec3, param Params) (value mathx.Vec3, directPdfW float32)
}

// Params is the resolved, per-shading-point material parameters (spec
// §4.4: "a per-shading-point material-param record"), already sampled
// from textures and scaled by the material's scalar factors.
type Params struct {
	BaseColor mathx.Vec3
	Roughness float32
	Metallic  float32
	IOR       float32
}
