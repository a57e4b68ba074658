// Package integrator implements the per-ray path-tracing loop: the
// bounce-by-bounce traversal, shading extraction, and Russian-roulette
// termination described by spec §4.8. Grounded on
// original_source/RaytracerLib/CPU/CpuScene.cpp's TraceRay_Single and
// CPU/CpuRaytracing.h's RayTracingContext.
package integrator

import "github.com/rayforge/pathtracer/mathx"

// Counters tallies per-thread ray statistics for a single frame,
// matching CpuRaytracing.h's RayTracingCounters.
type Counters struct {
	PrimaryRays      uint64
	ShadowRays       uint64
	ReflectionRays   uint64
	TransparencyRays uint64
	DiffuseRays      uint64
}

// Params are the read-only rendering parameters every per-thread
// context shares, matching RayTracingContext's RaytracingParams&.
type Params struct {
	MaxDepth int
}

func DefaultParams() Params {
	return Params{MaxDepth: 16}
}

// Context is the per-thread rendering hub: read-only global Params,
// a per-thread PRNG, per-thread Counters, and the current frame time
// used for object transform interpolation. Grounded on
// CpuRaytracing.h's RayTracingContext.
type Context struct {
	Params   Params
	Random   *mathx.Random
	Counters Counters
	Time     float32
}

// NewContext seeds a per-thread context's PRNG from seed, matching
// spec §4.9's "PRNG seeded from frame_id ⊕ (thread_id << 16)" (the
// caller computes that seed; Context just owns the resulting stream).
func NewContext(params Params, seed uint64) *Context {
	return &Context{Params: params, Random: mathx.NewRandomSeeded(seed)}
}
