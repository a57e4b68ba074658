package integrator

import (
	"github.com/rayforge/pathtracer/material"
	"github.com/rayforge/pathtracer/mathx"
	"github.com/rayforge/pathtracer/scene"
)

// rayEpsilon offsets a bounce's origin off the surface it left, the
// same role RT_EPSILON plays in the original's secondary-ray spawn.
const rayEpsilon = 1e-4

// maxTraceDistance bounds every primary/secondary ray's traversal; no
// scene geometry in this renderer is ever that far from the origin.
const maxTraceDistance = 1e30

// TraceRay walks ray through s for up to ctx.Params.MaxDepth bounces,
// implementing spec §4.8's nine-step per-bounce sequence: traverse,
// light-proxy short-circuit, miss/background, extract shading data,
// add emission, multiply by base color, Russian roulette, sample BSDF,
// advance the ray. Grounded on
// original_source/RaytracerLib/CPU/CpuScene.cpp's TraceRay_Single.
func TraceRay(s *scene.Scene, ray mathx.Ray, ctx *Context) mathx.Vec3 {
	currentRay := ray
	result := mathx.Vec3{}
	throughput := mathx.NewVec3(1, 1, 1)

	for depth := 0; depth < ctx.Params.MaxDepth; depth++ {
		hit := s.Traverse(currentRay, maxTraceDistance, ctx.Time)

		if !hit.Found {
			result = result.Add(throughput.Mul(s.GetBackgroundColor(currentRay)))
			break
		}

		if l, ok := s.IsLightHit(hit); ok {
			radiance, _ := l.GetRadiance(currentRay.Dir, currentRay.GetAtDistance(hit.Distance))
			result = result.Add(throughput.Mul(radiance))
			break
		}

		shadingData := s.ExtractShadingData(currentRay, hit, ctx.Time)
		if shadingData.Material == nil {
			break
		}

		result = result.Add(throughput.Mul(shadingData.Material.Emission))

		param, err := shadingData.Material.Resolve(shadingData.TexCoord)
		if err != nil {
			break
		}
		if param.BaseColor.IsZero() {
			break
		}
		throughput = throughput.Mul(param.BaseColor)

		threshold := throughput.MaxChannel()
		if ctx.Random.GetFloat() > threshold || threshold <= 0 {
			break
		}
		throughput = throughput.Scale(1 / threshold)

		outgoingLocal := worldToLocal(shadingData.Tangent, shadingData.Binormal, shadingData.Normal, currentRay.Dir.Neg())
		sample := shadingData.Material.SampleBSDF(outgoingLocal, ctx.Random, param)
		if !sample.Valid {
			break
		}
		throughput = throughput.Mul(sample.Weight)

		incomingWorld := localToWorld(shadingData.Tangent, shadingData.Binormal, shadingData.Normal, sample.IncomingDir).Normalized()
		origin := incomingWorld.MulAdd(rayEpsilon, shadingData.Position)
		currentRay = mathx.NewRay(origin, incomingWorld)

		tallyBounce(ctx, sample.Event)
	}

	return result
}

func tallyBounce(ctx *Context, event material.EventType) {
	switch event {
	case material.EventDiffuseReflection:
		ctx.Counters.DiffuseRays++
	case material.EventSpecularReflection, material.EventGlossyReflection:
		ctx.Counters.ReflectionRays++
	case material.EventSpecularTransmission:
		ctx.Counters.TransparencyRays++
	}
}

// worldToLocal projects a world-space unit vector into the tangent
// frame (tangent=+X, binormal=+Y, normal=+Z), matching spec §4.6's
// tangent-frame convention.
func worldToLocal(tangent, binormal, normal, v mathx.Vec3) mathx.Vec3 {
	return mathx.NewVec3(v.Dot(tangent), v.Dot(binormal), v.Dot(normal))
}

// localToWorld is worldToLocal's inverse: it reconstructs a world-space
// vector from its tangent-frame components.
func localToWorld(tangent, binormal, normal, v mathx.Vec3) mathx.Vec3 {
	return tangent.Scale(v.X).Add(binormal.Scale(v.Y)).Add(normal.Scale(v.Z))
}
