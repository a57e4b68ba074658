// Package traversal implements the generic single-ray and 8-wide packet
// BVH walkers shared by every object type (scene, mesh), parameterized
// over a Traversable leaf handler rather than a class hierarchy.
// Grounded on original_source/RaytracerLib/Traversal/Traversal_Single.h
// and Traversal_Packet.cpp/.h.
package traversal

import "sync/atomic"

// Counters tallies traversal work for the per-frame stats the viewport
// publishes (spec §9 design note), matching
// RaytracerLib/Rendering/Counters.h's numRayBoxTests/numPassedRayBoxTests.
type Counters struct {
	RayBoxTests            uint64
	PassedRayBoxTests      uint64
	RayTriangleTests       uint64
	PassedRayTriangleTests uint64
}

// Add accumulates another Counters' tallies atomically, used when
// per-thread counters are folded into a frame-wide total.
func (c *Counters) Add(other Counters) {
	atomic.AddUint64(&c.RayBoxTests, other.RayBoxTests)
	atomic.AddUint64(&c.PassedRayBoxTests, other.PassedRayBoxTests)
	atomic.AddUint64(&c.RayTriangleTests, other.RayTriangleTests)
	atomic.AddUint64(&c.PassedRayTriangleTests, other.PassedRayTriangleTests)
}
