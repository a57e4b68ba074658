package mathx

import "math"

// Vec3x8 is a structure-of-arrays 3-vector holding 8 lanes, the software
// equivalent of the original renderer's AVX-based Vector3x8. Go has no
// portable explicit SIMD intrinsics, so each lane op is a plain loop; the
// Go compiler auto-vectorizes these on amd64/arm64 when the loop body is
// simple enough, which is why the data stays laid out SoA rather than an
// array of eight Vec3 values.
type Vec3x8 struct {
	X, Y, Z [8]float32
}

func BroadcastVec3x8(v Vec3) Vec3x8 {
	var r Vec3x8
	for i := 0; i < 8; i++ {
		r.X[i], r.Y[i], r.Z[i] = v.X, v.Y, v.Z
	}
	return r
}

func (a Vec3x8) Add(b Vec3x8) Vec3x8 {
	var r Vec3x8
	for i := 0; i < 8; i++ {
		r.X[i] = a.X[i] + b.X[i]
		r.Y[i] = a.Y[i] + b.Y[i]
		r.Z[i] = a.Z[i] + b.Z[i]
	}
	return r
}

func (a Vec3x8) Sub(b Vec3x8) Vec3x8 {
	var r Vec3x8
	for i := 0; i < 8; i++ {
		r.X[i] = a.X[i] - b.X[i]
		r.Y[i] = a.Y[i] - b.Y[i]
		r.Z[i] = a.Z[i] - b.Z[i]
	}
	return r
}

func (a Vec3x8) Mul(b Vec3x8) Vec3x8 {
	var r Vec3x8
	for i := 0; i < 8; i++ {
		r.X[i] = a.X[i] * b.X[i]
		r.Y[i] = a.Y[i] * b.Y[i]
		r.Z[i] = a.Z[i] * b.Z[i]
	}
	return r
}

// Dot8 returns the per-lane dot product.
func (a Vec3x8) Dot8(b Vec3x8) (out [8]float32) {
	for i := 0; i < 8; i++ {
		out[i] = a.X[i]*b.X[i] + a.Y[i]*b.Y[i] + a.Z[i]*b.Z[i]
	}
	return
}

func (a Vec3x8) Cross(b Vec3x8) Vec3x8 {
	var r Vec3x8
	for i := 0; i < 8; i++ {
		r.X[i] = a.Y[i]*b.Z[i] - a.Z[i]*b.Y[i]
		r.Y[i] = a.Z[i]*b.X[i] - a.X[i]*b.Z[i]
		r.Z[i] = a.X[i]*b.Y[i] - a.Y[i]*b.X[i]
	}
	return r
}

func MinVec3x8(a, b Vec3x8) Vec3x8 {
	var r Vec3x8
	for i := 0; i < 8; i++ {
		r.X[i] = min32(a.X[i], b.X[i])
		r.Y[i] = min32(a.Y[i], b.Y[i])
		r.Z[i] = min32(a.Z[i], b.Z[i])
	}
	return r
}

func MaxVec3x8(a, b Vec3x8) Vec3x8 {
	var r Vec3x8
	for i := 0; i < 8; i++ {
		r.X[i] = max32(a.X[i], b.X[i])
		r.Y[i] = max32(a.Y[i], b.Y[i])
		r.Z[i] = max32(a.Z[i], b.Z[i])
	}
	return r
}

func ReciprocalLanes(a [8]float32) (out [8]float32) {
	for i := 0; i < 8; i++ {
		out[i] = reciprocal(a[i])
	}
	return
}

// Lane extracts a single Vec3 from lane i.
func (a Vec3x8) Lane(i int) Vec3 { return Vec3{a.X[i], a.Y[i], a.Z[i]} }

// SetLane stores v into lane i.
func (a *Vec3x8) SetLane(i int, v Vec3) {
	a.X[i], a.Y[i], a.Z[i] = v.X, v.Y, v.Z
}

// TransposeVec3x8 takes eight independent Vec3 values and packs them into
// one SoA Vec3x8, matching the original Transpose8x8-style helper used
// while assembling ray packets.
func TransposeVec3x8(v [8]Vec3) Vec3x8 {
	var r Vec3x8
	for i := 0; i < 8; i++ {
		r.SetLane(i, v[i])
	}
	return r
}

// RayPacket8 holds eight coherent rays in SoA layout for the packet
// traversal walker.
type RayPacket8 struct {
	Origin    Vec3x8
	Dir       Vec3x8
	InvDir    Vec3x8
	Active    [8]bool
	MaxDist   [8]float32
	OctantIdx [8]int // sign bits of Dir, used to pick front-to-back child order
}

func NewRayPacket8(rays [8]Ray) RayPacket8 {
	var origins, dirs, invDirs [8]Vec3
	var p RayPacket8
	for i := 0; i < 8; i++ {
		origins[i] = rays[i].Origin
		dirs[i] = rays[i].Dir
		invDirs[i] = rays[i].InvDir
		p.Active[i] = true
		p.MaxDist[i] = float32(infinity)
		p.OctantIdx[i] = octant(rays[i].Dir)
	}
	p.Origin = TransposeVec3x8(origins)
	p.Dir = TransposeVec3x8(dirs)
	p.InvDir = TransposeVec3x8(invDirs)
	return p
}

func octant(dir Vec3) int {
	idx := 0
	if dir.X < 0 {
		idx |= 1
	}
	if dir.Y < 0 {
		idx |= 2
	}
	if dir.Z < 0 {
		idx |= 4
	}
	return idx
}

// AnyActive reports whether at least one ray in the packet is still live,
// used by inner nodes to decide whether to descend (spec §4.4).
func (p RayPacket8) AnyActive() bool {
	for _, a := range p.Active {
		if a {
			return true
		}
	}
	return false
}

var infinity = math.Inf(1)
