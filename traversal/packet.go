package traversal

import (
	"github.com/rayforge/pathtracer/bvh"
	"github.com/rayforge/pathtracer/mathx"
)

// PacketLeaf receives whichever lanes of the packet are still active
// when a leaf node is reached, the packet analogue of Leaf.
type PacketLeaf interface {
	TraverseLeafPacket(ctx *PacketContext, node bvh.Node)
}

// PacketContext carries the eight coherent rays and the evolving
// per-lane max distance through a packet walk. It shares the single-ray
// integrator's shading model (no secondary RayStream output -- the
// original's own RayStream output for packet-traced rays is never filled
// in either), matching spec §9's guidance to keep packet traversal
// simple rather than chase the original's SIMD plumbing.
type PacketContext struct {
	Packet   mathx.RayPacket8
	Counters Counters
}

// TraversePacket walks tree once for all eight rays simultaneously,
// testing each lane against the node box and only descending while at
// least one lane remains active (PacketContext.Packet.AnyActive), the
// software equivalent of TestRayPacket's per-lane SIMD box test.
func TraversePacket(tree *bvh.BVH, ctx *PacketContext, leaf PacketLeaf) {
	if tree.Empty() || !ctx.Packet.AnyActive() {
		return
	}

	var stack [bvh.MaxDepth]uint32
	stackSize := 0
	current := uint32(0)

	for {
		node := tree.Nodes[current]

		if node.IsLeaf() {
			leaf.TraverseLeafPacket(ctx, node)
		} else {
			childAIdx := node.FirstChild
			childBIdx := node.FirstChild + 1
			childA := tree.Nodes[childAIdx]
			childB := tree.Nodes[childBIdx]

			hitA := packetHitsBox(ctx, childA.Box())
			hitB := packetHitsBox(ctx, childB.Box())

			if hitA {
				if hitB {
					stack[stackSize] = childBIdx
					stackSize++
				}
				current = childAIdx
				continue
			}
			if hitB {
				current = childBIdx
				continue
			}
		}

		if stackSize == 0 {
			return
		}
		stackSize--
		current = stack[stackSize]
	}
}

// packetHitsBox reports whether any active lane's ray intersects box
// within its current max distance, and tallies the per-lane box tests.
func packetHitsBox(ctx *PacketContext, box mathx.Box) bool {
	any := false
	for i := 0; i < 8; i++ {
		if !ctx.Packet.Active[i] {
			continue
		}
		ray := mathx.Ray{
			Origin: ctx.Packet.Origin.Lane(i),
			Dir:    ctx.Packet.Dir.Lane(i),
			InvDir: ctx.Packet.InvDir.Lane(i),
		}
		ctx.Counters.RayBoxTests++
		_, _, hit := mathx.IntersectRayBox(ray, box, ctx.Packet.MaxDist[i])
		if hit {
			ctx.Counters.PassedRayBoxTests++
			any = true
		}
	}
	return any
}
