package traversal

import (
	"github.com/rayforge/pathtracer/bvh"
	"github.com/rayforge/pathtracer/mathx"
)

// Leaf is implemented by any object whose own BVH this walker can
// descend: scene (over object boxes), mesh (over triangle boxes). It is
// handed the node being visited and must test/record hits against
// context's evolving max distance itself.
type Leaf interface {
	TraverseLeaf(ctx *SingleContext, node bvh.Node)
}

// SingleContext carries the ray and the evolving closest-hit distance
// through a single-ray walk, plus the counters it should tally into.
type SingleContext struct {
	Ray      mathx.Ray
	MaxDist  float32
	Counters Counters
}

// TraverseSingle walks tree front-to-back with a single ray, dispatching
// every leaf node to leaf.TraverseLeaf. Matches
// GenericTraverse_Single's iterative, near-child-first stack walk.
func TraverseSingle(tree *bvh.BVH, ctx *SingleContext, leaf Leaf) {
	if tree.Empty() {
		return
	}

	var stack [bvh.MaxDepth]uint32
	stackSize := 0
	current := uint32(0)

	for {
		node := tree.Nodes[current]

		if node.IsLeaf() {
			leaf.TraverseLeaf(ctx, node)
		} else {
			childAIdx := node.FirstChild
			childBIdx := node.FirstChild + 1
			childA := tree.Nodes[childAIdx]
			childB := tree.Nodes[childBIdx]

			distA, hitA := boxHit(ctx.Ray, childA.Box(), ctx.MaxDist)
			distB, hitB := boxHit(ctx.Ray, childB.Box(), ctx.MaxDist)

			ctx.Counters.RayBoxTests += 2
			if hitA {
				ctx.Counters.PassedRayBoxTests++
			}
			if hitB {
				ctx.Counters.PassedRayBoxTests++
			}

			if hitA && hitB {
				if distB < distA {
					childAIdx, childBIdx = childBIdx, childAIdx
				}
				stack[stackSize] = childBIdx
				stackSize++
				current = childAIdx
				continue
			}
			if hitA {
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

// boxHit intersects ray against box, reporting the entry distance and
// whether it's closer than maxDist (the "box occlusion" test in the
// original).
func boxHit(r mathx.Ray, box mathx.Box, maxDist float32) (dist float32, hit bool) {
	tNear, _, boxHit := mathx.IntersectRayBox(r, box, maxDist)
	return tNear, boxHit && tNear < maxDist
}
