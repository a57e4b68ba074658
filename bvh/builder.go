package bvh

import (
	"errors"
	"sort"
	"time"

	"github.com/rayforge/pathtracer/internal/logx"
	"github.com/rayforge/pathtracer/mathx"
)

var ErrEmptyInput = errors.New("bvh: cannot build from zero boxes")

// BuildParams configures the SAH builder, matching
// BVHBuilder::BuildingParams.
type BuildParams struct {
	MaxLeafNodeSize uint32
}

func DefaultBuildParams() BuildParams {
	return BuildParams{MaxLeafNodeSize: 2}
}

const numAxes = 3
const maxFloat32 = 3.40282346638528859811704183484516925440e+38

// Build performs a top-down SAH construction over the input boxes,
// completing the algorithm BVHBuilder::BuildNode left unfinished
// (original marks the leaf case with `// TODO generate leaf node` and
// never closes the recursion). The structure -- axis pre-sort, cumulative
// left/right SAH sweep, best-split selection -- follows the original;
// this module adds the recursive descent, leaf emission, and node-array
// assembly spec §4.3 requires. Children of an inner node are always
// stored as two node records at consecutive indices firstChild and
// firstChild+1, matching the node layout invariant (spec §3).
func Build(boxes []mathx.Box, params BuildParams) (*BVH, error) {
	n := uint32(len(boxes))
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if params.MaxLeafNodeSize == 0 {
		params.MaxLeafNodeSize = 1
	}
	start := time.Now()

	b := &builder{boxes: boxes, params: params}
	b.order = make([]uint32, n)
	for i := range b.order {
		b.order[i] = uint32(i)
	}

	var sorted [numAxes][]uint32
	for axis := 0; axis < numAxes; axis++ {
		sorted[axis] = append([]uint32(nil), b.order...)
		a := axis
		sort.SliceStable(sorted[axis], func(i, j int) bool {
			return boxes[sorted[axis][i]].Center().Component(a) < boxes[sorted[axis][j]].Center().Component(a)
		})
	}

	// the root occupies slot 0 unconditionally, matching BVH::GetNodes'
	// "root at index 0" contract even for a single-leaf tree.
	b.nodes = append(b.nodes, Node{})
	b.buildInto(0, sorted, 1)

	logx.Default().Info("bvh build complete: %d leaves, %d nodes in %s", n, len(b.nodes), time.Since(start))

	return &BVH{Nodes: b.nodes, LeafOrder: b.order}, nil
}

type builder struct {
	boxes   []mathx.Box
	params  BuildParams
	nodes   []Node
	order   []uint32 // final leaf permutation, filled as leaves are emitted
	leafPos uint32
}

// buildInto writes the node for sortedLeaves directly into b.nodes[index],
// recursing into freshly reserved slots for any children.
func (b *builder) buildInto(index uint32, sortedLeaves [numAxes][]uint32, depth uint32) {
	count := uint32(len(sortedLeaves[0]))

	box := mathx.EmptyBox()
	for _, idx := range sortedLeaves[0] {
		box = box.Union(b.boxes[idx])
	}

	makeLeaf := func() {
		start := b.leafPos
		for _, idx := range sortedLeaves[0] {
			b.order[b.leafPos] = idx
			b.leafPos++
		}
		b.nodes[index] = makeLeafNode(box, start, count)
	}

	if count <= b.params.MaxLeafNodeSize || depth >= MaxDepth {
		makeLeaf()
		return
	}

	axis, split, bestCost := b.findBestSplit(sortedLeaves)

	// no split beats just emitting this node as one leaf.
	singleLeafCost := box.SurfaceArea() * float32(count)
	if bestCost >= singleLeafCost {
		makeLeaf()
		return
	}

	leftSet := sortedLeaves[axis][:split]
	rightSet := sortedLeaves[axis][split:]

	leftSorted := partitionByMembership(sortedLeaves, leftSet)
	rightSorted := partitionByMembership(sortedLeaves, rightSet)

	firstChild := uint32(len(b.nodes))
	b.nodes = append(b.nodes, Node{}, Node{})
	b.nodes[index] = makeInnerNode(box, firstChild, uint32(axis))

	b.buildInto(firstChild, leftSorted, depth+1)
	b.buildInto(firstChild+1, rightSorted, depth+1)
}

// findBestSplit evaluates every axis and every split position using the
// cumulative left/right SAH areas, mirroring BVHBuilder::BuildNode's
// sweep.
func (b *builder) findBestSplit(sortedLeaves [numAxes][]uint32) (axis int, splitPos int, cost float32) {
	n := len(sortedLeaves[0])
	bestCost := float32(maxFloat32)
	bestAxis := 0
	bestSplit := n / 2

	leftBoxes := make([]mathx.Box, n)
	rightBoxes := make([]mathx.Box, n)

	for a := 0; a < numAxes; a++ {
		indices := sortedLeaves[a]

		leftBox := b.boxes[indices[0]]
		leftBoxes[0] = leftBox
		for i := 1; i < n; i++ {
			leftBox = leftBox.Union(b.boxes[indices[i]])
			leftBoxes[i] = leftBox
		}

		rightBox := b.boxes[indices[n-1]]
		rightBoxes[n-1] = rightBox
		for i := n - 2; i >= 0; i-- {
			rightBox = rightBox.Union(b.boxes[indices[i]])
			rightBoxes[i] = rightBox
		}

		for split := 1; split < n; split++ {
			leftArea := leftBoxes[split-1].SurfaceArea()
			rightArea := rightBoxes[split].SurfaceArea()
			leftCount := float32(split)
			rightCount := float32(n - split)

			totalCost := leftArea*leftCount + rightArea*rightCount
			if totalCost < bestCost {
				bestCost = totalCost
				bestAxis = a
				bestSplit = split
			}
		}
	}

	return bestAxis, bestSplit, bestCost
}

// partitionByMembership filters every axis-sorted slice down to the
// members of subset, preserving each slice's existing sort order. subset
// need not itself be sorted.
func partitionByMembership(sortedLeaves [numAxes][]uint32, subset []uint32) [numAxes][]uint32 {
	member := make(map[uint32]bool, len(subset))
	for _, idx := range subset {
		member[idx] = true
	}
	var out [numAxes][]uint32
	for axis := 0; axis < numAxes; axis++ {
		filtered := make([]uint32, 0, len(subset))
		for _, idx := range sortedLeaves[axis] {
			if member[idx] {
				filtered = append(filtered, idx)
			}
		}
		out[axis] = filtered
	}
	return out
}
