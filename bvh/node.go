// Package bvh implements the renderer's binary bounding-volume
// hierarchy: node layout, the top-down SAH builder, stats, and binary
// persistence. Grounded on original_source/RaytracerLib/BVH.h/.cpp and
// BVHBuilder.cpp.
package bvh

import "github.com/rayforge/pathtracer/mathx"

const MaxDepth = 64

// Node is a 32-byte record: {min corner, first-child-or-leaf-start,
// max corner, split-axis (2 bits) + leaf-count (30 bits)}. A node is a
// leaf iff LeafCount != 0; an inner node's two children are stored
// consecutively starting at FirstChild.
type Node struct {
	Min         mathx.Vec3
	FirstChild  uint32
	Max         mathx.Vec3
	axisAndLeaf uint32
}

const leafCountMask = 0x3FFFFFFF

func packAxisAndLeaf(axis uint32, leafCount uint32) uint32 {
	return (axis << 30) | (leafCount & leafCountMask)
}

// IsLeaf reports whether this node stores primitives directly.
func (n Node) IsLeaf() bool { return n.LeafCount() != 0 }

// LeafCount returns the number of primitives referenced by a leaf node,
// or 0 for an inner node.
func (n Node) LeafCount() uint32 { return n.axisAndLeaf & leafCountMask }

// SplitAxis returns the axis (0=X, 1=Y, 2=Z) used to order this node's
// children front-to-back during traversal.
func (n Node) SplitAxis() uint32 { return n.axisAndLeaf >> 30 }

// Box returns the node's bounding box.
func (n Node) Box() mathx.Box { return mathx.Box{Min: n.Min, Max: n.Max} }

func makeLeafNode(box mathx.Box, leafStart, leafCount uint32) Node {
	return Node{
		Min:         box.Min,
		Max:         box.Max,
		FirstChild:  leafStart,
		axisAndLeaf: packAxisAndLeaf(0, leafCount),
	}
}

func makeInnerNode(box mathx.Box, firstChild uint32, axis uint32) Node {
	return Node{
		Min:         box.Min,
		Max:         box.Max,
		FirstChild:  firstChild,
		axisAndLeaf: packAxisAndLeaf(axis, 0),
	}
}

// BVH is an immutable, heap-allocated contiguous array of nodes, rooted
// at index 0. It also carries the leaf order permutation produced by
// the builder so callers can map leaf slots back to source primitives.
type BVH struct {
	Nodes     []Node
	LeafOrder []uint32
}

func (b *BVH) NumNodes() int { return len(b.Nodes) }

func (b *BVH) Root() Node { return b.Nodes[0] }

func (b *BVH) Empty() bool { return len(b.Nodes) == 0 }
