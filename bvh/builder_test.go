package bvh

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/mathx"
)

func randomBoxes(n int, seed int64) []mathx.Box {
	r := rand.New(rand.NewSource(seed))
	boxes := make([]mathx.Box, n)
	for i := range boxes {
		cx, cy, cz := r.Float32()*100-50, r.Float32()*100-50, r.Float32()*100-50
		he := r.Float32()*2 + 0.1
		boxes[i] = mathx.Box{
			Min: mathx.NewVec3(cx-he, cy-he, cz-he),
			Max: mathx.NewVec3(cx+he, cy+he, cz+he),
		}
	}
	return boxes
}

func TestBuild_RejectsEmptyInput(t *testing.T) {
	assert := assert.New(t)

	_, err := Build(nil, DefaultBuildParams())
	assert.ErrorIs(err, ErrEmptyInput)
}

func TestBuild_RootAtIndexZero(t *testing.T) {
	assert := assert.New(t)

	boxes := randomBoxes(1, 1)
	tree, err := Build(boxes, DefaultBuildParams())
	assert.NoError(err)
	assert.Equal(1, tree.NumNodes())
	assert.True(tree.Root().IsLeaf())
}

func TestBuild_CoverageEveryPrimitiveHasALeaf(t *testing.T) {
	assert := assert.New(t)

	boxes := randomBoxes(200, 42)
	tree, err := Build(boxes, DefaultBuildParams())
	assert.NoError(err)

	covered := make([]bool, len(boxes))
	var walk func(idx uint32)
	walk = func(idx uint32) {
		n := tree.Nodes[idx]
		if n.IsLeaf() {
			for i := uint32(0); i < n.LeafCount(); i++ {
				primIdx := tree.LeafOrder[n.FirstChild+i]
				center := boxes[primIdx].Center()
				assert.True(n.Box().Contains(center))
				covered[primIdx] = true
			}
			return
		}
		walk(n.FirstChild)
		walk(n.FirstChild + 1)
	}
	walk(0)

	for i, c := range covered {
		assert.True(c, "primitive %d not covered by any leaf", i)
	}
}

func TestBuild_InnerNodeBoxIsUnionOfChildren(t *testing.T) {
	assert := assert.New(t)

	boxes := randomBoxes(200, 7)
	tree, err := Build(boxes, DefaultBuildParams())
	assert.NoError(err)

	var walk func(idx uint32)
	walk = func(idx uint32) {
		n := tree.Nodes[idx]
		if n.IsLeaf() {
			return
		}
		left := tree.Nodes[n.FirstChild]
		right := tree.Nodes[n.FirstChild+1]
		union := left.Box().Union(right.Box())
		assert.Equal(n.Box().Min, union.Min)
		assert.Equal(n.Box().Max, union.Max)
		walk(n.FirstChild)
		walk(n.FirstChild + 1)
	}
	walk(0)
}

func TestBuild_IsDeterministic(t *testing.T) {
	assert := assert.New(t)

	boxes := randomBoxes(150, 99)
	a, err := Build(boxes, DefaultBuildParams())
	assert.NoError(err)
	b, err := Build(boxes, DefaultBuildParams())
	assert.NoError(err)

	assert.Equal(a.Nodes, b.Nodes)
	assert.Equal(a.LeafOrder, b.LeafOrder)
}

func TestBuild_SkipsSplitWhenItDoesNotBeatSingleLeafCost(t *testing.T) {
	assert := assert.New(t)

	// Two boxes stacked at the same centroid: any split still has to
	// cover the same bounds on both sides, so its cost can never beat
	// just emitting one leaf. With MaxLeafNodeSize below the leaf count,
	// only the cost comparison (not the leaf-size check) can produce a
	// single-leaf root.
	boxes := []mathx.Box{
		{Min: mathx.NewVec3(-1, -1, -1), Max: mathx.NewVec3(1, 1, 1)},
		{Min: mathx.NewVec3(-1, -1, -1), Max: mathx.NewVec3(1, 1, 1)},
	}
	tree, err := Build(boxes, BuildParams{MaxLeafNodeSize: 1})
	assert.NoError(err)
	assert.Equal(1, tree.NumNodes())
	assert.True(tree.Root().IsLeaf())
	assert.Equal(uint32(2), tree.Root().LeafCount())
}

func TestBuild_RespectsMaxDepthAndLeafSize(t *testing.T) {
	assert := assert.New(t)

	boxes := randomBoxes(1000, 5)
	params := BuildParams{MaxLeafNodeSize: 4}
	tree, err := Build(boxes, params)
	assert.NoError(err)

	stats := tree.CalculateStats()
	assert.LessOrEqual(stats.MaxDepth, uint32(MaxDepth))
	assert.Greater(stats.TotalNodesArea, 0.0)
	for k, count := range stats.LeavesCountHistogram {
		if uint32(k) > params.MaxLeafNodeSize {
			assert.Equal(uint32(0), count)
		}
	}
}
