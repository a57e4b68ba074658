package bvh

// Stats summarizes a built tree's shape, grounded on BVH::Stats /
// BVH::CalculateStats.
type Stats struct {
	MinDepth             uint32
	MaxDepth             uint32
	AvgDepth             float64
	TotalNodesArea       float64
	TotalNodesVolume     float64
	LeavesCountHistogram []uint32 // indexed by leaf primitive count
}

// CalculateStats walks the whole tree accumulating per-node area/volume
// and leaf-depth statistics.
func (b *BVH) CalculateStats() Stats {
	if b.Empty() {
		return Stats{}
	}

	acc := &statsAccumulator{
		minDepth: ^uint32(0),
	}
	acc.visit(b, 0, 1)

	var avg float64
	if acc.leafCount > 0 {
		avg = acc.depthSum / float64(acc.leafCount)
	}

	return Stats{
		MinDepth:             acc.minDepth,
		MaxDepth:             acc.maxDepth,
		AvgDepth:             avg,
		TotalNodesArea:       acc.totalArea,
		TotalNodesVolume:     acc.totalVolume,
		LeavesCountHistogram: acc.histogram,
	}
}

type statsAccumulator struct {
	minDepth, maxDepth uint32
	depthSum           float64
	leafCount          uint64
	totalArea          float64
	totalVolume        float64
	histogram          []uint32
}

func (a *statsAccumulator) visit(b *BVH, nodeIndex uint32, depth uint32) {
	node := b.Nodes[nodeIndex]
	box := node.Box()

	a.totalArea += float64(box.SurfaceArea())
	a.totalVolume += float64(box.Volume())

	leafCount := node.LeafCount()
	for uint32(len(a.histogram)) <= leafCount {
		a.histogram = append(a.histogram, 0)
	}
	a.histogram[leafCount]++

	if node.IsLeaf() {
		if depth < a.minDepth {
			a.minDepth = depth
		}
		if depth > a.maxDepth {
			a.maxDepth = depth
		}
		a.depthSum += float64(depth)
		a.leafCount++
		return
	}

	a.visit(b, node.FirstChild, depth+1)
	a.visit(b, node.FirstChild+1, depth+1)
}
