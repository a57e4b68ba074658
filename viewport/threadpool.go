package viewport

import (
	"runtime"
	"sync"
)

// tile identifies one unit of parallel work: a 32x32 (or smaller, at
// the image edges) rectangle plus the logical thread slot it was
// handed to, matching spec §4.9 step 1's "(tile_x, tile_y, thread_id)".
type tile struct {
	x, y, w, h int
	threadID   int
}

const tileSize = 32

// tilesForSize computes the tile grid covering a width x height target,
// assigning each tile a thread_id in [0, workers) round-robin the same
// way the original's pool hands out tiles to whichever worker claims
// the next counter value.
func tilesForSize(width, height, workers int) []tile {
	var tiles []tile
	id := 0
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			w := min(tileSize, width-x)
			h := min(tileSize, height-y)
			tiles = append(tiles, tile{x: x, y: y, w: w, h: h, threadID: id % workers})
			id++
		}
	}
	return tiles
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// numWorkers resolves a requested worker count to hardware concurrency
// when unset, mirroring caire's own Image.Workers clamp in exec.go.
func numWorkers(requested int) int {
	if requested <= 0 || requested > runtime.NumCPU() {
		return runtime.NumCPU()
	}
	return requested
}

// runTiles dispatches tiles to a pool of goroutines, each draining the
// shared tile channel until it is closed, the same
// producer-closes-channel-then-WaitGroup idiom exec.go's Execute uses
// to fan image-resize jobs out to workers.
func runTiles(tiles []tile, workers int, run func(t tile)) {
	ch := make(chan tile)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for t := range ch {
				run(t)
			}
		}()
	}

	for _, t := range tiles {
		ch <- t
	}
	close(ch)
	wg.Wait()
}
