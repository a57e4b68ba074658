package viewport

import (
	"sync"

	"github.com/rayforge/pathtracer/bitmap"
	"github.com/rayforge/pathtracer/integrator"
	"github.com/rayforge/pathtracer/mathx"
	"github.com/rayforge/pathtracer/scene"
)

// FrameCounters pairs a frame id with the summed per-thread counters
// collected while rendering it, the channel payload spec §9's design
// note describes as "publishes counters per frame to a consumer behind
// the boundary".
type FrameCounters struct {
	FrameID  uint64
	Counters integrator.Counters
}

// Viewport owns the accumulation buffer and drives the tiled,
// multi-threaded render loop described by spec §4.9. It is not safe
// for concurrent calls to RenderFrame; tiles within a single call run
// concurrently but calls themselves must be sequential, matching the
// original's tile-barrier-per-frame model.
type Viewport struct {
	Width, Height  int
	Workers        int
	AAJitterSpread float32

	sum        *bitmap.FloatImage
	numSamples int
	frameID    uint64

	// CountersCh, if non-nil, receives one FrameCounters per
	// RenderFrame call; sends never block the render (spec §9: the
	// collector must stay "behind the boundary").
	CountersCh chan<- FrameCounters
}

// NewViewport allocates a zeroed accumulation buffer of the given
// target size with a default anti-aliasing jitter spread of 1 pixel.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		Width:          width,
		Height:         height,
		AAJitterSpread: 1,
		sum:            bitmap.NewFloatImage(width, height),
	}
}

// NumSamples reports how many samples have been accumulated per pixel
// so far.
func (vp *Viewport) NumSamples() int { return vp.numSamples }

// FrameID reports the current frame counter.
func (vp *Viewport) FrameID() uint64 { return vp.frameID }

// RenderFrame draws exactly one sample per pixel into the accumulation
// buffer, implementing spec §4.9 steps 1-3 and 5: compute the tile
// grid, dispatch one task per tile across the worker pool, jitter and
// trace one sample per pixel within each tile, then advance frame_id
// and the sample count. Grounded on
// original_source/RaytracerLib/CPU/CpuRaytracing.cpp's per-frame tile
// dispatch.
func (vp *Viewport) RenderFrame(s *scene.Scene, camera scene.RayCamera, params integrator.Params) {
	workers := numWorkers(vp.Workers)
	tiles := tilesForSize(vp.Width, vp.Height, workers)

	var totals integrator.Counters
	var totalsMu sync.Mutex

	runTiles(tiles, workers, func(t tile) {
		seed := vp.frameID ^ (uint64(t.threadID) << 16)
		ctx := integrator.NewContext(params, seed)
		vp.renderTile(t, s, camera, ctx)

		totalsMu.Lock()
		totals.PrimaryRays += ctx.Counters.PrimaryRays
		totals.ShadowRays += ctx.Counters.ShadowRays
		totals.ReflectionRays += ctx.Counters.ReflectionRays
		totals.TransparencyRays += ctx.Counters.TransparencyRays
		totals.DiffuseRays += ctx.Counters.DiffuseRays
		totalsMu.Unlock()
	})

	if vp.CountersCh != nil {
		select {
		case vp.CountersCh <- FrameCounters{FrameID: vp.frameID, Counters: totals}:
		default:
		}
	}

	vp.frameID++
	vp.numSamples++
}

// renderTile draws one jittered sample for every pixel in t, matching
// spec §4.9 step 3.
func (vp *Viewport) renderTile(t tile, s *scene.Scene, camera scene.RayCamera, ctx *integrator.Context) {
	for dy := 0; dy < t.h; dy++ {
		for dx := 0; dx < t.w; dx++ {
			x := t.x + dx
			y := t.y + dy
			ctx.Counters.PrimaryRays++

			jitterX := (ctx.Random.GetFloat() - 0.5) * vp.AAJitterSpread
			jitterY := (ctx.Random.GetFloat() - 0.5) * vp.AAJitterSpread

			u := (float32(x) + 0.5 + jitterX) / float32(vp.Width)
			v := (float32(y) + 0.5 + jitterY) / float32(vp.Height)

			ray := camera.GenerateRay(mathx.Vec2{X: u, Y: v}, ctx.Random)
			radiance := integrator.TraceRay(s, ray, ctx)

			vp.sum.Set(x, y, vp.sum.At(x, y).Add(radiance))
		}
	}
}

// Present runs the postprocess chain over the current accumulation
// buffer and returns the display-ready bitmap, matching spec §4.9 step
// 4. It does not mutate the accumulation buffer, so rendering may
// continue (and later Present calls see a less noisy image).
func (vp *Viewport) Present(params PostprocessParams, rng *mathx.Random) (*bitmap.Bitmap, error) {
	return Postprocess(vp.sum, vp.numSamples, params, rng)
}
