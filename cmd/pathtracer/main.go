package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rayforge/pathtracer/integrator"
	"github.com/rayforge/pathtracer/internal/logx"
	"github.com/rayforge/pathtracer/mathx"
	"github.com/rayforge/pathtracer/render"
	"github.com/rayforge/pathtracer/scene"
	"github.com/rayforge/pathtracer/viewport"
)

const HelpBanner = `
┌─┐┌─┐┌┬┐┬ ┬┌┬┐┬─┐┌─┐┌─┐┌─┐┬─┐
├─┘├─┤ │ ├─┤ │ ├┬┘├─┤│  ├┤ ├┬┘
┴  ┴ ┴ ┴ ┴ ┴ ┴ ┴└─┴ ┴└─┘└─┘┴└─

Offline physically based path tracer.

`

var (
	configPath = flag.String("config", "", "Path to a JSON render config (overrides the other flags when set)")
	sceneName  = flag.String("scene", "sphere", "Built-in demo scene: empty, sphere, cornell")
	width      = flag.Int("width", 512, "Image width")
	height     = flag.Int("height", 512, "Image height")
	samples    = flag.Int("samples", 16, "Samples per pixel")
	maxDepth   = flag.Int("depth", 16, "Maximum bounce depth")
	out        = flag.String("out", "render.png", "Output image path")
	live       = flag.Bool("live", false, "Show a live ebiten preview window while rendering")
	hudFlag    = flag.Bool("hud", false, "Show a tcell counters dashboard while rendering")
	workers    = flag.Int("workers", 0, "Number of render workers (0 = runtime.NumCPU())")
)

func main() {
	log := logx.Default()
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, HelpBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("%v", err)
	}

	s, camera, err := render.Demo(cfg.Scene)
	if err != nil {
		log.Fatal("%v", err)
	}

	vp := viewport.NewViewport(cfg.Width, cfg.Height)
	vp.Workers = *workers

	if *hudFlag {
		dash, err := newDashboard()
		if err != nil {
			log.Fatal("%v", err)
		}
		defer dash.Close()

		countersCh := make(chan viewport.FrameCounters, 1)
		vp.CountersCh = countersCh
		go dash.Run(countersCh)
	}

	params := integrator.Params{MaxDepth: cfg.MaxDepth}

	if *live {
		ep := viewport.NewEbitenPresenter(cfg.Width, cfg.Height)
		go renderLoop(log, vp, s, camera, params, cfg, ep)
		if err := ep.Run("pathtracer"); err != nil {
			log.Fatal("%v", err)
		}
		return
	}

	renderLoop(log, vp, s, camera, params, cfg, &viewport.MemoryPresenter{})
}

func loadConfig() (render.Config, error) {
	if *configPath != "" {
		return render.LoadConfig(*configPath)
	}
	cfg := render.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Samples = *samples
	cfg.MaxDepth = *maxDepth
	cfg.OutputPath = *out
	cfg.Scene = *sceneName
	return cfg, nil
}

// renderLoop drives the sample-accumulation loop: render one frame per
// configured sample, presenting each intermediate result, then save
// the final tonemapped image.
func renderLoop(log *logx.Logger, vp *viewport.Viewport, s *scene.Scene, camera scene.RayCamera, params integrator.Params, cfg render.Config, presenter viewport.Presenter) {
	rng := mathx.NewRandomSeeded(uint64(time.Now().UnixNano()))
	start := time.Now()

	for i := 0; i < cfg.Samples; i++ {
		vp.RenderFrame(s, camera, params)

		frame, err := vp.Present(cfg.PostprocessParams(), rng)
		if err != nil {
			log.Fatal("postprocess failed: %v", err)
		}
		if err := presenter.Present(frame); err != nil {
			log.Error("present failed: %v", err)
		}
		log.Info("sample %d/%d done (%s elapsed)", i+1, cfg.Samples, time.Since(start).Round(time.Millisecond))
	}

	final, err := vp.Present(cfg.PostprocessParams(), rng)
	if err != nil {
		log.Fatal("postprocess failed: %v", err)
	}
	if err := final.Save(cfg.OutputPath); err != nil {
		log.Fatal("failed to save %q: %v", cfg.OutputPath, err)
	}
	log.Info("saved %s", cfg.OutputPath)
}
