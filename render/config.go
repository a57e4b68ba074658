// Package render holds cmd/pathtracer's shared configuration struct
// and its built-in demo scenes, so the CLI and the test suite draw
// from one source of sample scenes instead of duplicating scene-graph
// construction. Grounded on caire's own `Processor`/`Image` options
// structs (plain value types, no config library) in exec.go/process.go.
package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rayforge/pathtracer/integrator"
	"github.com/rayforge/pathtracer/viewport"
)

// Config is the programmatic equivalent of cmd/pathtracer's flag set:
// everything needed to render one image and nothing about how it gets
// there (CLI, JSON file, or a caller constructing it directly).
type Config struct {
	Width, Height int
	Samples       int
	MaxDepth      int
	OutputPath    string

	Tonemapper  viewport.Tonemapper
	Exposure    float32
	BloomFactor float32
	BloomSize   float32

	Scene string // name of a built-in demo scene, see Demo
}

// DefaultConfig matches the single-sample, ACES-tonemapped defaults
// spec §8's end-to-end scenarios assume when a test doesn't override
// them.
func DefaultConfig() Config {
	return Config{
		Width:      512,
		Height:     512,
		Samples:    1,
		MaxDepth:   integrator.DefaultParams().MaxDepth,
		OutputPath: "render.png",
		Tonemapper: viewport.ACES,
		Scene:      "sphere",
	}
}

// LoadConfig reads a JSON-encoded Config from path, the optional
// scene-script on-ramp SPEC_FULL.md's configuration section describes;
// fields absent from the file keep DefaultConfig's values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("render: read config %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("render: parse config %q: %w", path, err)
	}
	return cfg, nil
}

// PostprocessParams derives a viewport.PostprocessParams from the
// config's flattened fields.
func (c Config) PostprocessParams() viewport.PostprocessParams {
	p := viewport.DefaultPostprocessParams()
	p.Tonemapper = c.Tonemapper
	p.Exposure = c.Exposure
	p.BloomFactor = c.BloomFactor
	p.BloomSize = c.BloomSize
	return p
}
