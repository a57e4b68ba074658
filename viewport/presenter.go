package viewport

import "github.com/rayforge/pathtracer/bitmap"

// Presenter is the external "window surface" contract (spec §6):
// something that can display a tonemapped frame. cmd/pathtracer wires
// an ebiten-backed Presenter behind the -live flag; tests and headless
// runs use MemoryPresenter.
type Presenter interface {
	Present(frame *bitmap.Bitmap) error
}

// MemoryPresenter retains the most recently presented frame instead of
// drawing it anywhere, the no-op collaborator spec §9 calls for at the
// render/display boundary so the render loop can be exercised without
// a window.
type MemoryPresenter struct {
	Last  *bitmap.Bitmap
	Count int
}

func (m *MemoryPresenter) Present(frame *bitmap.Bitmap) error {
	m.Last = frame
	m.Count++
	return nil
}
