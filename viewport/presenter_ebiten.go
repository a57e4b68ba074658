package viewport

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rayforge/pathtracer/bitmap"
)

// EbitenPresenter displays frames in a live window, backing
// cmd/pathtracer's -live flag. Grounded on
// IntuitionAmiga-IntuitionEngine's EbitenOutput: a mutex-protected
// frame buffer written by the render loop and read back by ebiten's
// own Draw callback on its own goroutine.
type EbitenPresenter struct {
	mu     sync.RWMutex
	img    *ebiten.Image
	width  int
	height int
}

// NewEbitenPresenter prepares a presenter for a window sized width x
// height; the window itself opens in Run. Run must be
// called (typically from main, since ebiten owns the OS thread) before
// any Present calls become visible.
func NewEbitenPresenter(width, height int) *EbitenPresenter {
	return &EbitenPresenter{width: width, height: height}
}

// Present copies frame into the window's backing image, matching
// EbitenOutput.UpdateFrame's lock-copy-unlock pattern.
func (p *EbitenPresenter) Present(frame *bitmap.Bitmap) error {
	rgba := image.NewRGBA(image.Rect(0, 0, frame.Width(), frame.Height()))
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			c, err := frame.Get(x, y, true)
			if err != nil {
				return err
			}
			offset := rgba.PixOffset(x, y)
			rgba.Pix[offset] = toByteChannel(c.X)
			rgba.Pix[offset+1] = toByteChannel(c.Y)
			rgba.Pix[offset+2] = toByteChannel(c.Z)
			rgba.Pix[offset+3] = 255
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.img == nil {
		p.img = ebiten.NewImage(frame.Width(), frame.Height())
	}
	p.img.WritePixels(rgba.Pix)
	return nil
}

// Run blocks, driving the ebiten game loop until the window is closed.
func (p *EbitenPresenter) Run(title string) error {
	ebiten.SetWindowSize(p.width, p.height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(p)
}

// Update implements ebiten.Game; the presenter has no per-tick state
// of its own to advance, since Present is driven by the render loop.
func (p *EbitenPresenter) Update() error { return nil }

// Draw implements ebiten.Game, matching EbitenOutput.Draw's
// lock-and-blit.
func (p *EbitenPresenter) Draw(screen *ebiten.Image) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.img == nil {
		return
	}
	screen.DrawImage(p.img, nil)
}

// Layout implements ebiten.Game with a fixed logical window size.
func (p *EbitenPresenter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.width, p.height
}

func toByteChannel(c float32) byte {
	v := c
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return byte(v*255 + 0.5)
}
