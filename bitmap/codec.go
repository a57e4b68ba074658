package bitmap

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"

	"github.com/rayforge/pathtracer/internal/logx"
	"github.com/rayforge/pathtracer/mathx"
)

// ErrUnknownFormat is returned by Load when the file's magic bytes match
// none of the formats sniffed below. DDS/EXR are explicitly out of scope
// (spec §9's "external collaborators" list); this loader covers the
// common-raster on-ramp for environment and base-color textures.
var ErrUnknownFormat = errors.New("bitmap: unrecognized image format")

// Load reads an image file from disk and converts it into an RGBA32F
// Bitmap in sRGB (non-linear) space, sniffing the format by magic bytes
// the way Bitmap::Load dispatches BMP/DDS/EXR by header, matching spec
// §4.2/§6 ("BMP magic 'BM'").
func Load(path string) (bm *Bitmap, err error) {
	defer func() {
		if err != nil {
			logx.Default().Error("%v", err)
		} else {
			logx.Default().Info("bitmap: loaded %q (%dx%d)", path, bm.width, bm.height)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bitmap: open %q: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err != nil {
		return nil, fmt.Errorf("bitmap: read header of %q: %w", path, err)
	}

	var img image.Image
	if magic[0] == 'B' && magic[1] == 'M' {
		img, err = bmp.Decode(br)
	} else {
		img, err = imaging.Decode(br)
	}
	if err != nil {
		return nil, fmt.Errorf("bitmap: decode %q: %w", path, err)
	}

	return fromImage(img)
}

// FromFloatImage packs f into an RGBA32F Bitmap, the bridge between the
// viewport's working-precision accumulation/tonemap buffers and the
// Bitmap type Save/Resize operate on.
func FromFloatImage(f *FloatImage, linearSpace bool) (*Bitmap, error) {
	out, err := New(f.Width, f.Height, FormatRGBA32F, linearSpace, nil)
	if err != nil {
		return nil, err
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			out.writeRGBA32F(x, y, f.At(x, y))
		}
	}
	return out, nil
}

func fromImage(img image.Image) (*Bitmap, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out, err := New(w, h, FormatRGBA32F, false, nil)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			v := mathx.Vec3{
				X: float32(r) / 65535,
				Y: float32(g) / 65535,
				Z: float32(b) / 65535,
			}
			out.writeRGBA32F(x, y, v)
		}
	}
	return out, nil
}

func (b *Bitmap) writeRGBA32F(x, y int, v mathx.Vec3) {
	offset := (y*b.width + x) * 16
	writeF32(b.data[offset:], v.X)
	writeF32(b.data[offset+4:], v.Y)
	writeF32(b.data[offset+8:], v.Z)
	writeF32(b.data[offset+12:], 1)
}

func writeF32(dst []byte, v float32) {
	bits := math.Float32bits(v)
	dst[0] = byte(bits)
	dst[1] = byte(bits >> 8)
	dst[2] = byte(bits >> 16)
	dst[3] = byte(bits >> 24)
}

// Resize produces a thumbnail preview of the bitmap using Lanczos
// resampling, mirroring caire's own `Resize` helper. The CLI does not
// call it.
func (b *Bitmap) Resize(width, height int) (*Bitmap, error) {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c, err := b.Get(x, y, false)
			if err != nil {
				return nil, err
			}
			img.Set(x, y, color.NRGBA{
				R: toByte(c.X), G: toByte(c.Y), B: toByte(c.Z), A: 255,
			})
		}
	}
	resized := imaging.Resize(img, width, height, imaging.Lanczos)
	return fromImage(resized)
}

func toByte(c float32) uint8 {
	v := mathx.Clamp01(c) * 255
	return uint8(v + 0.5)
}

// toNRGBA converts b (assumed already tonemapped to [0, 1]) into a
// standard library image for encoding.
func (b *Bitmap) toNRGBA() (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c, err := b.Get(x, y, true)
			if err != nil {
				return nil, err
			}
			img.Set(x, y, color.NRGBA{
				R: toByte(c.X), G: toByte(c.Y), B: toByte(c.Z), A: 255,
			})
		}
	}
	return img, nil
}

// Save writes b to path, dispatching on extension the way caire's own
// encodeImg picks an encoder from the destination's file name.
func (b *Bitmap) Save(path string) error {
	img, err := b.toNRGBA()
	if err != nil {
		return fmt.Errorf("bitmap: convert %q for save: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bitmap: create %q: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
	case ".bmp":
		return bmp.Encode(f, img)
	default:
		return fmt.Errorf("bitmap: unsupported save format %q", filepath.Ext(path))
	}
}
