// Package bitmap implements the renderer's 2D image container: typed
// pixel storage, get/sample operations, and the box-blur pipeline used
// for bloom postprocessing. Grounded on
// original_source/Core/Utils/Bitmap.cpp and RaytracerLib/Bitmap.cpp.
package bitmap

import (
	"errors"
	"fmt"
	"math"

	"github.com/rayforge/pathtracer/mathx"
)

// Format enumerates the pixel layouts a Bitmap can hold.
type Format int

const (
	FormatUnknown Format = iota
	FormatR8
	FormatBGR8
	FormatBGRA8
	FormatRGB32F
	FormatRGBA32F
	FormatRGB16F
	FormatRGBA16F
	FormatBC1
	FormatBC4
	FormatBC5
)

func (f Format) String() string {
	switch f {
	case FormatR8:
		return "R8"
	case FormatBGR8:
		return "BGR8"
	case FormatBGRA8:
		return "BGRA8"
	case FormatRGB32F:
		return "RGB32F"
	case FormatRGBA32F:
		return "RGBA32F"
	case FormatRGB16F:
		return "RGB16F"
	case FormatRGBA16F:
		return "RGBA16F"
	case FormatBC1:
		return "BC1"
	case FormatBC4:
		return "BC4"
	case FormatBC5:
		return "BC5"
	default:
		return "Unknown"
	}
}

// BitsPerPixel returns the storage cost of one pixel in bits; block
// formats return their average bits-per-pixel, matching
// Bitmap::BitsPerPixel.
func (f Format) BitsPerPixel() int {
	switch f {
	case FormatR8:
		return 8
	case FormatBGR8:
		return 8 * 3
	case FormatBGRA8:
		return 8 * 4
	case FormatRGB32F:
		return 8 * 4 * 3
	case FormatRGBA32F:
		return 8 * 4 * 4
	case FormatRGB16F:
		return 8 * 2 * 3
	case FormatRGBA16F:
		return 8 * 2 * 4
	case FormatBC1:
		return 4
	case FormatBC4:
		return 4
	case FormatBC5:
		return 8
	default:
		return 0
	}
}

var (
	ErrInvalidFormat     = errors.New("bitmap: invalid format")
	ErrTooLarge          = errors.New("bitmap: dimensions too large")
	ErrDimensionMismatch = errors.New("bitmap: dimension mismatch")
	ErrFormatMismatch    = errors.New("bitmap: format mismatch")
	ErrOutOfBounds       = errors.New("bitmap: coordinates out of bounds")
)

// FilterMode selects the reconstruction filter used by Sample.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterBilinear
	FilterBilinearSmoothstep
)

// Bitmap is a 2D, row-major, tightly packed pixel buffer. It tracks
// whether its channel data is already linear, applying a square
// approximation of the sRGB curve on read otherwise (spec §4.2).
type Bitmap struct {
	data        []byte
	width       int
	height      int
	format      Format
	linearSpace bool
	debugName   string
}

// New allocates a bitmap of the given size and format, optionally seeded
// with initial bytes. A nil data slice zero-fills the buffer.
func New(width, height int, format Format, linearSpace bool, data []byte) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bitmap: invalid dimensions %dx%d: %w", width, height, ErrInvalidFormat)
	}
	size, err := dataSize(width, height, format)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if data != nil {
		if len(data) != size {
			return nil, fmt.Errorf("bitmap: initial data is %d bytes, want %d: %w", len(data), size, ErrDimensionMismatch)
		}
		copy(buf, data)
	}
	return &Bitmap{data: buf, width: width, height: height, format: format, linearSpace: linearSpace}, nil
}

func dataSize(width, height int, format Format) (int, error) {
	bpp := format.BitsPerPixel()
	if bpp == 0 {
		return 0, ErrInvalidFormat
	}
	total := int64(width) * int64(height) * int64(bpp) / 8
	if total <= 0 || total > 1<<32 {
		return 0, ErrTooLarge
	}
	return int(total), nil
}

func (b *Bitmap) Width() int               { return b.width }
func (b *Bitmap) Height() int              { return b.height }
func (b *Bitmap) Format() Format           { return b.format }
func (b *Bitmap) LinearSpace() bool        { return b.linearSpace }
func (b *Bitmap) Data() []byte             { return b.data }
func (b *Bitmap) SetDebugName(name string) { b.debugName = name }
func (b *Bitmap) DebugName() string        { return b.debugName }

// Clear zeroes the pixel buffer.
func (b *Bitmap) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// Copy replicates source into target; both must share size and format.
func Copy(target, source *Bitmap) error {
	if target.width != source.width || target.height != source.height {
		return ErrDimensionMismatch
	}
	if target.format != source.format {
		return ErrFormatMismatch
	}
	copy(target.data, source.data)
	return nil
}

// Get reads the pixel at (x, y) as linear-space RGB, applying the
// sRGB-approximation square if the bitmap is not already linear and the
// caller did not force linear.
func (b *Bitmap) Get(x, y int, forceLinear bool) (mathx.Vec3, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return mathx.Vec3{}, ErrOutOfBounds
	}
	c, err := b.readTexel(x, y)
	if err != nil {
		return mathx.Vec3{}, err
	}
	if !b.linearSpace && !forceLinear {
		c = c.Mul(c)
	}
	return c, nil
}

// GetBlock reads the four texels at (x0,y0), (x1,y0), (x0,y1), (x1,y1),
// matching Bitmap::GetPixelBlock, used for bilinear filtering.
func (b *Bitmap) GetBlock(x0, y0, x1, y1 int, forceLinear bool) (out [4]mathx.Vec3, err error) {
	coords := [4][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}}
	for i, c := range coords {
		out[i], err = b.readTexel(c[0], c[1])
		if err != nil {
			return
		}
	}
	if !b.linearSpace && !forceLinear {
		for i := range out {
			out[i] = out[i].Mul(out[i])
		}
	}
	return
}

func (b *Bitmap) readTexel(x, y int) (mathx.Vec3, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return mathx.Vec3{}, ErrOutOfBounds
	}
	offset := y*b.width + x
	switch b.format {
	case FormatR8:
		v := float32(b.data[offset]) / 255
		return mathx.Vec3{X: v, Y: v, Z: v}, nil
	case FormatBGR8:
		i := offset * 3
		return mathx.Vec3{X: float32(b.data[i+2]) / 255, Y: float32(b.data[i+1]) / 255, Z: float32(b.data[i]) / 255}, nil
	case FormatBGRA8:
		i := offset * 4
		return mathx.Vec3{X: float32(b.data[i+2]) / 255, Y: float32(b.data[i+1]) / 255, Z: float32(b.data[i]) / 255}, nil
	case FormatRGB32F:
		i := offset * 12
		return mathx.Vec3{X: readF32(b.data[i:]), Y: readF32(b.data[i+4:]), Z: readF32(b.data[i+8:])}, nil
	case FormatRGBA32F:
		i := offset * 16
		return mathx.Vec3{X: readF32(b.data[i:]), Y: readF32(b.data[i+4:]), Z: readF32(b.data[i+8:])}, nil
	case FormatRGB16F:
		i := offset * 6
		return mathx.Vec3{X: readHalf(b.data[i:]), Y: readHalf(b.data[i+2:]), Z: readHalf(b.data[i+4:])}, nil
	case FormatRGBA16F:
		i := offset * 8
		return mathx.Vec3{X: readHalf(b.data[i:]), Y: readHalf(b.data[i+2:]), Z: readHalf(b.data[i+4:])}, nil
	case FormatBC1:
		flippedY := b.height - 1 - y
		return DecodeBC1(b.data, x, flippedY, b.width)
	case FormatBC4:
		return mathx.Vec3{}, ErrUnsupportedFormat
	case FormatBC5:
		return mathx.Vec3{}, ErrUnsupportedFormat
	default:
		return mathx.Vec3{}, ErrInvalidFormat
	}
}

func readF32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}

// readHalf decodes an IEEE 754 binary16 value to float32.
func readHalf(b []byte) float32 {
	h := uint16(b[0]) | uint16(b[1])<<8
	sign := uint32(h&0x8000) << 16
	exp := (h >> 10) & 0x1f
	mant := uint32(h & 0x3ff)

	var bits uint32
	switch {
	case exp == 0 && mant == 0:
		bits = sign
	case exp == 0x1f:
		bits = sign | 0x7f800000 | (mant << 13)
	case exp == 0:
		// subnormal half: normalize
		e := 0
		m := mant
		for m&0x400 == 0 {
			m <<= 1
			e--
		}
		m &= 0x3ff
		bits = sign | uint32(int32(e+113)<<23) | (m << 13)
	default:
		bits = sign | ((uint32(exp) + 112) << 23) | (mant << 13)
	}
	return math.Float32frombits(bits)
}

var ErrUnsupportedFormat = errors.New("bitmap: unsupported format (out of scope: BC4/BC5/EXR decoding)")
