package bitmap

import "github.com/rayforge/pathtracer/mathx"

// DecodeBC1 decodes the texel at (x, y) from a BC1 (DXT1) compressed
// buffer, grounded on RaytracerLib/Utils/BlockCompression.cpp's
// DecodeBC1. Each 4x4 block stores two RGB565 endpoints followed by a
// 32-bit, 2-bit-per-texel index into a 4-color interpolated palette.
func DecodeBC1(data []byte, x, y, width int) (mathx.Vec3, error) {
	blocksInRow := width / 4
	blockX := x / 4
	blockY := y / 4
	x %= 4
	y %= 4

	blockOffset := 8 * (blocksInRow*blockY + blockX)
	if blockOffset+8 > len(data) {
		return mathx.Vec3{}, ErrOutOfBounds
	}
	block := data[blockOffset : blockOffset+8]

	c0 := uint16(block[0]) | uint16(block[1])<<8
	c1 := uint16(block[2]) | uint16(block[3])<<8
	color0 := unpackRGB565(c0)
	color1 := unpackRGB565(c1)

	code := uint32(block[4]) | uint32(block[5])<<8 | uint32(block[6])<<16 | uint32(block[7])<<24
	index := (code >> uint(2*(4*y+x))) % 4

	weights := [4]float32{0, 1, 1.0 / 3, 2.0 / 3}
	return mathx.LerpVec3(color0, color1, weights[index]), nil
}

func unpackRGB565(c uint16) mathx.Vec3 {
	r := (c >> 11) & 0x1f
	g := (c >> 5) & 0x3f
	b := c & 0x1f
	return mathx.Vec3{
		X: float32(r) / 31,
		Y: float32(g) / 63,
		Z: float32(b) / 31,
	}
}
