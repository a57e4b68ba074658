package bvh

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/rayforge/pathtracer/internal/logx"
	"github.com/rayforge/pathtracer/mathx"
)

const (
	fileMagic   uint32 = 0x62766863 // 'bvhc', little-endian encoded per spec §6
	fileVersion uint32 = 0
)

var (
	ErrBadMagic   = errors.New("bvh: corrupted file (invalid magic value)")
	ErrBadVersion = errors.New("bvh: unsupported file version")
)

// SaveToFile writes the little-endian header {magic, version, node_count}
// followed by node_count fixed-size node records, matching
// BVH::SaveToFile / spec §6's persistence format.
func (b *BVH) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bvh: create %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeHeader(w, uint32(len(b.Nodes))); err != nil {
		return err
	}
	for _, n := range b.Nodes {
		if err := writeNode(w, n); err != nil {
			return fmt.Errorf("bvh: write node: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("bvh: flush %q: %w", path, err)
	}
	return nil
}

func writeHeader(w io.Writer, count uint32) error {
	var hdr [12]byte
	binary.LittleEndian.PutUint32(hdr[0:4], fileMagic)
	binary.LittleEndian.PutUint32(hdr[4:8], fileVersion)
	binary.LittleEndian.PutUint32(hdr[8:12], count)
	_, err := w.Write(hdr[:])
	return err
}

func writeNode(w io.Writer, n Node) error {
	var buf [32]byte
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(n.Min.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(n.Min.Y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(n.Min.Z))
	binary.LittleEndian.PutUint32(buf[12:16], n.FirstChild)
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(n.Max.X))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(n.Max.Y))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(n.Max.Z))
	binary.LittleEndian.PutUint32(buf[28:32], n.axisAndLeaf)
	_, err := w.Write(buf[:])
	return err
}

// LoadFromFile reads a BVH previously written by SaveToFile, rejecting
// mismatching magic or version (spec §6).
func LoadFromFile(path string) (*BVH, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bvh: open %q: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("bvh: read header: %w", err)
	}
	magic := binary.LittleEndian.Uint32(hdr[0:4])
	version := binary.LittleEndian.Uint32(hdr[4:8])
	count := binary.LittleEndian.Uint32(hdr[8:12])

	if magic != fileMagic {
		logx.Default().Error("bvh load %q: corrupted file (invalid magic value)", path)
		return nil, ErrBadMagic
	}
	if version != fileVersion {
		logx.Default().Error("bvh load %q: unsupported file version %d (expected %d)", path, version, fileVersion)
		return nil, ErrBadVersion
	}

	nodes := make([]Node, count)
	for i := range nodes {
		n, err := readNode(r)
		if err != nil {
			return nil, fmt.Errorf("bvh: read node %d: %w", i, err)
		}
		nodes[i] = n
	}

	return &BVH{Nodes: nodes}, nil
}

func readNode(r io.Reader) (Node, error) {
	var buf [32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Node{}, err
	}
	return Node{
		Min: mathx.Vec3{
			X: math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])),
			Y: math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])),
			Z: math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])),
		},
		FirstChild: binary.LittleEndian.Uint32(buf[12:16]),
		Max: mathx.Vec3{
			X: math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])),
			Y: math.Float32frombits(binary.LittleEndian.Uint32(buf[20:24])),
			Z: math.Float32frombits(binary.LittleEndian.Uint32(buf[24:28])),
		},
		axisAndLeaf: binary.LittleEndian.Uint32(buf[28:32]),
	}, nil
}
