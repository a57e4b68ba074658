package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotationY_RotatesXAxisToMinusZ(t *testing.T) {
	assert := assert.New(t)

	q := RotationY(float32(math.Pi / 2))
	v := q.TransformVector(NewVec3(1, 0, 0))
	assert.InDelta(0.0, float64(v.X), 1e-4)
	assert.InDelta(-1.0, float64(v.Z), 1e-4)
}

func TestQuaternion_InvertedUndoesRotation(t *testing.T) {
	assert := assert.New(t)

	q := RotationX(float32(math.Pi / 3))
	v := NewVec3(0, 1, 1)
	rotated := q.TransformVector(v)
	back := q.Inverted().TransformVector(rotated)
	assert.InDelta(float64(v.X), float64(back.X), 1e-4)
	assert.InDelta(float64(v.Y), float64(back.Y), 1e-4)
	assert.InDelta(float64(v.Z), float64(back.Z), 1e-4)
}

func TestTransform_ComposeInverseIsIdentity(t *testing.T) {
	assert := assert.New(t)

	tr := NewTransform(NewVec3(1, 2, 3), RotationZ(0.7))
	inv := tr.Inverted()
	p := NewVec3(4, -1, 2)
	roundTrip := inv.TransformPoint(tr.TransformPoint(p))
	assert.InDelta(float64(p.X), float64(roundTrip.X), 1e-3)
	assert.InDelta(float64(p.Y), float64(roundTrip.Y), 1e-3)
	assert.InDelta(float64(p.Z), float64(roundTrip.Z), 1e-3)
}

func TestTransform_TransformBoxContainsTransformedCorners(t *testing.T) {
	assert := assert.New(t)

	tr := NewTransform(NewVec3(5, 0, 0), RotationY(float32(math.Pi/4)))
	box := Box{Min: NewVec3(-1, -1, -1), Max: NewVec3(1, 1, 1)}
	out := tr.TransformBox(box)
	assert.True(out.Contains(tr.TransformPoint(NewVec3(1, 1, 1))))
	assert.True(out.Contains(tr.TransformPoint(NewVec3(-1, -1, -1))))
}
