package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3x8_AddMatchesScalarPerLane(t *testing.T) {
	assert := assert.New(t)

	var a, b [8]Vec3
	for i := 0; i < 8; i++ {
		a[i] = NewVec3(float32(i), 1, 2)
		b[i] = NewVec3(1, float32(i), 3)
	}
	wa := TransposeVec3x8(a)
	wb := TransposeVec3x8(b)
	sum := wa.Add(wb)

	for i := 0; i < 8; i++ {
		want := a[i].Add(b[i])
		got := sum.Lane(i)
		assert.Equal(want, got)
	}
}

func TestNewRayPacket8_AllLanesActiveWithInfiniteMaxDist(t *testing.T) {
	assert := assert.New(t)

	var rays [8]Ray
	for i := 0; i < 8; i++ {
		rays[i] = NewRay(NewVec3(0, 0, 0), NewVec3(float32(i)-4, 1, 1))
	}
	packet := NewRayPacket8(rays)

	assert.True(packet.AnyActive())
	for i := 0; i < 8; i++ {
		assert.True(packet.Active[i])
		assert.True(packet.MaxDist[i] > 1e30)
	}
}

func TestRayPacket8_AnyActiveFalseWhenAllTerminated(t *testing.T) {
	assert := assert.New(t)

	var rays [8]Ray
	for i := 0; i < 8; i++ {
		rays[i] = NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1))
	}
	packet := NewRayPacket8(rays)
	for i := range packet.Active {
		packet.Active[i] = false
	}
	assert.False(packet.AnyActive())
}

func TestOctant_MatchesSignBits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, octant(NewVec3(1, 1, 1)))
	assert.Equal(7, octant(NewVec3(-1, -1, -1)))
	assert.Equal(1, octant(NewVec3(-1, 1, 1)))
}
