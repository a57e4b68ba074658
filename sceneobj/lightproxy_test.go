package sceneobj

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/light"
	"github.com/rayforge/pathtracer/mathx"
)

func TestLightProxy_TraverseSingleMissesPointLight(t *testing.T) {
	assert := assert.New(t)

	l := &light.PointLight{Position: mathx.NewVec3(0, 0, 0)}
	proxy := NewLightProxy(l)

	hit := proxy.TraverseSingle(mathx.NewRay(mathx.NewVec3(0, 0, -5), mathx.NewVec3(0, 0, 1)), 1e30)
	assert.False(hit.Valid)
}

func TestLightProxy_BoundingBoxDelegatesToLight(t *testing.T) {
	assert := assert.New(t)

	l := &light.PointLight{Position: mathx.NewVec3(1, 2, 3)}
	proxy := NewLightProxy(l)

	box := proxy.BoundingBox()
	assert.Equal(mathx.NewVec3(1, 2, 3), box.Min)
	assert.Equal(mathx.NewVec3(1, 2, 3), box.Max)
}

func TestLightProxy_TraverseSingleHitsAreaLight(t *testing.T) {
	assert := assert.New(t)

	al := light.NewAreaLight(
		mathx.NewVec3(-1, 0, -1),
		mathx.NewVec3(2, 0, 0),
		mathx.NewVec3(0, 0, 2),
		mathx.NewVec3(1, 1, 1),
		false,
	)
	proxy := NewLightProxy(al)

	ray := mathx.NewRay(mathx.NewVec3(0, 5, 0), mathx.NewVec3(0, -1, 0))
	hit := proxy.TraverseSingle(ray, 1e30)
	assert.True(hit.Valid)
	assert.Equal(LightObjectPrimitiveID, hit.PrimitiveID)
}

func TestLightProxy_EvaluateShadingDataFacesBackAtRay(t *testing.T) {
	assert := assert.New(t)

	al := light.NewAreaLight(
		mathx.NewVec3(-1, 0, -1),
		mathx.NewVec3(2, 0, 0),
		mathx.NewVec3(0, 0, 2),
		mathx.NewVec3(1, 1, 1),
		false,
	)
	proxy := NewLightProxy(al)

	ray := mathx.NewRay(mathx.NewVec3(0, 5, 0), mathx.NewVec3(0, -1, 0))
	hit := proxy.TraverseSingle(ray, 1e30)
	assert.True(hit.Valid)

	sd := proxy.EvaluateShadingData(ray, hit)
	assert.Equal(mathx.NewVec3(0, 1, 0), sd.Normal)
	assert.Nil(sd.Material)
}
