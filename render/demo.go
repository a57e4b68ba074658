package render

import (
	"fmt"
	"math"

	"github.com/rayforge/pathtracer/light"
	"github.com/rayforge/pathtracer/material"
	"github.com/rayforge/pathtracer/mathx"
	"github.com/rayforge/pathtracer/meshdata"
	"github.com/rayforge/pathtracer/scene"
	"github.com/rayforge/pathtracer/sceneobj"
)

// Demo builds one of the built-in sample scenes and its camera by name,
// the fixtures spec §8's end-to-end scenarios are described against.
// Unknown names report an error rather than falling back silently.
func Demo(name string) (*scene.Scene, scene.RayCamera, error) {
	switch name {
	case "empty":
		return demoEmpty()
	case "sphere":
		return demoSpherePointLight()
	case "cornell":
		return demoCornellBox()
	default:
		return nil, nil, fmt.Errorf("render: unknown demo scene %q", name)
	}
}

// demoEmpty is spec §8 scenario 1: no objects, a flat gray background,
// exercised with a perspective camera looking down -Z.
func demoEmpty() (*scene.Scene, scene.RayCamera, error) {
	s := scene.NewScene()
	s.Environment.BackgroundColor = mathx.NewVec3(0.5, 0.5, 0.5)
	if err := s.Build(); err != nil {
		return nil, nil, err
	}

	cam := scene.NewPerspectiveCamera(
		mathx.NewVec3(0, 0, 5),
		mathx.NewVec3(0, 0, -1),
		mathx.NewVec3(0, 1, 0),
		1, float32(60*math.Pi/180),
	)
	return s, cam, nil
}

// demoSpherePointLight is spec §8 scenario 2: a unit diffuse-white
// sphere at the origin lit by one point light, viewed through an
// orthographic camera along -Z at distance 5.
func demoSpherePointLight() (*scene.Scene, scene.RayCamera, error) {
	s := scene.NewScene()
	s.Environment.BackgroundColor = mathx.Vec3{}

	white := &material.Material{
		Name:      "diffuse-white",
		BaseColor: mathx.NewVec3(1, 1, 1),
		Roughness: 1,
		IOR:       1,
		Contributions: []material.Contribution{
			{BSDF: material.DiffuseBSDF{}, Weight: 1},
		},
	}

	sphere := sceneobj.NewSphere(1, white)
	s.AddObject(sphere)

	s.AddLight(&light.PointLight{
		Position: mathx.NewVec3(0, 10, 0),
		Color:    mathx.NewVec3(1000, 1000, 1000),
	})

	if err := s.Build(); err != nil {
		return nil, nil, err
	}

	cam := scene.NewOrthographicCamera(
		mathx.NewVec3(0, 0, 5),
		mathx.NewVec3(0, 0, -1),
		mathx.NewVec3(0, 1, 0),
		4, 4,
	)
	return s, cam, nil
}

// demoCornellBox is spec §8 scenario 3: a floor made of two triangles
// and one area light suspended above it, used to check that radiance
// estimates keep improving as max bounce depth increases.
func demoCornellBox() (*scene.Scene, scene.RayCamera, error) {
	s := scene.NewScene()
	s.Environment.BackgroundColor = mathx.Vec3{}

	floorMat := &material.Material{
		Name:      "floor",
		BaseColor: mathx.NewVec3(0.7, 0.7, 0.7),
		Roughness: 1,
		IOR:       1,
		Contributions: []material.Contribution{
			{BSDF: material.DiffuseBSDF{}, Weight: 1},
		},
	}

	floor := &meshdata.Mesh{
		VertexBuffer: meshdata.VertexBuffer{
			Positions: []mathx.Vec3{
				mathx.NewVec3(-5, 0, -5),
				mathx.NewVec3(5, 0, -5),
				mathx.NewVec3(5, 0, 5),
				mathx.NewVec3(-5, 0, 5),
			},
			TriangleIndices: []meshdata.Indices{
				{I0: 0, I1: 1, I2: 2},
				{I0: 0, I1: 2, I2: 3},
			},
			MaterialIndices: []uint32{0, 0},
			Materials:       []*material.Material{floorMat},
			Scale:           1,
		},
	}
	if err := floor.Build(); err != nil {
		return nil, nil, err
	}
	s.AddObject(sceneobj.NewMesh(floor))

	s.AddLight(light.NewAreaLight(
		mathx.NewVec3(-1, 4, -1),
		mathx.NewVec3(2, 0, 0),
		mathx.NewVec3(0, 0, 2),
		mathx.NewVec3(30, 30, 30),
		false,
	))

	if err := s.Build(); err != nil {
		return nil, nil, err
	}

	cam := scene.NewPerspectiveCamera(
		mathx.NewVec3(0, 3, 8),
		mathx.NewVec3(0, -0.3, -1),
		mathx.NewVec3(0, 1, 0),
		1, float32(50*math.Pi/180),
	)
	return s, cam, nil
}
