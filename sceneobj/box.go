package sceneobj

import (
	"github.com/rayforge/pathtracer/material"
	"github.com/rayforge/pathtracer/mathx"
)

// Box is an axis-aligned box centered at the local origin, grounded on
// SceneObject_Box.cpp: uses the two-sided slab test and resolves the
// struck face via the largest absolute component of the local hit
// point (helper::GetCubeSide / ConvertXYZtoCubeUV).
type Box struct {
	staticTransform
	Size     mathx.Vec3
	Material *material.Material
}

func NewBox(size mathx.Vec3, mat *material.Material) *Box {
	return &Box{staticTransform: identityTransform(), Size: size, Material: mat}
}

func (b *Box) localBox() mathx.Box {
	return mathx.Box{Min: b.Size.Neg(), Max: b.Size}
}

func (b *Box) BoundingBox() mathx.Box {
	return b.localBox()
}

func (b *Box) TraverseSingle(ray mathx.Ray, maxDist float32) Hit {
	near, far, hit, _ := mathx.IntersectRayBoxTwoSided(ray, b.localBox(), maxDist)
	if !hit {
		return Hit{}
	}
	if near > 0 && near < maxDist {
		point := ray.GetAtDistance(near)
		return Hit{Distance: near, SubObjectID: cubeSide(point, b.Size), Valid: true}
	}
	if far > 0 && far < maxDist {
		point := ray.GetAtDistance(far)
		return Hit{Distance: far, SubObjectID: cubeSide(point, b.Size), Valid: true}
	}
	return Hit{}
}

func (b *Box) TraverseShadowSingle(ray mathx.Ray, maxDist float32) bool {
	return b.TraverseSingle(ray, maxDist).Valid
}

func (b *Box) TraversePacket(rays [8]mathx.Ray, maxDist [8]float32, active [8]bool) [8]Hit {
	return traversePacketDefault(b, rays, maxDist, active)
}

// cubeSide returns which of the six faces point lies on, matching
// helper::GetCubeSide: the axis with the largest magnitude relative to
// the box's half-extent on that axis, signed by direction.
func cubeSide(point, size mathx.Vec3) uint32 {
	rx := absf(point.X) / size.X
	ry := absf(point.Y) / size.Y
	rz := absf(point.Z) / size.Z

	if rx >= ry && rx >= rz {
		if point.X > 0 {
			return 0
		}
		return 1
	}
	if ry >= rx && ry >= rz {
		if point.Y > 0 {
			return 2
		}
		return 3
	}
	if point.Z > 0 {
		return 4
	}
	return 5
}

// cubeNormalsAndTangents mirrors the original's normalsAndTangents
// table, indexed by cubeSide()*2 (normal) and +1 (tangent).
var cubeNormalsAndTangents = [12]mathx.Vec3{
	mathx.NewVec3(1, 0, 0), mathx.NewVec3(0, 0, -1),
	mathx.NewVec3(-1, 0, 0), mathx.NewVec3(0, 0, 1),
	mathx.NewVec3(0, 1, 0), mathx.NewVec3(1, 0, 0),
	mathx.NewVec3(0, -1, 0), mathx.NewVec3(1, 0, 0),
	mathx.NewVec3(0, 0, 1), mathx.NewVec3(1, 0, 0),
	mathx.NewVec3(0, 0, -1), mathx.NewVec3(-1, 0, 0),
}

func (b *Box) EvaluateShadingData(ray mathx.Ray, hit Hit) ShadingData {
	position := ray.GetAtDistance(hit.Distance)
	side := hit.SubObjectID
	normal := cubeNormalsAndTangents[2*side]
	tangent := cubeNormalsAndTangents[2*side+1]
	binormal := tangent.Cross(normal).FastNormalized()

	uv := faceUV(position, b.Size, side)

	return ShadingData{
		Position: position,
		Normal:   normal,
		Tangent:  tangent,
		Binormal: binormal,
		TexCoord: uv,
		Material: b.Material,
	}
}

// faceUV maps position on the chosen face into a [0,1] uv, matching
// helper::ConvertXYZtoCubeUV's per-face (uc,vc) projection.
func faceUV(position, size mathx.Vec3, side uint32) mathx.Vec2 {
	var uc, vc, maxAxis float32
	switch side {
	case 0:
		uc, vc, maxAxis = -position.Z, position.Y, size.X
	case 1:
		uc, vc, maxAxis = position.Z, position.Y, size.X
	case 2:
		uc, vc, maxAxis = position.X, -position.Z, size.Y
	case 3:
		uc, vc, maxAxis = position.X, position.Z, size.Y
	case 4:
		uc, vc, maxAxis = position.X, position.Y, size.Z
	default:
		uc, vc, maxAxis = -position.X, position.Y, size.Z
	}
	if maxAxis == 0 {
		maxAxis = 1
	}
	return mathx.Vec2{X: uc/(2*maxAxis) + 0.5, Y: vc/(2*maxAxis) + 0.5}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
