package scene

import (
	"math"

	"github.com/rayforge/pathtracer/mathx"
)

// RayCamera is anything that can generate a primary ray for a screen
// coordinate in [0,1)x[0,1); both Camera and OrthographicCamera
// implement it, letting the viewport stay agnostic to projection mode.
type RayCamera interface {
	GenerateRay(coords mathx.Vec2, rng *mathx.Random) mathx.Ray
}

// BokehShape selects the depth-of-field aperture sampling pattern,
// matching Scene/Camera.h's BokehShape enum.
type BokehShape int

const (
	BokehCircle BokehShape = iota
	BokehHexagon
)

// DOFSettings configures depth of field, grounded on Scene/Camera.h's
// DOFSettings (focalPlaneDistance defaults to 2, aperture to 0.02).
type DOFSettings struct {
	FocalPlaneDistance float32
	Aperture           float32
	Bokeh              BokehShape
}

func DefaultDOFSettings() DOFSettings {
	return DOFSettings{FocalPlaneDistance: 2, Aperture: 0.02, Bokeh: BokehCircle}
}

// Camera generates primary rays for a perspective view, optionally
// applying depth of field. Grounded on
// original_source/RaytracerLib/Scene/Camera.h/.cpp.
type Camera struct {
	Position mathx.Vec3
	Forward  mathx.Vec3
	Up       mathx.Vec3

	AspectRatio float32
	FieldOfView float32 // vertical, radians

	DOF DOFSettings

	forwardInternal mathx.Vec3
	rightInternal   mathx.Vec3
	upInternal      mathx.Vec3
	rightScaled     mathx.Vec3
	upScaled        mathx.Vec3
}

// NewPerspectiveCamera constructs a camera and calls Update so it is
// immediately ready to generate rays.
func NewPerspectiveCamera(position, forward, up mathx.Vec3, aspectRatio, fov float32) *Camera {
	c := &Camera{Position: position, Forward: forward, Up: up, AspectRatio: aspectRatio, FieldOfView: fov, DOF: DefaultDOFSettings()}
	c.Update()
	return c
}

// Update recomputes the camera's internal orthonormal basis and scaled
// screen axes; must be called whenever Position/Forward/Up/FieldOfView/
// AspectRatio change, matching Camera::Update.
func (c *Camera) Update() {
	c.forwardInternal = c.Forward.Normalized()
	c.rightInternal = c.Up.Cross(c.forwardInternal).Normalized()
	c.upInternal = c.forwardInternal.Cross(c.rightInternal).Normalized()

	tanHalfFoV := float32(math.Tan(float64(c.FieldOfView) * 0.5))
	c.upScaled = c.upInternal.Scale(tanHalfFoV)
	c.rightScaled = c.rightInternal.Scale(tanHalfFoV * c.AspectRatio)
}

// GenerateRay builds a primary ray for screen coordinates in [0,1)x[0,1),
// matching Camera::GenerateRay: the ideal pinhole direction is offset
// into [-1,1) screen space and blended with the scaled right/up axes,
// then depth of field perturbs both origin and direction when the
// aperture is open.
func (c *Camera) GenerateRay(coords mathx.Vec2, rng *mathx.Random) mathx.Ray {
	origin := c.Position

	offsetX := 2*coords.X - 1
	offsetY := 2*coords.Y - 1

	direction := c.rightScaled.Scale(offsetX).Add(c.forwardInternal)
	direction = c.upScaled.Scale(offsetY).Add(direction)

	if c.DOF.Aperture > 0.001 {
		focusPoint := origin.Add(direction.Scale(c.DOF.FocalPlaneDistance))

		var lens mathx.Vec2
		if c.DOF.Bokeh == BokehHexagon {
			lens = rng.GetHexagon()
		} else {
			lens = rng.GetCircle()
		}
		lens = mathx.Vec2{X: lens.X * c.DOF.Aperture, Y: lens.Y * c.DOF.Aperture}

		origin = c.rightInternal.MulAdd(lens.X, origin)
		origin = c.upInternal.MulAdd(lens.Y, origin)

		direction = focusPoint.Sub(origin)
	}

	return mathx.NewRay(origin, direction)
}

// OrthographicCamera generates parallel rays along Forward, offsetting
// each ray's origin across a fixed-size view plane instead of fanning
// direction out from a single eye point. The original's CameraMode
// enum names Ortho alongside Perspective but only ever implements the
// perspective branch (Camera.cpp's GenerateRay has a bare "TODO more
// types: ortho, fisheye, spherical, etc." where the ortho case would
// go); this is that branch, filled in because spec §8's scenario 2
// calls for an orthographic camera directly.
type OrthographicCamera struct {
	Position mathx.Vec3
	Forward  mathx.Vec3
	Up       mathx.Vec3

	ViewWidth, ViewHeight float32

	forwardInternal mathx.Vec3
	rightInternal   mathx.Vec3
	upInternal      mathx.Vec3
}

// NewOrthographicCamera constructs a camera whose view plane spans
// viewWidth x viewHeight world units, centered on Position.
func NewOrthographicCamera(position, forward, up mathx.Vec3, viewWidth, viewHeight float32) *OrthographicCamera {
	c := &OrthographicCamera{Position: position, Forward: forward, Up: up, ViewWidth: viewWidth, ViewHeight: viewHeight}
	c.Update()
	return c
}

func (c *OrthographicCamera) Update() {
	c.forwardInternal = c.Forward.Normalized()
	c.rightInternal = c.Up.Cross(c.forwardInternal).Normalized()
	c.upInternal = c.forwardInternal.Cross(c.rightInternal).Normalized()
}

// GenerateRay builds a parallel ray for screen coordinates in
// [0,1)x[0,1): direction is always Forward, only the origin moves
// across the view plane.
func (c *OrthographicCamera) GenerateRay(coords mathx.Vec2, rng *mathx.Random) mathx.Ray {
	offsetX := (2*coords.X - 1) * c.ViewWidth * 0.5
	offsetY := (2*coords.Y - 1) * c.ViewHeight * 0.5

	origin := c.rightInternal.MulAdd(offsetX, c.Position)
	origin = c.upInternal.MulAdd(offsetY, origin)

	return mathx.NewRay(origin, c.forwardInternal)
}
