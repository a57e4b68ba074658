// Package light implements the renderer's light sources: point,
// directional, and area (triangle or parallelogram), grounded on
// original_source/RaytracerLib/Scene/Light.h/.cpp.
package light

import "github.com/rayforge/pathtracer/mathx"

// Sample is what Illuminate returns: the direction from the shading
// point towards the light, the distance to it, the direct-area pdf in
// solid-angle measure, and the light's emitted color.
type Sample struct {
	DirectionToLight mathx.Vec3
	Distance         float32
	DirectPdfW       float32
	Radiance         mathx.Vec3
	Valid            bool
}

// Light is implemented by every light type the scene can hold.
type Light interface {
	// Illuminate samples a point on the light visible from scenePoint
	// (or the light's single fixed direction, for delta lights).
	Illuminate(scenePoint mathx.Vec3, rng *mathx.Random) Sample

	// TestRayHit reports whether ray hits the light's physical surface
	// (always false for delta lights, which have no surface a camera
	// ray can intersect) and, if so, the hit distance.
	TestRayHit(ray mathx.Ray) (distance float32, hit bool)

	// GetRadiance returns the light's emitted radiance as seen along
	// rayDirection having hit hitPoint, for lights a path traversal
	// reaches directly (area lights only -- delta lights have no
	// surface to hit, matching Light.cpp's RT_FATAL guards).
	GetRadiance(rayDirection, hitPoint mathx.Vec3) (radiance mathx.Vec3, directPdfA float32)

	// IsFinite reports whether the light has a bounded position
	// (false only for directional lights, which illuminate from
	// infinity).
	IsFinite() bool

	// IsDelta reports whether the light occupies a single direction
	// (point, directional) rather than a surface (area).
	IsDelta() bool

	// BoundingBox returns the light's world-space bounding box: a
	// degenerate box at the position for a point light and an empty
	// box for a directional light, matching Light.cpp's per-type
	// GetBoundingBox.
	BoundingBox() mathx.Box
}
