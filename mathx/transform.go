package mathx

// Transform is a rigid transform: translation composed with rotation,
// grounded on RaytracerLib/Math/Transform.cpp.
type Transform struct {
	Translation Vec3
	Rotation    Quaternion
}

func IdentityTransform() Transform {
	return Transform{Rotation: Identity()}
}

func NewTransform(translation Vec3, rotation Quaternion) Transform {
	return Transform{Translation: translation, Rotation: rotation}
}

// Compose returns the transform equivalent to applying b then a.
func (a Transform) Compose(b Transform) Transform {
	return Transform{
		Translation: a.TransformPoint(b.Translation),
		Rotation:    a.Rotation.Mul(b.Rotation),
	}
}

func (t Transform) Inverted() Transform {
	invRot := t.Rotation.Inverted()
	return Transform{
		Translation: invRot.TransformVector(t.Translation.Neg()),
		Rotation:    invRot,
	}
}

func (t Transform) TransformPoint(p Vec3) Vec3 {
	return t.Rotation.TransformVector(p).Add(t.Translation)
}

func (t Transform) TransformVector(v Vec3) Vec3 {
	return t.Rotation.TransformVector(v)
}

// TransformBox conservatively re-bounds a box under the transform by
// transforming all eight corners, matching Box::TransformBy.
func (t Transform) TransformBox(b Box) Box {
	corners := [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z}, {b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z}, {b.Max.X, b.Max.Y, b.Max.Z},
	}
	out := EmptyBox()
	for _, c := range corners {
		out = out.ExtendPoint(t.TransformPoint(c))
	}
	return out
}

// Interpolate linearly blends translation and normalized-lerps rotation,
// used for the motion-blur keyframe case (spec §9, camera animation).
func Interpolate(a, b Transform, t float32) Transform {
	return Transform{
		Translation: LerpVec3(a.Translation, b.Translation, t),
		Rotation:    InterpolateQuat(a.Rotation, b.Rotation, t),
	}
}
