package mathx

// Box is an axis-aligned bounding box, grounded on RaytracerLib/Math/Box.h.
type Box struct {
	Min, Max Vec3
}

// EmptyBox returns a box with inverted extents, the identity element for
// Union — any real box unioned with it returns unchanged.
func EmptyBox() Box {
	inf := float32(infinity)
	return Box{Min: SplatVec3(inf), Max: SplatVec3(-inf)}
}

// FullBox spans the representable range, the bounding box unbounded
// primitives such as the infinite plane report.
func FullBox() Box {
	inf := float32(infinity)
	return Box{Min: SplatVec3(-inf), Max: SplatVec3(inf)}
}

func (b Box) Union(o Box) Box {
	return Box{Min: MinVec3(b.Min, o.Min), Max: MaxVec3(b.Max, o.Max)}
}

func (b Box) ExtendPoint(p Vec3) Box {
	return Box{Min: MinVec3(b.Min, p), Max: MaxVec3(b.Max, p)}
}

func (b Box) Extent() Vec3 { return b.Max.Sub(b.Min) }

func (b Box) Center() Vec3 { return b.Min.Add(b.Max).Scale(0.5) }

// SurfaceArea returns the total surface area of the box, used by the SAH
// cost estimate during BVH construction.
func (b Box) SurfaceArea() float32 {
	e := b.Extent()
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return 0
	}
	return 2 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

func (b Box) Volume() float32 {
	e := b.Extent()
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return 0
	}
	return e.X * e.Y * e.Z
}

// SupportVertex returns the box corner farthest along dir. Nothing in
// the module calls it.
func (b Box) SupportVertex(dir Vec3) Vec3 {
	v := Vec3{}
	if dir.X >= 0 {
		v.X = b.Max.X
	} else {
		v.X = b.Min.X
	}
	if dir.Y >= 0 {
		v.Y = b.Max.Y
	} else {
		v.Y = b.Min.Y
	}
	if dir.Z >= 0 {
		v.Z = b.Max.Z
	} else {
		v.Z = b.Min.Z
	}
	return v
}

func (b Box) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
