package material

import (
	"github.com/rayforge/pathtracer/bitmap"
	"github.com/rayforge/pathtracer/mathx"
)

// Contribution pairs an enabled BSDF lobe with the weight it
// contributes when multiple lobes are stacked on one material (spec
// §4.6: "a list of enabled BSDF contributions is composed").
type Contribution struct {
	BSDF   BSDF
	Weight float32
}

// Material holds texturable parameters and the composed BSDF stack for
// one surface appearance. Grounded on
// original_source/RaytracerLib/Material.h/.cpp.
type Material struct {
	Name string

	Emission mathx.Vec3

	BaseColorMap *bitmap.Bitmap
	BaseColor    mathx.Vec3

	RoughnessMap *bitmap.Bitmap
	Roughness    float32

	Metallic float32
	IOR      float32

	Dispersive  bool
	Transparent bool

	Contributions []Contribution
}

// NewDefault returns an all-diffuse white material with no emission.
// Mesh material lookups do not fall back to it: a missing entry yields
// a nil material.
func NewDefault() *Material {
	return &Material{
		Name:      "default",
		BaseColor: mathx.NewVec3(0.8, 0.8, 0.8),
		Roughness: 1,
		IOR:       1,
		Contributions: []Contribution{
			{BSDF: DiffuseBSDF{}, Weight: 1},
		},
	}
}

// Resolve samples BaseColorMap/RoughnessMap at uv (falling back to the
// scalar tint/roughness when no texture is bound), producing the
// per-shading-point material-param record spec §4.6 describes.
func (m *Material) Resolve(uv mathx.Vec2) (Params, error) {
	baseColor := m.BaseColor
	if m.BaseColorMap != nil {
		texel, err := m.BaseColorMap.Sample(uv, bitmap.FilterBilinear, false)
		if err != nil {
			return Params{}, err
		}
		baseColor = baseColor.Mul(texel)
	}

	roughness := m.Roughness
	if m.RoughnessMap != nil {
		texel, err := m.RoughnessMap.Sample(uv, bitmap.FilterBilinear, true)
		if err != nil {
			return Params{}, err
		}
		roughness *= texel.X
	}

	ior := m.IOR
	if ior == 0 {
		ior = 1
	}

	return Params{
		BaseColor: baseColor,
		Roughness: roughness,
		Metallic:  m.Metallic,
		IOR:       ior,
	}, nil
}

// SampleBSDF draws one contribution proportional to its weight and
// samples it, matching the original's per-material BSDF-stack dispatch
// in CpuScene.cpp's shading step.
func (m *Material) SampleBSDF(outgoingDir mathx.Vec3, rng *mathx.Random, param Params) SampleResult {
	if len(m.Contributions) == 0 {
		return SampleResult{}
	}
	if len(m.Contributions) == 1 {
		return m.Contributions[0].BSDF.Sample(outgoingDir, rng, param)
	}

	total := float32(0)
	for _, c := range m.Contributions {
		total += c.Weight
	}
	if total <= 0 {
		return SampleResult{}
	}

	pick := rng.GetFloat() * total
	for _, c := range m.Contributions {
		if pick < c.Weight {
			result := c.BSDF.Sample(outgoingDir, rng, param)
			if result.Valid {
				selectionProb := c.Weight / total
				result.PDF *= selectionProb
				result.Weight = result.Weight.Scale(1 / selectionProb)
			}
			return result
		}
		pick -= c.Weight
	}
	return SampleResult{}
}
