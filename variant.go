package shadergen

// Stage is the programmable pipeline stage a variant is compiled for.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return "unknown stage"
}

// Variant is one generated shader: an output file name and the ordered parts
// its source is concatenated from.
type Variant struct {
	Name  string
	Stage Stage
	// Flat selects the flat qualified varying block.
	Flat  bool
	Parts []Fragment
	// Pair is the name of the vertex variant feeding a fragment variant at
	// runtime. Empty for vertex variants.
	Pair string
}

func vertexParts(body Fragment) []Fragment {
	return []Fragment{Common, VertexCommon, Interface, body}
}

func shadedParts(main Fragment) []Fragment {
	return []Fragment{Common, Interface, FragmentCommon, PBR, Postprocess, main}
}

// Variants lists every generated shader in emission order: vertex variants
// first, then fragment variants.
var Variants = []Variant{
	{Name: "default_smooth.vert", Stage: StageVertex, Parts: vertexParts(VertexDefault)},
	{Name: "default_flat.vert", Stage: StageVertex, Flat: true, Parts: vertexParts(VertexDefault)},
	{Name: "cube.vert", Stage: StageVertex, Parts: vertexParts(VertexCube)},

	{Name: "flat.frag", Stage: StageFragment, Flat: true, Parts: shadedParts(MainUntextured), Pair: "default_flat.vert"},
	{Name: "smooth.frag", Stage: StageFragment, Parts: shadedParts(MainUntextured), Pair: "default_smooth.vert"},
	{Name: "unshaded.frag", Stage: StageFragment, Flat: true, Parts: shadedParts(MainUnshaded), Pair: "default_flat.vert"},
	{Name: "smooth_albedo_norm.frag", Stage: StageFragment, Parts: shadedParts(MainTexturedNorm), Pair: "default_smooth.vert"},
	{Name: "smooth_albedo_rough_norm.frag", Stage: StageFragment, Parts: shadedParts(MainTexturedRoughNorm), Pair: "default_smooth.vert"},
	{Name: "smooth_albedo_arm_norm.frag", Stage: StageFragment, Parts: shadedParts(MainTexturedARMNorm), Pair: "default_smooth.vert"},
	{Name: "flat_albedo.frag", Stage: StageFragment, Flat: true, Parts: shadedParts(MainTextured), Pair: "default_flat.vert"},
	{Name: "smooth_albedo.frag", Stage: StageFragment, Parts: shadedParts(MainTextured), Pair: "default_smooth.vert"},
	// Cubemap sampling is unlit: no PBR block, post-processing is kept.
	{Name: "unshaded_albedo_cube.frag", Stage: StageFragment, Parts: []Fragment{
		Common, Interface, FragmentCommon, Postprocess, MainUnshadedTexturedCube,
	}, Pair: "cube.vert"},
}

// LookupVariant returns the variant in [Variants] with the given name.
func LookupVariant(name string) (Variant, bool) {
	for _, v := range Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// AppendSource appends the assembled source of v to dst and returns the
// result. The Interface part is replaced by the output varyings for vertex
// variants and the input varyings for fragment variants.
func (lib *Library) AppendSource(dst []byte, v Variant) []byte {
	for _, part := range v.Parts {
		if part != Interface {
			dst = append(dst, lib.Source(part)...)
			continue
		}
		if v.Stage == StageVertex {
			dst = AppendOutputVaryings(dst, v.Flat)
		} else {
			dst = AppendInputVaryings(dst, v.Flat)
		}
	}
	return dst
}

// Assemble returns the complete source text of v.
func (lib *Library) Assemble(v Variant) string {
	return string(lib.AppendSource(nil, v))
}
