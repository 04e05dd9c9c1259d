package shadergen

import "strconv"

// Varying is one row of the interface between the vertex and fragment stage.
type Varying struct {
	Location int
	Type     string
	Name     string
	// Flattenable varyings get the flat qualifier in flat shaded variants.
	Flattenable bool
}

// Varyings is the interface shared by every vertex/fragment pair. Output and
// input blocks are both generated from this table so their locations, types
// and names cannot diverge.
var Varyings = []Varying{
	{Location: 0, Type: "vec2", Name: "texCoord"},
	{Location: 1, Type: "vec3", Name: "normal_w", Flattenable: true},
	{Location: 2, Type: "vec3", Name: "pos_w"},
	{Location: 3, Type: "vec3", Name: "pos_local"},
	{Location: 4, Type: "mat3", Name: "tbn"},
}

const (
	outputHeader = "\n/** Output varyings **/\n"
	inputHeader  = "\n// Input varyings.\n"
	perVertex    = "\nout gl_PerVertex {\n\tvec4 gl_Position;\n};\n"
)

// AppendOutputVaryings appends the vertex stage output block followed by the
// gl_PerVertex built-in block to dst and returns the result.
func AppendOutputVaryings(dst []byte, flat bool) []byte {
	dst = append(dst, outputHeader...)
	dst = appendVaryings(dst, "out", flat)
	return append(dst, perVertex...)
}

// AppendInputVaryings appends the fragment stage input block to dst and
// returns the result. It mirrors [AppendOutputVaryings] without gl_PerVertex.
func AppendInputVaryings(dst []byte, flat bool) []byte {
	dst = append(dst, inputHeader...)
	return appendVaryings(dst, "in", flat)
}

// OutputVaryings returns the vertex stage output block.
func OutputVaryings(flat bool) string { return string(AppendOutputVaryings(nil, flat)) }

// InputVaryings returns the fragment stage input block.
func InputVaryings(flat bool) string { return string(AppendInputVaryings(nil, flat)) }

func appendVaryings(dst []byte, direction string, flat bool) []byte {
	for _, v := range Varyings {
		dst = append(dst, "layout(location = "...)
		dst = strconv.AppendInt(dst, int64(v.Location), 10)
		dst = append(dst, ") "...)
		dst = append(dst, direction...)
		dst = append(dst, ' ')
		if flat && v.Flattenable {
			dst = append(dst, "flat "...)
		}
		dst = append(dst, v.Type...)
		dst = append(dst, ' ')
		dst = append(dst, v.Name...)
		dst = append(dst, ";\n"...)
	}
	return dst
}
