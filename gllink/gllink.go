// Package gllink links generated vertex/fragment shader pairs with the local
// OpenGL driver. It catches interface mismatches between the two stages that
// compiling each stage on its own cannot.
//
// The fragment library selects Vulkan descriptor set qualifiers behind the
// VULKAN macro, so the same sources compile for an OpenGL 4.6 core context.
// Running the check requires cgo and a display.
package gllink

import (
	"fmt"
	"io"
	"os"

	"github.com/soypat/shadergen"
)

// Pair is a vertex and fragment source linked into one program.
type Pair struct {
	Name     string
	Vertex   string
	Fragment string
}

// Config configures [Check].
type Config struct {
	// Log receives progress messages. Defaults to os.Stdout.
	Log    io.Writer
	Silent bool
}

// Pairs assembles every fragment variant of [shadergen.Variants] together
// with the vertex variant it is paired with.
func Pairs(lib *shadergen.Library) ([]Pair, error) {
	var pairs []Pair
	for _, frag := range shadergen.Variants {
		if frag.Stage != shadergen.StageFragment {
			continue
		}
		vert, ok := shadergen.LookupVariant(frag.Pair)
		if !ok || vert.Stage != shadergen.StageVertex {
			return nil, fmt.Errorf("%s paired with unknown vertex variant %q", frag.Name, frag.Pair)
		}
		pairs = append(pairs, Pair{
			Name:     vert.Name + "+" + frag.Name,
			Vertex:   lib.Assemble(vert),
			Fragment: lib.Assemble(frag),
		})
	}
	return pairs, nil
}

// combined returns the pair in the "#shader <stage>" combined source format.
func (p Pair) combined() string {
	return "#shader vertex\n" + p.Vertex + "\n#shader fragment\n" + p.Fragment + "\n"
}

func (cfg Config) log(args ...any) {
	if cfg.Silent {
		return
	}
	w := cfg.Log
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintln(w, args...)
}
