package shadergen

import (
	"fmt"
	"io/fs"
)

// Fragment identifies one of the fixed GLSL source blocks a shader variant is
// assembled from.
type Fragment uint8

const (
	// Interface is not loaded from a file. It marks where the varying block
	// for the variant's stage and flatness is placed.
	Interface Fragment = iota
	Common
	VertexCommon
	FragmentCommon
	VertexDefault
	VertexCube
	MainUntextured
	MainUnshaded
	MainTexturedNorm
	MainTexturedRoughNorm
	MainTexturedARMNorm
	MainTextured
	MainUnshadedTexturedCube
	PBR
	Postprocess
	numFragments
)

var fragmentFiles = [numFragments]string{
	Common:                   "common.glsl",
	VertexCommon:             "common.vert",
	FragmentCommon:           "common.frag",
	VertexDefault:            "default.vert",
	VertexCube:               "cube.vert",
	MainUntextured:           "main_untextured.frag",
	MainUnshaded:             "main_unshaded.frag",
	MainTexturedNorm:         "main_textured_norm.frag",
	MainTexturedRoughNorm:    "main_textured_rough_norm.frag",
	MainTexturedARMNorm:      "main_textured_arm_norm.frag",
	MainTextured:             "main_textured.frag",
	MainUnshadedTexturedCube: "main_unshaded_textured_cube.frag",
	PBR:                      "pbr.frag",
	Postprocess:              "postproc.frag",
}

// File returns the file name the fragment is loaded from, relative to the
// fragment directory. Interface has no file and returns the empty string.
func (f Fragment) File() string {
	if f >= numFragments {
		return ""
	}
	return fragmentFiles[f]
}

func (f Fragment) String() string {
	switch {
	case f == Interface:
		return "<interface>"
	case f >= numFragments:
		return fmt.Sprintf("Fragment(%d)", uint8(f))
	}
	return fragmentFiles[f]
}

// Library holds the text of every fragment. It is immutable once loaded.
type Library struct {
	src [numFragments]string
}

// LoadLibrary reads every fragment file from the root of fsys. It fails on
// the first missing or unreadable file so that no variant is ever assembled
// from a partial library.
func LoadLibrary(fsys fs.FS) (*Library, error) {
	lib := new(Library)
	for f := Common; f < numFragments; f++ {
		b, err := fs.ReadFile(fsys, f.File())
		if err != nil {
			return nil, fmt.Errorf("load fragment %q: %w", f.File(), err)
		}
		lib.src[f] = string(b)
	}
	return lib, nil
}

// Source returns the loaded text of the fragment.
func (lib *Library) Source(f Fragment) string {
	if f >= numFragments {
		return ""
	}
	return lib.src[f]
}

// Paths returns the fragment file names read by [LoadLibrary] in load order.
func (lib *Library) Paths() []string {
	paths := make([]string, 0, numFragments-1)
	for f := Common; f < numFragments; f++ {
		paths = append(paths, f.File())
	}
	return paths
}
