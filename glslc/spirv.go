package glslc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gogpu/naga/spirv"
)

const headerWords = 5

// Module is the header and entry point summary of a SPIR-V binary.
type Module struct {
	Version     spirv.Version
	Generator   uint32
	Bound       uint32
	EntryPoints []EntryPoint
}

// EntryPoint is a decoded OpEntryPoint instruction.
type EntryPoint struct {
	Model    spirv.ExecutionModel
	Function uint32
	Name     string
}

// HasEntryPoint reports whether the module declares an entry point for the
// execution model.
func (m Module) HasEntryPoint(model spirv.ExecutionModel) bool {
	for _, ep := range m.EntryPoints {
		if ep.Model == model {
			return true
		}
	}
	return false
}

// Inspect decodes the header of a little-endian SPIR-V binary and walks its
// instruction stream collecting entry points. It does not validate the module.
func Inspect(b []byte) (Module, error) {
	if len(b)%4 != 0 {
		return Module{}, errors.New("spirv: length not a multiple of the word size")
	} else if len(b) < 4*headerWords {
		return Module{}, errors.New("spirv: truncated header")
	}
	word := func(i int) uint32 { return binary.LittleEndian.Uint32(b[4*i:]) }
	if magic := word(0); magic != spirv.MagicNumber {
		return Module{}, fmt.Errorf("spirv: bad magic number %#08x", magic)
	}
	v := word(1)
	mod := Module{
		Version:   spirv.Version{Major: uint8(v >> 16), Minor: uint8(v >> 8)},
		Generator: word(2),
		Bound:     word(3),
	}
	nwords := len(b) / 4
	for i := headerWords; i < nwords; {
		inst := word(i)
		count := int(inst >> 16)
		op := spirv.OpCode(inst & 0xffff)
		if count == 0 || i+count > nwords {
			return Module{}, fmt.Errorf("spirv: malformed instruction at word %d", i)
		}
		if op == spirv.OpEntryPoint {
			if count < 4 {
				return Module{}, fmt.Errorf("spirv: short OpEntryPoint at word %d", i)
			}
			operands := b[4*(i+3) : 4*(i+count)]
			name, _, _ := bytes.Cut(operands, []byte{0})
			mod.EntryPoints = append(mod.EntryPoints, EntryPoint{
				Model:    spirv.ExecutionModel(word(i + 1)),
				Function: word(i + 2),
				Name:     string(name),
			})
		}
		i += count
	}
	return mod, nil
}

// StageOf returns the execution model implied by a glslang source file
// extension (.vert or .frag).
func StageOf(path string) (spirv.ExecutionModel, bool) {
	switch filepath.Ext(path) {
	case ".vert":
		return spirv.ExecutionModelVertex, true
	case ".frag":
		return spirv.ExecutionModelFragment, true
	}
	return 0, false
}

func modelName(model spirv.ExecutionModel) string {
	switch model {
	case spirv.ExecutionModelVertex:
		return "vertex"
	case spirv.ExecutionModelFragment:
		return "fragment"
	}
	return fmt.Sprintf("execution model %d", uint32(model))
}
