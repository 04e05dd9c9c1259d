// Package shadergen assembles the GLSL shader variants of a Vulkan renderer
// from a fixed library of source fragments and compiles them to SPIR-V.
//
// Every variant is plain concatenation: shared declarations, a varying block
// generated from [Varyings], stage common code and an entry point. The varying
// block of a vertex variant and of the fragment variant it is paired with are
// built from the same table, which keeps both sides of the interface in sync.
//
//	lib, err := shadergen.LoadLibrary(glsl.FS)
//	if err != nil {
//		return err
//	}
//	gen := shadergen.Generator{
//		Library:  lib,
//		Compiler: glslc.NewValidator(),
//		Config:   shadergen.Config{SourceDir: "out/glsl", BinaryDir: "out/spv"},
//	}
//	err = gen.Generate(ctx)
package shadergen
