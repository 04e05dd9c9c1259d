// Package glslc invokes the glslang reference compiler on generated shader
// sources and checks the SPIR-V it produces.
package glslc

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// DefaultBin is the glslang reference compiler executable.
const DefaultBin = "glslangValidator"

// Validator compiles GLSL to Vulkan SPIR-V with glslangValidator.
type Validator struct {
	// Bin is the compiler executable, looked up in PATH if not absolute.
	Bin string
	// Stdout and Stderr receive compiler diagnostics unmodified.
	// They default to the process's standard streams.
	Stdout io.Writer
	Stderr io.Writer
	// Verify reads back the produced binary and checks it is a SPIR-V module
	// with an entry point for the stage implied by the source extension.
	Verify bool
}

// NewValidator returns a Validator running [DefaultBin] with output verification.
func NewValidator() *Validator { return &Validator{Bin: DefaultBin, Verify: true} }

// Args returns the argument vector passed to the compiler for src and dst.
func (glsl *Validator) Args(src, dst string) []string {
	return []string{
		"-V",      // Vulkan semantics, SPIR-V output.
		"--quiet", // Only print diagnostics.
		src,
		"-o", dst,
	}
}

// Compile compiles the GLSL file at src and writes SPIR-V to dst. A non-zero
// compiler exit status is returned as an error naming the source file.
func (glsl *Validator) Compile(ctx context.Context, src, dst string) error {
	bin := glsl.Bin
	if bin == "" {
		bin = DefaultBin
	}
	cmd := exec.CommandContext(ctx, bin, glsl.Args(src, dst)...)
	cmd.Stdout = orDefault(glsl.Stdout, os.Stdout)
	cmd.Stderr = orDefault(glsl.Stderr, os.Stderr)
	name := filepath.Base(src)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s for %s failed: %w", filepath.Base(bin), name, err)
	}
	if !glsl.Verify {
		return nil
	}
	want, ok := StageOf(src)
	if !ok {
		return nil
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		return fmt.Errorf("unable to read output %q: %w", dst, err)
	}
	mod, err := Inspect(b)
	if err != nil {
		return fmt.Errorf("%s: %w", dst, err)
	}
	if !mod.HasEntryPoint(want) {
		return fmt.Errorf("%s: no %s entry point in output of %s", dst, modelName(want), name)
	}
	return nil
}

func orDefault(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
