// Command shadergen assembles the renderer's GLSL shader variants and compiles
// them to SPIR-V with glslangValidator.
//
// Usage:
//
//	shadergen [options] <source_output_dir> <binary_output_dir>
//
// Examples:
//
//	shadergen out/src out/bin                            # Fragments from ./glsl
//	shadergen -embedded -j 4 out/src out/bin             # Built-in fragments, 4 jobs
//	shadergen -nocompile -depfile shaders.d out/src out/bin
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	"github.com/soypat/shadergen"
	"github.com/soypat/shadergen/gllink"
	"github.com/soypat/shadergen/glsl"
	"github.com/soypat/shadergen/glslc"
)

// errUsage is returned for malformed command lines; main exits with status 2.
var errUsage = errors.New("usage")

type flags struct {
	glslDir   string
	embedded  bool
	compiler  string
	noCompile bool
	verify    bool
	jobs      int
	glLink    bool
	depfile   string
	list      bool
	silent    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if errors.Is(err, errUsage) {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "shadergen:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var f flags
	fset := flag.NewFlagSet("shadergen", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&f.glslDir, "glsl", "glsl", "directory holding the fragment files")
	fset.BoolVar(&f.embedded, "embedded", false, "use the built-in fragment files instead of -glsl")
	fset.StringVar(&f.compiler, "compiler", glslc.DefaultBin, "shader compiler executable")
	fset.BoolVar(&f.noCompile, "nocompile", false, "write sources only, do not invoke the compiler")
	fset.BoolVar(&f.verify, "verify", true, "check every compiled binary is SPIR-V with the expected entry point")
	fset.IntVar(&f.jobs, "j", 1, "number of variants emitted concurrently")
	fset.BoolVar(&f.glLink, "gl-link", false, "link every vertex/fragment pair with the OpenGL driver (requires cgo)")
	fset.StringVar(&f.depfile, "depfile", "", "write a Make style depfile to this path")
	fset.BoolVar(&f.list, "list", false, "print the variant table and exit")
	fset.BoolVar(&f.silent, "silent", false, "suppress progress output")
	fset.Usage = func() { usage(fset) }
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}
	if f.list {
		return listVariants(stdout)
	}
	if fset.NArg() != 2 {
		fmt.Fprintln(stderr, "Error: expected source and binary output directories")
		usage(fset)
		return errUsage
	}
	srcDir, binDir := fset.Arg(0), fset.Arg(1)

	var fsys fs.FS = glsl.FS
	if !f.embedded {
		fsys = os.DirFS(f.glslDir)
	}
	lib, err := shadergen.LoadLibrary(fsys)
	if err != nil {
		return err
	}
	gen := shadergen.Generator{
		Library: lib,
		Config: shadergen.Config{
			SourceDir: srcDir,
			BinaryDir: binDir,
			Jobs:      f.jobs,
			Log:       stdout,
			Silent:    f.silent,
		},
	}
	if !f.noCompile {
		gen.Compiler = &glslc.Validator{Bin: f.compiler, Stdout: stdout, Stderr: stderr, Verify: f.verify}
	}
	if err := gen.Generate(ctx); err != nil {
		return err
	}
	if f.glLink {
		pairs, err := gllink.Pairs(lib)
		if err != nil {
			return err
		}
		err = gllink.Check(ctx, pairs, gllink.Config{Log: stdout, Silent: f.silent})
		if err != nil {
			return err
		}
	}
	if f.depfile != "" {
		return writeDepfile(f, lib, srcDir)
	}
	return nil
}

// writeDepfile records the fragment files as inputs of the first generated
// source. Embedded fragments have no file dependencies.
func writeDepfile(f flags, lib *shadergen.Library, srcDir string) error {
	var inputs []string
	if !f.embedded {
		for _, p := range lib.Paths() {
			inputs = append(inputs, filepath.Join(f.glslDir, p))
		}
	}
	fp, err := os.Create(f.depfile)
	if err != nil {
		return fmt.Errorf("writing depfile: %w", err)
	}
	defer fp.Close()
	target := filepath.Join(srcDir, shadergen.Variants[0].Name)
	if err := shadergen.WriteDepfile(fp, target, inputs); err != nil {
		return fmt.Errorf("writing depfile: %w", err)
	}
	return fp.Close()
}

func listVariants(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTAGE\tFLAT\tPAIR\tPARTS")
	for _, v := range shadergen.Variants {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%v\n", v.Name, v.Stage, v.Flat, v.Pair, v.Parts)
	}
	return tw.Flush()
}

func usage(fset *flag.FlagSet) {
	w := fset.Output()
	fmt.Fprintf(w, "Usage: shadergen [options] <source_output_dir> <binary_output_dir>\n\n")
	fmt.Fprintf(w, "Options:\n")
	fset.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  shadergen out/src out/bin                 Generate and compile every variant\n")
	fmt.Fprintf(w, "  shadergen -embedded -j 4 out/src out/bin  Built-in fragments, 4 parallel jobs\n")
	fmt.Fprintf(w, "  shadergen -list                           Print the variant table\n")
}
