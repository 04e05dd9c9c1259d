package shadergen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Compiler turns a GLSL source file into a binary shader at dst.
type Compiler interface {
	Compile(ctx context.Context, src, dst string) error
}

// Config configures a [Generator].
type Config struct {
	// SourceDir receives the assembled GLSL of every variant.
	SourceDir string
	// BinaryDir receives the compiled binaries, named <variant>.spv.
	BinaryDir string
	// Jobs is the number of variants emitted concurrently. Values below 2
	// emit sequentially.
	Jobs int
	// Log receives progress messages. Defaults to os.Stdout.
	Log    io.Writer
	Silent bool
}

// Generator writes and compiles every shader variant of a [Library].
type Generator struct {
	Library *Library
	// Compiler is invoked once per variant. A nil Compiler writes sources only.
	Compiler Compiler
	Config   Config
	// Variants to emit. Defaults to [Variants].
	Variants []Variant

	logmu sync.Mutex
}

// Generate creates the output directories and emits every variant. Any write
// or compile failure aborts the variants not yet started. Files written before
// the failure are left in place.
func (g *Generator) Generate(ctx context.Context) error {
	if g.Library == nil {
		return errors.New("Generate requires a fragment library")
	} else if g.Config.SourceDir == "" || g.Config.BinaryDir == "" {
		return errors.New("Generate requires source and binary output directories")
	}
	for _, dir := range []string{g.Config.SourceDir, g.Config.BinaryDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	variants := g.Variants
	if variants == nil {
		variants = Variants
	}
	watch := stopwatch()
	var err error
	if g.Config.Jobs > 1 {
		err = g.emitParallel(ctx, variants)
	} else {
		for _, v := range variants {
			if err = g.emit(ctx, v); err != nil {
				break
			}
		}
	}
	if err != nil {
		return err
	}
	g.log("generated", len(variants), "shader variants in", watch())
	return nil
}

// emitParallel emits on a bounded group. A failure skips the higher-index
// variants not yet started; lower-index variants always run so the first
// failure in variant order is the first one reported.
func (g *Generator) emitParallel(ctx context.Context, variants []Variant) error {
	errs := make([]error, len(variants))
	var failed atomic.Int64 // Lowest failed index.
	failed.Store(int64(len(variants)))
	var group errgroup.Group
	group.SetLimit(g.Config.Jobs)
	for i := range variants {
		group.Go(func() error {
			if int64(i) > failed.Load() {
				return nil
			}
			errs[i] = g.emit(ctx, variants[i])
			if errs[i] != nil {
				for low := failed.Load(); int64(i) < low; low = failed.Load() {
					if failed.CompareAndSwap(low, int64(i)) {
						break
					}
				}
			}
			return errs[i]
		})
	}
	group.Wait()
	return errors.Join(errs...)
}

func (g *Generator) emit(ctx context.Context, v Variant) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("emit %s: %w", v.Name, err)
	}
	watch := stopwatch()
	src := filepath.Join(g.Config.SourceDir, v.Name)
	err := os.WriteFile(src, g.Library.AppendSource(nil, v), 0o644)
	if err != nil {
		return fmt.Errorf("emit %s: %w", v.Name, err)
	}
	if g.Compiler != nil {
		err = g.Compiler.Compile(ctx, src, BinaryPath(g.Config.BinaryDir, v))
		if err != nil {
			return fmt.Errorf("emit %s: %w", v.Name, err)
		}
	}
	g.log("wrote", v.Name, "in", watch())
	return nil
}

// BinaryPath returns the path of the compiled binary of v inside dir.
func BinaryPath(dir string, v Variant) string {
	return filepath.Join(dir, v.Name+".spv")
}

func (g *Generator) log(args ...any) {
	if g.Config.Silent {
		return
	}
	w := g.Config.Log
	if w == nil {
		w = os.Stdout
	}
	g.logmu.Lock()
	fmt.Fprintln(w, args...)
	g.logmu.Unlock()
}

func stopwatch() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
