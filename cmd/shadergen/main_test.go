package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/shadergen"
)

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"only-one"}, {"a", "b", "c"}, {"-unknown", "a", "b"}} {
		var stdout, stderr strings.Builder
		err := run(context.Background(), args, &stdout, &stderr)
		if !errors.Is(err, errUsage) {
			t.Errorf("%q: got %v, want usage error", args, err)
		}
		if !strings.Contains(stderr.String(), "Usage: shadergen") {
			t.Errorf("%q: usage not printed", args)
		}
	}
}

func TestRunList(t *testing.T) {
	var stdout, stderr strings.Builder
	if err := run(context.Background(), []string{"-list"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	for _, v := range shadergen.Variants {
		if !strings.Contains(out, v.Name) {
			t.Errorf("variant %s not listed", v.Name)
		}
	}
}

func TestRunEmbeddedNoCompile(t *testing.T) {
	dir := t.TempDir()
	src, bin := filepath.Join(dir, "src"), filepath.Join(dir, "bin")
	depfile := filepath.Join(dir, "shaders.d")
	var stdout, stderr strings.Builder
	args := []string{"-embedded", "-nocompile", "-silent", "-j", "3", "-depfile", depfile, src, bin}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(shadergen.Variants) {
		t.Errorf("wrote %d sources, want %d", len(entries), len(shadergen.Variants))
	}
	if _, err := os.Stat(bin); err != nil {
		t.Errorf("binary directory not created: %v", err)
	}
	dep, err := os.ReadFile(depfile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(dep), filepath.Join(src, "default_smooth.vert")+":") {
		t.Errorf("unexpected depfile %q", dep)
	}
	if stdout.Len() != 0 {
		t.Errorf("silent run logged %q", stdout.String())
	}
}

func TestRunFragmentDir(t *testing.T) {
	glslDir := t.TempDir()
	lib := shadergen.Library{}
	for _, p := range lib.Paths() {
		err := os.WriteFile(filepath.Join(glslDir, p), []byte("// "+p+"\n"), 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}
	dir := t.TempDir()
	src, bin := filepath.Join(dir, "src"), filepath.Join(dir, "bin")
	depfile := filepath.Join(dir, "shaders.d")
	var stdout, stderr strings.Builder
	args := []string{"-glsl", glslDir, "-nocompile", "-depfile", depfile, src, bin}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(src, "cube.vert"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "// cube.vert") || strings.Contains(string(b), "// default.vert") {
		t.Errorf("cube.vert has wrong composition:\n%s", b)
	}
	dep, err := os.ReadFile(depfile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dep), filepath.Join(glslDir, "pbr.frag")) {
		t.Errorf("depfile missing fragment input:\n%s", dep)
	}
	if !strings.Contains(stdout.String(), "wrote cube.vert") {
		t.Errorf("missing progress output:\n%s", stdout.String())
	}
}

func TestRunMissingFragments(t *testing.T) {
	dir := t.TempDir()
	src, bin := filepath.Join(dir, "src"), filepath.Join(dir, "bin")
	var stdout, stderr strings.Builder
	args := []string{"-glsl", filepath.Join(dir, "nonexistent"), src, bin}
	err := run(context.Background(), args, &stdout, &stderr)
	if err == nil || errors.Is(err, errUsage) {
		t.Fatalf("expected load error, got %v", err)
	}
	for _, out := range []string{src, bin} {
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Errorf("%s created despite load failure", out)
		}
	}
}

func TestRunCompilerFailure(t *testing.T) {
	dir := t.TempDir()
	src, bin := filepath.Join(dir, "src"), filepath.Join(dir, "bin")
	var stdout, stderr strings.Builder
	args := []string{"-embedded", "-silent", "-compiler", filepath.Join(dir, "no-such-compiler"), src, bin}
	err := run(context.Background(), args, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), shadergen.Variants[0].Name) {
		t.Fatalf("expected error naming first variant, got %v", err)
	}
	entries, _ := os.ReadDir(src)
	if len(entries) != 1 {
		t.Errorf("wrote %d sources after failure, want 1", len(entries))
	}
}
