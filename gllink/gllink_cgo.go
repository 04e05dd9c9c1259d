//go:build !tinygo && cgo

package gllink

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

// Check compiles and links every pair in a hidden OpenGL 4.6 core context.
// It stops at the first pair that fails and names it in the error.
func Check(ctx context.Context, pairs []Pair, cfg Config) error {
	if len(pairs) == 0 {
		return errors.New("no shader pairs to link")
	}
	runtime.LockOSThread() // GL contexts are bound to the OS thread.
	defer runtime.UnlockOSThread()
	terminate, err := startGLFW()
	if err != nil {
		return err
	}
	defer terminate()
	cfg.log("linking with", gl.GoStr(gl.GetString(gl.VERSION)))
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := link(p); err != nil {
			return fmt.Errorf("link %s: %w", p.Name, err)
		}
		cfg.log("linked", p.Name)
	}
	return nil
}

func link(p Pair) error {
	src, err := glgl.ParseCombined(strings.NewReader(p.combined()))
	if err != nil {
		return err
	}
	prog, err := glgl.CompileProgram(src)
	if err != nil {
		return err
	}
	prog.Delete()
	return nil
}

func startGLFW() (terminate func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err := glfw.CreateWindow(1, 1, "gllink", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating GLFW window: %w", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	return func() {
		window.Destroy()
		glfw.Terminate()
	}, nil
}
