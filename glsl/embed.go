// Package glsl embeds the default fragment library the shader variants are
// assembled from. Descriptor set layouts follow the renderer's material,
// node and global uniform buffers.
package glsl

import "embed"

// FS holds every fragment file at its root.
//
//go:embed *.glsl *.vert *.frag
var FS embed.FS
