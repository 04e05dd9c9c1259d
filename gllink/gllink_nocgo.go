//go:build tinygo || !cgo

package gllink

import (
	"context"
	"errors"
)

// Check reports an error: linking needs an OpenGL context, which needs cgo.
func Check(ctx context.Context, pairs []Pair, cfg Config) error {
	return errors.New("require cgo for GL link check")
}
