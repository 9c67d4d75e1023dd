// Package engine runs the external difficulty calculator on one window.
package engine

import (
	"context"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
	"github.com/pkg/errors"
)

// DefaultPath is looked up in PATH. The engine must be a build of oppai that
// prints its result as JSON.
const DefaultPath = "oppai"

// ErrEngine is wrapped by every failure to get a rating out of the engine.
var ErrEngine = errors.New("difficulty engine failed")

type Engine interface {
	// Evaluate rates the beatmap stored at file.
	Evaluate(ctx context.Context, file string) (game.Rating, error)
}

// Func lets a plain function act as an Engine.
type Func func(ctx context.Context, file string) (game.Rating, error)

func (f Func) Evaluate(ctx context.Context, file string) (game.Rating, error) {
	return f(ctx, file)
}
