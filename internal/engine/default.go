package engine

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
	"github.com/pkg/errors"
)

type DefaultEngine struct {
	Path    string        // Executable, DefaultPath when empty
	Timeout time.Duration // Per call, zero waits forever
}

func (e *DefaultEngine) path() string {
	if e.Path == "" {
		return DefaultPath
	}
	return e.Path
}

func (e *DefaultEngine) Evaluate(ctx context.Context, file string) (game.Rating, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.path(), file)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); nil != err {
		if nil != ctx.Err() {
			return game.Rating{}, errors.Wrapf(ErrEngine, "%s: %v", e.path(), ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return game.Rating{}, errors.Wrapf(ErrEngine, "%s: %v: %s", e.path(), err, msg)
		}
		return game.Rating{}, errors.Wrapf(ErrEngine, "%s: %v", e.path(), err)
	}

	rating, err := Decode(stdout.Bytes())
	if nil != err {
		return game.Rating{}, errors.WithMessage(err, e.path())
	}
	return rating, nil
}
