// Package window slides a fixed length window over a beatmap's hit objects
// and rates each window with a difficulty engine.
package window

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/oppai-chunks/internal/engine"
	"git.lost.host/meutraa/oppai-chunks/internal/game"
	"github.com/pkg/errors"
)

const (
	DefaultLength = 30000
	DefaultStep   = 5000

	fileName = "window.osu"
)

var ErrInvalidWindow = errors.New("window length and step size must be positive")

type Options struct {
	Length int // Window length in ms
	Step   int // Distance between window starts in ms

	// TempDir is where the scratch directory is created, the system
	// default when empty.
	TempDir string
	Logger  *log.Logger
}

// Evaluator produces one WindowResult per step, starting at 0 ms, until no
// hit objects are left. It is used like a bufio.Scanner and cannot be
// restarted.
type Evaluator struct {
	header game.Header
	pool   []game.HitObject
	engine engine.Engine
	opts   Options
	logger *log.Logger

	seek   int
	dir    string
	result game.WindowResult
	err    error
	done   bool
}

func New(header game.Header, objects []game.HitObject, e engine.Engine, opts Options) (*Evaluator, error) {
	if opts.Length <= 0 || opts.Step <= 0 {
		return nil, errors.Wrapf(ErrInvalidWindow, "got window %d ms, step %d ms", opts.Length, opts.Step)
	}
	logger := opts.Logger
	if nil == logger {
		logger = log.New(io.Discard, "", 0)
	}
	pool := make([]game.HitObject, len(objects))
	copy(pool, objects)
	return &Evaluator{
		header: header,
		pool:   pool,
		engine: e,
		opts:   opts,
		logger: logger,
	}, nil
}

// Next computes the next window. It returns false once the hit objects are
// exhausted or an error occurred, see Err.
func (e *Evaluator) Next(ctx context.Context) bool {
	if e.done {
		return false
	}
	if len(e.pool) == 0 {
		e.finish(nil)
		return false
	}
	if err := ctx.Err(); nil != err {
		e.finish(err)
		return false
	}

	end := e.seek + e.opts.Length
	window := make([]game.HitObject, 0, len(e.pool))
	for _, o := range e.pool {
		if o.Time < end {
			window = append(window, o)
		}
	}

	// An empty window has no difficulty, it is reported as zero.
	var rating game.Rating
	if len(window) > 0 {
		r, err := e.evaluate(ctx, window)
		if nil != err {
			e.finish(errors.Wrapf(err, "window at %d ms", e.seek))
			return false
		}
		rating = r
	}
	e.logger.Printf("window %d-%d ms: %d objects, %v stars", e.seek, end, len(window), rating.Overall)
	e.result = game.WindowResult{Time: e.seek, Rating: rating}

	e.seek += e.opts.Step
	kept := e.pool[:0]
	for _, o := range e.pool {
		if o.Time > e.seek {
			kept = append(kept, o)
		}
	}
	e.pool = kept
	return true
}

func (e *Evaluator) Result() game.WindowResult {
	return e.result
}

func (e *Evaluator) Err() error {
	return e.err
}

// Close removes the scratch directory. It is safe to call more than once
// and after Next has returned false.
func (e *Evaluator) Close() error {
	if e.done {
		return nil
	}
	e.done = true
	return e.cleanup()
}

// All drains the evaluator. On error no results are returned.
func (e *Evaluator) All(ctx context.Context) ([]game.WindowResult, error) {
	defer e.Close()
	results := []game.WindowResult{}
	for e.Next(ctx) {
		results = append(results, e.Result())
	}
	if err := e.Err(); nil != err {
		return nil, err
	}
	return results, nil
}

func (e *Evaluator) evaluate(ctx context.Context, window []game.HitObject) (game.Rating, error) {
	if e.dir == "" {
		dir, err := os.MkdirTemp(e.opts.TempDir, "oppai-chunks-")
		if nil != err {
			return game.Rating{}, errors.Wrap(err, "unable to create scratch directory")
		}
		e.dir = dir
		e.logger.Println("scratch directory", dir)
	}

	var b strings.Builder
	b.WriteString(e.header.Text)
	for _, o := range window {
		b.WriteString(o.Line)
	}
	file := filepath.Join(e.dir, fileName)
	if err := os.WriteFile(file, []byte(b.String()), 0o600); nil != err {
		return game.Rating{}, errors.Wrap(err, "unable to write window")
	}
	return e.engine.Evaluate(ctx, file)
}

func (e *Evaluator) finish(err error) {
	e.done = true
	if cerr := e.cleanup(); nil == err {
		err = cerr
	}
	e.err = err
}

func (e *Evaluator) cleanup() error {
	if e.dir == "" {
		return nil
	}
	dir := e.dir
	e.dir = ""
	return errors.Wrap(os.RemoveAll(dir), "unable to remove scratch directory")
}

// Evaluate rates every window of a parsed beatmap.
func Evaluate(ctx context.Context, b *game.Beatmap, e engine.Engine, opts Options) ([]game.WindowResult, error) {
	evaluator, err := New(b.Header, b.HitObjects, e, opts)
	if nil != err {
		return nil, err
	}
	return evaluator.All(ctx)
}
