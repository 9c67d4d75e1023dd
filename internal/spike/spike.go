// Package spike flags windows matching a user supplied expression such as
// "Overall > 5.5 || Aim - Speed > 1".
package spike

import (
	"git.lost.host/meutraa/oppai-chunks/internal/game"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
)

// Env is what an expression can refer to.
type Env struct {
	Time    int
	Overall float64
	Aim     float64
	Speed   float64
}

type Marker struct {
	source  string
	program *vm.Program
}

func Compile(source string) (*Marker, error) {
	program, err := expr.Compile(source, expr.Env(Env{}), expr.AsBool())
	if nil != err {
		return nil, errors.Wrapf(err, "invalid mark expression %q", source)
	}
	return &Marker{source: source, program: program}, nil
}

func (m *Marker) Match(r game.WindowResult) (bool, error) {
	out, err := expr.Run(m.program, Env{
		Time:    r.Time,
		Overall: r.Overall,
		Aim:     r.Aim,
		Speed:   r.Speed,
	})
	if nil != err {
		return false, errors.Wrapf(err, "evaluating %q at %d ms", m.source, r.Time)
	}
	matched, _ := out.(bool)
	return matched, nil
}

func (m *Marker) String() string {
	return m.source
}
