package engine

import (
	"encoding/json"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const maxQuoted = 200

// Decode reads the engine's JSON output. stars, aim_stars and speed_stars
// must be present and numeric, either as numbers or numeric strings.
func Decode(out []byte) (game.Rating, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(out, &fields); nil != err {
		return game.Rating{}, errors.Wrapf(ErrEngine, "malformed output %q: %v", quote(out), err)
	}

	var r game.Rating
	targets := []struct {
		key string
		dst *float64
	}{
		{"stars", &r.Overall},
		{"aim_stars", &r.Aim},
		{"speed_stars", &r.Speed},
	}
	for _, target := range targets {
		v, ok := fields[target.key]
		if !ok {
			return game.Rating{}, errors.Wrapf(ErrEngine, "output has no %q: %q", target.key, quote(out))
		}
		switch v.(type) {
		case float64, string:
		default:
			return game.Rating{}, errors.Wrapf(ErrEngine, "%q is not a number: %v", target.key, v)
		}
		n, err := cast.ToFloat64E(v)
		if nil != err {
			return game.Rating{}, errors.Wrapf(ErrEngine, "%q is not a number: %v", target.key, err)
		}
		*target.dst = n
	}
	return r, nil
}

func quote(out []byte) string {
	if len(out) > maxQuoted {
		return string(out[:maxQuoted]) + "..."
	}
	return string(out)
}
