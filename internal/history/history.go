package history

import (
	"time"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
)

type Store interface {
	Init() error
	Deinit()

	// Save records a finished evaluation of the beatmap
	Save(b *game.Beatmap, window, step int, results []game.WindowResult) (Run, error)

	// Load returns earlier runs of the same beatmap, oldest first
	Load(b *game.Beatmap) ([]Run, error)
}

type Run struct {
	ID      string
	Sum     string
	Name    string
	Window  int
	Step    int
	Created time.Time
	Results []game.WindowResult
}

// Peak is the window with the highest overall rating.
func (r *Run) Peak() game.WindowResult {
	var peak game.WindowResult
	for i, res := range r.Results {
		if i == 0 || res.Overall > peak.Overall {
			peak = res
		}
	}
	return peak
}
