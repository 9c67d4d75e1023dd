package parser

import "git.lost.host/meutraa/oppai-chunks/internal/game"

type Parser interface {
	Parse(file string) (*game.Beatmap, error)
}
