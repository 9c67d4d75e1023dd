package parser

import (
	"git.lost.host/meutraa/oppai-chunks/internal/game"
)

type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*game.Beatmap, error) {
	metadata, lines, err := ReadFile(file)
	if nil != err {
		return nil, err
	}
	return p.parse(metadata, lines)
}

// ParseString is Parse for a beatmap that is already in memory.
func (p *DefaultParser) ParseString(text string) (*game.Beatmap, error) {
	metadata, lines, err := ReadString(text)
	if nil != err {
		return nil, err
	}
	return p.parse(metadata, lines)
}

func (p *DefaultParser) parse(metadata, lines []string) (*game.Beatmap, error) {
	header, err := BuildHeader(metadata)
	if nil != err {
		return nil, err
	}
	objects, err := ParseHitObjects(lines)
	if nil != err {
		return nil, err
	}
	return &game.Beatmap{Header: header, HitObjects: objects}, nil
}
