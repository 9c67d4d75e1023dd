package game

import "strings"

// ParseError means the input does not look like a usable .osu difficulty.
type ParseError struct {
	Msg     string
	Missing []string // Required metadata fields that were not found
}

func (e *ParseError) Error() string {
	if len(e.Missing) > 0 {
		return "missing beatmap info: " + strings.Join(e.Missing, ", ")
	}
	return e.Msg
}
