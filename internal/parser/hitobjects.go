package parser

import (
	"fmt"
	"strconv"
	"strings"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
)

// ParseHitObjects reads the timestamp of every hit object line.
// Blank lines are skipped; anything else without an integer third field
// rejects the whole beatmap.
func ParseHitObjects(lines []string) ([]game.HitObject, error) {
	objects := make([]game.HitObject, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 4)
		if len(parts) < 3 {
			return nil, &game.ParseError{Msg: fmt.Sprintf(
				"unexpected line %d in [HitObjects] section: %q", i+1, strings.TrimSpace(line),
			)}
		}
		ms, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if nil != err {
			return nil, &game.ParseError{Msg: fmt.Sprintf(
				"invalid time on line %d in [HitObjects] section: %q", i+1, strings.TrimSpace(line),
			)}
		}
		objects = append(objects, game.HitObject{Line: line, Time: ms})
	}
	return objects, nil
}
