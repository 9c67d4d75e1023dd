package parser

import (
	"strings"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
)

const FormatVersion = "format version"

type field struct {
	prefix string
	name   string
}

// The order here is the order the fields are written in the header.
// The first four belong to [Metadata], the rest to [Difficulty].
var requiredFields = [...]field{
	{"Title:", "Title"},
	{"Artist:", "Artist"},
	{"Creator:", "Creator"},
	{"Version:", "Version"},
	{"HPDrainRate:", "HPDrainRate"},
	{"CircleSize:", "CircleSize"},
	{"OverallDifficulty:", "OverallDifficulty"},
	{"ApproachRate:", "ApproachRate"},
	{"SliderMultiplier:", "SliderMultiplier"},
	{"SliderTickRate:", "SliderTickRate"},
}

const metadataFieldCount = 4

// BuildHeader picks the required fields out of the metadata lines and
// composes the minimal beatmap header that the difficulty engine accepts.
// Every missing field is reported in one error.
func BuildHeader(metadata []string) (game.Header, error) {
	found := make([]string, len(requiredFields))
	missing := []string{}
	if len(metadata) == 0 {
		missing = append(missing, FormatVersion)
	}
	for i, f := range requiredFields {
		for _, line := range metadata {
			if strings.HasPrefix(line, f.prefix) {
				found[i] = line
				break
			}
		}
		if found[i] == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return game.Header{}, &game.ParseError{Missing: missing}
	}

	format := metadata[0]
	ending := LineEnding(metadata[:1])

	var b strings.Builder
	b.WriteString(format)
	b.WriteString("[General]" + ending)
	b.WriteString("[Metadata]" + ending)
	for _, line := range found[:metadataFieldCount] {
		b.WriteString(line)
	}
	b.WriteString("[Difficulty]" + ending)
	for _, line := range found[metadataFieldCount:] {
		b.WriteString(line)
	}
	b.WriteString("[TimingPoints]" + ending)
	b.WriteString(HitObjectsMarker + ending)

	fields := make(map[string]string, len(requiredFields)+1)
	fields[FormatVersion] = strings.TrimSpace(format)
	for i, f := range requiredFields {
		fields[f.name] = strings.TrimSpace(strings.TrimPrefix(found[i], f.prefix))
	}

	return game.Header{
		Text:       b.String(),
		LineEnding: ending,
		Fields:     fields,
	}, nil
}
