package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
	"github.com/pkg/errors"
)

const (
	Extension        = ".osu"
	HitObjectsMarker = "[HitObjects]"

	byteOrderMark = "\uFEFF"
)

// ReadFile reads a .osu file and splits it into metadata and hit object lines.
func ReadFile(file string) ([]string, []string, error) {
	if !strings.HasSuffix(file, Extension) {
		return nil, nil, &game.ParseError{Msg: fmt.Sprintf("%q is not a %s file", file, Extension)}
	}
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, nil, errors.Wrap(err, "unable to read beatmap")
	}
	return ReadString(string(data))
}

func Read(r io.Reader) ([]string, []string, error) {
	data, err := io.ReadAll(r)
	if nil != err {
		return nil, nil, errors.Wrap(err, "unable to read beatmap")
	}
	return ReadString(string(data))
}

// ReadString splits a whole beatmap held in memory.
func ReadString(text string) ([]string, []string, error) {
	return ReadLines(SplitLines(strings.TrimPrefix(text, byteOrderMark)))
}

// ReadLines splits already separated lines at the first line starting with
// [HitObjects]. The marker itself belongs to neither half.
// Lines missing a terminator get the document's line ending appended, the
// input slice is not modified.
func ReadLines(lines []string) ([]string, []string, error) {
	ending := LineEnding(lines)
	normalised := make([]string, len(lines))
	for i, line := range lines {
		if !strings.HasSuffix(line, "\n") {
			line += ending
		}
		normalised[i] = line
	}

	for i, line := range normalised {
		if strings.HasPrefix(line, HitObjectsMarker) {
			return normalised[:i:i], normalised[i+1:], nil
		}
	}
	return nil, nil, &game.ParseError{Msg: `missing "[HitObjects]"`}
}

// SplitLines splits text after every "\n", so each line keeps its terminator.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// LineEnding reports the terminator used by the first terminated line,
// "\n" if there is none.
func LineEnding(lines []string) string {
	for _, line := range lines {
		if strings.HasSuffix(line, "\r\n") {
			return "\r\n"
		}
		if strings.HasSuffix(line, "\n") {
			return "\n"
		}
	}
	return "\n"
}
