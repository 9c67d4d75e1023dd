package testdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// GetBeatmap returns a small but complete .osu difficulty with hit objects at
// 1000, 4000, 31000 and 36000 ms.
func GetBeatmap() string {
	return data
}

// GetBeatmapCRLF is GetBeatmap with Windows line endings, as the game writes them.
func GetBeatmapCRLF() string {
	return strings.ReplaceAll(data, "\n", "\r\n")
}

// WriteBeatmap writes text to name inside dir and returns the path.
func WriteBeatmap(t testing.TB, dir, name, text string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(text), 0o644); nil != err {
		t.Fatal("unable to write beatmap", err)
	}
	return p
}

// FakeEngine writes an executable shell script standing in for oppai.
// It prints the number of hit object lines it was given as "stars".
func FakeEngine(t testing.TB, dir string) string {
	t.Helper()
	return WriteScript(t, dir, "oppai", `#!/bin/sh
n=$(sed '1,/^\[HitObjects\]/d' "$1" | grep -c .)
printf '{"stars": %s, "aim_stars": 1.5, "speed_stars": "2.25"}\n' "$n"
`)
}

func WriteScript(t testing.TB, dir, name, script string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(script), 0o755); nil != err {
		t.Fatal("unable to write script", err)
	}
	return p
}
