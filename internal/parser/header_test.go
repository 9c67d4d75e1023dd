package parser

import (
	"errors"
	"strings"
	"testing"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
	"git.lost.host/meutraa/oppai-chunks/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedHeader = "osu file format v14\n" +
	"[General]\n" +
	"[Metadata]\n" +
	"Title:Windowed\n" +
	"Artist:Chunk Band\n" +
	"Creator:mapper\n" +
	"Version:Insane\n" +
	"[Difficulty]\n" +
	"HPDrainRate:5\n" +
	"CircleSize:4\n" +
	"OverallDifficulty:8\n" +
	"ApproachRate:9\n" +
	"SliderMultiplier:1.8\n" +
	"SliderTickRate:1\n" +
	"[TimingPoints]\n" +
	"[HitObjects]\n"

func TestBuildHeader(t *testing.T) {
	metadata, _, err := ReadString(testdata.GetBeatmap())
	require.NoError(t, err)

	header, err := BuildHeader(metadata)
	require.NoError(t, err)
	assert.Equal(t, expectedHeader, header.Text)
	assert.Equal(t, "\n", header.LineEnding)
	assert.Equal(t, "Windowed", header.Field("Title"))
	assert.Equal(t, "1.8", header.Field("SliderMultiplier"))
	assert.Equal(t, "osu file format v14", header.Field(FormatVersion))
	assert.Equal(t, "Chunk Band - Windowed [Insane]", header.Name())
}

func TestBuildHeaderCRLF(t *testing.T) {
	metadata, _, err := ReadString(testdata.GetBeatmapCRLF())
	require.NoError(t, err)

	header, err := BuildHeader(metadata)
	require.NoError(t, err)
	assert.Equal(t, strings.ReplaceAll(expectedHeader, "\n", "\r\n"), header.Text)
	assert.Equal(t, "\r\n", header.LineEnding)
}

func TestBuildHeaderFirstMatchWins(t *testing.T) {
	text := strings.Replace(testdata.GetBeatmap(), "[Difficulty]\n", "[Difficulty]\nApproachRate:7\n", 1)
	metadata, _, err := ReadString(text)
	require.NoError(t, err)

	header, err := BuildHeader(metadata)
	require.NoError(t, err)
	assert.Equal(t, "7", header.Field("ApproachRate"))
	assert.Equal(t, 1, strings.Count(header.Text, "ApproachRate:"))
}

func TestBuildHeaderPrefixIsCaseSensitive(t *testing.T) {
	text := strings.Replace(testdata.GetBeatmap(), "Creator:", "creator:", 1)
	metadata, _, err := ReadString(text)
	require.NoError(t, err)

	_, err = BuildHeader(metadata)
	var perr *game.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, []string{"Creator"}, perr.Missing)
}

func TestBuildHeaderReportsEveryMissingField(t *testing.T) {
	text := testdata.GetBeatmap()
	text = strings.Replace(text, "CircleSize:4\n", "", 1)
	text = strings.Replace(text, "ApproachRate:9\n", "", 1)
	metadata, _, err := ReadString(text)
	require.NoError(t, err)

	_, err = BuildHeader(metadata)
	var perr *game.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, []string{"CircleSize", "ApproachRate"}, perr.Missing)
	assert.Contains(t, perr.Error(), "CircleSize")
	assert.Contains(t, perr.Error(), "ApproachRate")
}

func TestBuildHeaderEmptyMetadata(t *testing.T) {
	_, err := BuildHeader(nil)
	var perr *game.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Len(t, perr.Missing, len(requiredFields)+1)
	assert.Equal(t, FormatVersion, perr.Missing[0])
}

// A header plus window lines must read back to the same fields.
func TestHeaderRoundTrip(t *testing.T) {
	for _, text := range []string{testdata.GetBeatmap(), testdata.GetBeatmapCRLF()} {
		metadata, objects, err := ReadString(text)
		require.NoError(t, err)
		header, err := BuildHeader(metadata)
		require.NoError(t, err)

		window := header.Text + strings.Join(objects[:2], "")
		metadata2, objects2, err := ReadString(window)
		require.NoError(t, err)
		header2, err := BuildHeader(metadata2)
		require.NoError(t, err)

		assert.Equal(t, header.Fields, header2.Fields)
		assert.Equal(t, header.Text, header2.Text)
		assert.Equal(t, objects[:2], objects2)
	}
}
