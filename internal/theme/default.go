package theme

import (
	"fmt"
	"strings"
)

// DefaultTheme colours bars the way the game colours star ratings.
type DefaultTheme struct {
}

func (t *DefaultTheme) RenderBar(stars float64, length int) string {
	if length <= 0 {
		return ""
	}
	color := getStarColor(stars)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", color.R, color.G, color.B, strings.Repeat(barSym, length))
}

// PlainTheme is for output that is not a terminal.
type PlainTheme struct {
}

func (t *PlainTheme) RenderBar(stars float64, length int) string {
	if length <= 0 {
		return ""
	}
	return strings.Repeat(plainSym, length)
}

const (
	barSym   = "█"
	plainSym = "#"
)

type band struct {
	below float64
	color Color
}

var starColors = [...]band{
	{2.0, Color{79, 192, 255}}, // easy blue
	{2.7, Color{124, 255, 79}}, // normal green
	{4.0, Color{246, 240, 92}}, // hard yellow
	{5.3, Color{255, 78, 111}}, // insane pink
	{6.5, Color{198, 69, 184}}, // expert purple
	{8.0, Color{101, 99, 222}}, // expert+ indigo
	{-1, Color{200, 200, 200}}, // anything above
}

func getStarColor(stars float64) Color {
	for _, b := range starColors[:len(starColors)-1] {
		if stars < b.below {
			return b.color
		}
	}
	return starColors[len(starColors)-1].color
}
