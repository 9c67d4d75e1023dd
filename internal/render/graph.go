package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
	"git.lost.host/meutraa/oppai-chunks/internal/theme"
)

const (
	timeColumn   = 8 // "  35000 "
	ratingColumn = 8 // " 12.3456"
	minBar       = 10
)

// GraphRenderer draws the overall rating of every window as a bar scaled
// to the highest window.
type GraphRenderer struct {
	Theme theme.Theme
	Width int // Total line width in cells
}

func (g *GraphRenderer) Render(w io.Writer, results []game.WindowResult) error {
	peak := 0.0
	for _, r := range results {
		peak = math.Max(peak, r.Overall)
	}
	bar := g.Width - timeColumn - ratingColumn
	if bar < minBar {
		bar = minBar
	}

	bw := bufio.NewWriter(w)
	for _, r := range results {
		length := 0
		if peak > 0 && r.Overall > 0 {
			length = int(math.Round(r.Overall / peak * float64(bar)))
		}
		fmt.Fprintf(bw, "%7d %s%*s%8.4f\n",
			r.Time, g.Theme.RenderBar(r.Overall, length), bar-length, "", r.Overall)
	}
	return bw.Flush()
}
