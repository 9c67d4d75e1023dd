package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
	"git.lost.host/meutraa/oppai-chunks/internal/spike"
)

const (
	header     = "Time\tOverall\tAim\tSpeed"
	markHeader = "\tMark"
	markSym    = "*"
)

// DefaultRenderer writes the tab separated table, one row per window.
// With a Marker set, a Mark column flags the matching windows.
type DefaultRenderer struct {
	Marker *spike.Marker
}

func (r *DefaultRenderer) Render(w io.Writer, results []game.WindowResult) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(header)
	if nil != r.Marker {
		bw.WriteString(markHeader)
	}
	bw.WriteString("\n")

	for _, res := range results {
		fmt.Fprintf(bw, "%d\t%s\t%s\t%s", res.Time, FormatRating(res.Overall), FormatRating(res.Aim), FormatRating(res.Speed))
		if nil != r.Marker {
			matched, err := r.Marker.Match(res)
			if nil != err {
				return err
			}
			bw.WriteString("\t")
			if matched {
				bw.WriteString(markSym)
			}
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// FormatRating prints the shortest decimal that reads back as f, always
// with a fractional part.
func FormatRating(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}
	return s + ".0"
}
