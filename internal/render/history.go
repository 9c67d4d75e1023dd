package render

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"git.lost.host/meutraa/oppai-chunks/internal/history"
)

const historyHeader = "Run\tCreated\tWindow\tStep\tPeak\tAt"

// RenderHistory lists earlier runs of one beatmap, one row per run.
func RenderHistory(w io.Writer, runs []history.Run) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(historyHeader + "\n")
	for _, run := range runs {
		peak := run.Peak()
		fmt.Fprintf(bw, "%s\t%s\t%d\t%d\t%s\t%d\n",
			run.ID,
			run.Created.Local().Format(time.RFC3339),
			run.Window,
			run.Step,
			FormatRating(peak.Overall),
			peak.Time,
		)
	}
	return bw.Flush()
}
