package render

import (
	"io"

	"git.lost.host/meutraa/oppai-chunks/internal/game"
)

type Renderer interface {
	Render(w io.Writer, results []game.WindowResult) error
}
