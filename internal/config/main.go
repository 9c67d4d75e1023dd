package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"git.lost.host/meutraa/oppai-chunks/internal/engine"
	"git.lost.host/meutraa/oppai-chunks/internal/parser"
	"git.lost.host/meutraa/oppai-chunks/internal/window"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	Name    = "oppai-chunks"
	Version = "0.3.0"

	help = `Moving-window difficulty calculation for osu! beatmaps.

Rates every window of a beatmap with oppai, so mappers can check for
difficulty spikes and dips.

beatmap is a .osu file for a specific difficulty. You can unzip a .osz
file to extract the .osu files.
window is the window length in ms, step the distance between window
starts in ms.`
)

type Config struct {
	Beatmap       string
	Window        int
	Step          int
	Engine        string
	EngineTimeout time.Duration
	Graph         bool
	Mark          string
	History       string
	ListHistory   bool
	Verbose       bool
}

func newApp(c *Config) *kingpin.Application {
	app := kingpin.New(Name, help)
	app.Version(Version)
	app.HelpFlag.Short('h')

	app.Arg("beatmap", "Beatmap difficulty (.osu)").Required().StringVar(&c.Beatmap)
	app.Arg("window", "Window length in ms").Default(fmt.Sprint(window.DefaultLength)).IntVar(&c.Window)
	app.Arg("step", "Step size in ms").Default(fmt.Sprint(window.DefaultStep)).IntVar(&c.Step)

	app.Flag("engine", "oppai executable, with JSON output").Short('e').Envar("OPPAI_PATH").Default(engine.DefaultPath).StringVar(&c.Engine)
	app.Flag("engine-timeout", "Time limit per window, 0 for none").Default("0s").DurationVar(&c.EngineTimeout)
	app.Flag("graph", "Draw the overall rating of each window").Short('g').BoolVar(&c.Graph)
	app.Flag("mark", "Mark windows matching an expression over Time, Overall, Aim and Speed").Short('m').PlaceHolder("EXPR").StringVar(&c.Mark)
	app.Flag("history", "Record runs in this sqlite database").PlaceHolder("FILE").StringVar(&c.History)
	app.Flag("list-history", "List recorded runs of the beatmap instead of rating it").BoolVar(&c.ListHistory)
	app.Flag("verbose", "Log every window").Short('v').BoolVar(&c.Verbose)
	return app
}

// Parse reads the command line, without the program name.
func Parse(args []string) (*Config, error) {
	c := &Config{}
	if _, err := newApp(c).Parse(args); nil != err {
		return nil, err
	}
	if !strings.HasSuffix(c.Beatmap, parser.Extension) {
		return nil, errors.Errorf("beatmap must be a %s file: %q", parser.Extension, c.Beatmap)
	}
	if c.Window <= 0 || c.Step <= 0 {
		return nil, errors.Errorf("window and step must be positive, got %d and %d", c.Window, c.Step)
	}
	if c.EngineTimeout < 0 {
		return nil, errors.Errorf("engine timeout must not be negative, got %v", c.EngineTimeout)
	}
	if c.ListHistory && c.History == "" {
		return nil, errors.New("--list-history needs --history")
	}
	return c, nil
}

// Usage prints the error followed by the help text.
func Usage(w io.Writer, err error) {
	app := newApp(&Config{})
	app.UsageWriter(w)
	fmt.Fprintf(w, "%s: error: %v\n\n", Name, err)
	app.Usage(nil)
}
