package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"git.lost.host/meutraa/oppai-chunks/internal/config"
	"git.lost.host/meutraa/oppai-chunks/internal/engine"
	"git.lost.host/meutraa/oppai-chunks/internal/history"
	"git.lost.host/meutraa/oppai-chunks/internal/parser"
	"git.lost.host/meutraa/oppai-chunks/internal/render"
	"git.lost.host/meutraa/oppai-chunks/internal/spike"
	"git.lost.host/meutraa/oppai-chunks/internal/theme"
	"git.lost.host/meutraa/oppai-chunks/internal/window"
	"github.com/pkg/errors"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		config.Usage(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, os.Stdout, os.Stderr)
	stop()
	if nil != err {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{}
	var eng engine.Engine = &engine.DefaultEngine{Path: cfg.Engine, Timeout: cfg.EngineTimeout}
	var table render.Renderer = &render.DefaultRenderer{}

	logger := log.New(io.Discard, "", log.LstdFlags)
	if cfg.Verbose {
		logger.SetOutput(stderr)
	}

	fmt.Fprintf(stderr, "Analyzing %q...\n", cfg.Beatmap)
	beatmap, err := psr.Parse(cfg.Beatmap)
	if nil != err {
		return errors.WithMessage(err, cfg.Beatmap)
	}
	logger.Printf("%s: %d hit objects", beatmap.Header.Name(), len(beatmap.HitObjects))

	var store history.Store
	if cfg.History != "" {
		store = &history.DefaultStore{Path: cfg.History}
		if err := store.Init(); nil != err {
			return err
		}
		defer store.Deinit()
	}

	if cfg.ListHistory {
		runs, err := store.Load(beatmap)
		if nil != err {
			return err
		}
		return render.RenderHistory(stdout, runs)
	}

	if cfg.Mark != "" {
		marker, err := spike.Compile(cfg.Mark)
		if nil != err {
			return err
		}
		table = &render.DefaultRenderer{Marker: marker}
	}

	results, err := window.Evaluate(ctx, beatmap, eng, window.Options{
		Length: cfg.Window,
		Step:   cfg.Step,
		Logger: logger,
	})
	if nil != err {
		return err
	}

	if err := table.Render(stdout, results); nil != err {
		return err
	}

	if cfg.Graph {
		graph := &render.GraphRenderer{Theme: &theme.PlainTheme{}, Width: render.DefaultWidth}
		if f, ok := stdout.(*os.File); ok {
			if render.IsTerminal(f) {
				graph.Theme = &theme.DefaultTheme{}
			}
			graph.Width = render.Width(f)
		}
		fmt.Fprintln(stdout)
		if err := graph.Render(stdout, results); nil != err {
			return err
		}
	}

	if nil != store {
		saved, err := store.Save(beatmap, cfg.Window, cfg.Step, results)
		if nil != err {
			return err
		}
		logger.Printf("saved run %s to %s", saved.ID, cfg.History)
	}
	return nil
}
