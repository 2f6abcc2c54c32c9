// Command playground drives the platformer controller with the keyboard
// inside an ebiten window.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/younwookim/platformcore/internal/application/game"
	"github.com/younwookim/platformcore/internal/application/replay"
	"github.com/younwookim/platformcore/internal/application/scene/playing"
	"github.com/younwookim/platformcore/internal/application/system"
	"github.com/younwookim/platformcore/internal/infrastructure/config"
	"github.com/younwookim/platformcore/internal/infrastructure/logging"
)

func main() {
	cmd := &cli.Command{
		Name:  "playground",
		Usage: "drive the platformer controller with the keyboard",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "configs", Value: "cmd/playground/configs", Usage: "directory holding the controller config and stages/"},
			&cli.StringFlag{Name: "controller", Value: "controller.yaml", Usage: "controller config file (.json, .yaml)"},
			&cli.StringFlag{Name: "stage", Value: "demo", Usage: "stage name under stages/"},
			&cli.StringFlag{Name: "record", Usage: "record input to file (e.g. --record replay.json)"},
			&cli.StringFlag{Name: "replay", Usage: "play back a recorded input file"},
			&cli.BoolFlag{Name: "watch", Value: true, Usage: "reload the controller config when the file changes"},
			&cli.IntFlag{Name: "width", Value: 320, Usage: "logical screen width"},
			&cli.IntFlag{Name: "height", Value: 240, Usage: "logical screen height"},
			&cli.IntFlag{Name: "scale", Value: 2, Usage: "window scale"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "trace, debug, info, warn, error or off"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	logger := logging.New(os.Stderr, cmd.String("log-level"), true)

	loader := config.NewLoader(cmd.String("configs"))
	cfg, err := loader.LoadAll(cmd.String("controller"), cmd.String("stage"))
	if err != nil {
		return fmt.Errorf("loading configs: %w", err)
	}
	stage := system.LoadStage(cfg.Stage)

	opts := playing.Options{
		Logger:     logger,
		Keys:       system.DefaultKeyBindings(),
		ScreenW:    int(cmd.Int("width")),
		ScreenH:    int(cmd.Int("height")),
		RecordPath: cmd.String("record"),
	}

	if path := cmd.String("replay"); path != "" {
		data, err := replay.LoadReplay(path)
		if err != nil {
			return err
		}
		opts.Replay = data
		opts.RecordPath = ""
		logger.Info().Str("path", path).Int("frames", len(data.Frames)).Msg("replaying")
	}

	if cmd.Bool("watch") {
		w, err := config.NewWatcher(filepath.Join(loader.BasePath(), cmd.String("controller")))
		if err != nil {
			logger.Warn().Err(err).Msg("config watch disabled")
		} else {
			defer closeWatcher(w, logger)
			opts.Configs = w.Configs
			opts.ConfigErrors = w.Errors
		}
	}

	scene, err := playing.New(cfg, stage, opts)
	if err != nil {
		return err
	}

	tickRate := cfg.Controller.Simulation.TickRate
	g := game.New(scene, opts.ScreenW, opts.ScreenH,
		game.WithLogger(logger),
		game.WithTickRate(tickRate),
	)

	scale := int(cmd.Int("scale"))
	ebiten.SetWindowSize(opts.ScreenW*scale, opts.ScreenH*scale)
	ebiten.SetWindowTitle("platformcore playground: " + cfg.Stage.Name)

	logger.Info().
		Str("stage", cfg.Stage.Name).
		Int("tickRate", tickRate).
		Msg("starting playground")

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return err
	}
	// window closed: the scene never saw a quit tick
	g.Current().OnExit()
	return nil
}

func closeWatcher(w *config.Watcher, logger zerolog.Logger) {
	if err := w.Close(); err != nil {
		logger.Warn().Err(err).Msg("closing config watcher")
	}
}
