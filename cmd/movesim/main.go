// Command movesim validates controller configs and runs recorded input
// through the movement core without a window.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/younwookim/platformcore/internal/application/replay"
	"github.com/younwookim/platformcore/internal/application/sim"
	"github.com/younwookim/platformcore/internal/application/system"
	"github.com/younwookim/platformcore/internal/infrastructure/config"
	"github.com/younwookim/platformcore/internal/infrastructure/logging"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configFlags returns fresh flag values; cli flags keep parse state
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "configs", Value: "cmd/playground/configs", Usage: "directory holding the controller config and stages/"},
		&cli.StringFlag{Name: "controller", Value: "controller.yaml", Usage: "controller config file (.json, .yaml)"},
		&cli.StringFlag{Name: "stage", Value: "demo", Usage: "stage name under stages/"},
	}
}

// newApp builds the command tree. Results go to out, logs to logOut.
func newApp(out, logOut io.Writer) *cli.Command {
	var logger zerolog.Logger

	return &cli.Command{
		Name:  "movesim",
		Usage: "headless runner for the platformer movement core",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "trace, debug, info, warn, error or off"},
			&cli.BoolFlag{Name: "json-logs", Usage: "log JSON lines instead of console text"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger = logging.New(logOut, cmd.String("log-level"), !cmd.Bool("json-logs"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "load the controller config and stage and report every problem",
				Flags: configFlags(),
				Action: func(_ context.Context, cmd *cli.Command) error {
					return validate(out, cmd, logger)
				},
			},
			{
				Name:      "run",
				Usage:     "replay a recorded input file and print a per-tick trace",
				ArgsUsage: "<replay.json>",
				Flags: append([]cli.Flag{
					&cli.IntFlag{Name: "every", Value: 1, Usage: "print every Nth tick, 0 prints only the summary"},
					&cli.StringFlag{Name: "format", Value: FormatText, Usage: "trace format: text or json"},
				}, configFlags()...),
				Action: func(_ context.Context, cmd *cli.Command) error {
					return run(out, cmd, logger)
				},
			},
		},
	}
}

func load(cmd *cli.Command) (*config.GameConfig, error) {
	loader := config.NewLoader(cmd.String("configs"))
	return loader.LoadAll(cmd.String("controller"), cmd.String("stage"))
}

func validate(out io.Writer, cmd *cli.Command, logger zerolog.Logger) error {
	cfg, err := load(cmd)
	if err != nil {
		return err
	}

	// building the sim also checks the layers against the stage world
	stage := system.LoadStage(cfg.Stage)
	if _, err := sim.New(cfg.Controller, stage, logger); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "ok: %s on stage %q (%dx%d tiles, %d ticks/s)\n",
		cmd.String("controller"), cfg.Stage.Name, stage.Width, stage.Height, cfg.Controller.Simulation.TickRate)
	return err
}

func run(out io.Writer, cmd *cli.Command, logger zerolog.Logger) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("run: missing replay file")
	}

	format := cmd.String("format")
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("run: unknown format %q", format)
	}

	cfg, err := load(cmd)
	if err != nil {
		return err
	}
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	if data.TickRate != 0 && data.TickRate != cfg.Controller.Simulation.TickRate {
		logger.Warn().
			Int("replayTickRate", data.TickRate).
			Int("configTickRate", cfg.Controller.Simulation.TickRate).
			Msg("replay was recorded at a different tick rate")
	}

	opts := TraceOptions{Every: int(cmd.Int("every")), Format: format}
	sum, err := runReplay(out, cfg.Controller, system.LoadStage(cfg.Stage), data, opts, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Str("replay", path).
		Int("ticks", sum.Ticks).
		Int("jumps", sum.Jumps).
		Int("dashes", sum.Dashes).
		Msg("replay finished")

	if format == FormatJSON {
		return nil
	}
	_, err = fmt.Fprintf(out, "ticks=%d jumps=%d dashes=%d landings=%d final=(%.2f, %.2f) maxY=%.2f travelled=%.2f\n",
		sum.Ticks, sum.Jumps, sum.Dashes, sum.Landings,
		sum.Final.Position.X, sum.Final.Position.Y, sum.MaxHeight, sum.Travelled)
	return err
}
