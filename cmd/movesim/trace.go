package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/younwookim/platformcore/internal/application/replay"
	"github.com/younwookim/platformcore/internal/application/sim"
	"github.com/younwookim/platformcore/internal/application/system"
	"github.com/younwookim/platformcore/internal/domain/entity"
	"github.com/younwookim/platformcore/internal/infrastructure/config"
)

// Trace output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Summary totals one replay run
type Summary struct {
	Ticks     int
	Jumps     int
	Dashes    int
	Landings  int
	Final     sim.Sample
	MaxHeight float64
	Travelled float64
}

// TraceOptions controls what runReplay prints
type TraceOptions struct {
	Every  int    // print every Nth tick, 0 prints nothing per tick
	Format string // FormatText or FormatJSON
}

// runReplay feeds every recorded frame through a fresh simulation and writes
// one trace line per sampled tick to w
func runReplay(w io.Writer, cfg *config.ControllerConfig, stage *entity.Stage, data *replay.ReplayData, opts TraceOptions, logger zerolog.Logger) (Summary, error) {
	s, err := sim.New(cfg, stage, logger)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	s.Controller().Subscribe(system.ListenerFuncs{
		Jumped: func() { sum.Jumps++ },
		Dashed: func() { sum.Dashes++ },
		Grounded: func(grounded bool) {
			if grounded {
				sum.Landings++
			}
		},
	})

	emit := textLine
	if opts.Format == FormatJSON {
		jl := zerolog.New(w)
		emit = func(_ io.Writer, sample sim.Sample) error {
			jsonLine(jl, sample)
			return nil
		}
	} else if opts.Every > 0 {
		if _, err := fmt.Fprintln(w, "tick\ttime\tx\ty\tvx\tvy\tgrounded\tdashing\tcanDash\tjumps\tearly"); err != nil {
			return Summary{}, err
		}
	}

	start := s.Sample().Position
	sum.MaxHeight = start.Y
	player := replay.NewReplayer(*data)
	for {
		in, ok := player.GetInput()
		if !ok {
			break
		}

		sample := s.Step(in.Frame())
		sum.MaxHeight = max(sum.MaxHeight, sample.Position.Y)
		if opts.Every > 0 && sample.Tick%opts.Every == 0 {
			if err := emit(w, sample); err != nil {
				return Summary{}, err
			}
		}
	}

	sum.Final = s.Sample()
	sum.Ticks = sum.Final.Tick
	sum.Travelled = sum.Final.Position.Sub(start).Length()
	return sum, nil
}

func textLine(w io.Writer, s sim.Sample) error {
	_, err := fmt.Fprintf(w, "%d\t%.4f\t%.2f\t%.2f\t%.2f\t%.2f\t%t\t%t\t%t\t%d\t%t\n",
		s.Tick, s.Time,
		s.Position.X, s.Position.Y,
		s.Velocity.X, s.Velocity.Y,
		s.Grounded, s.Dashing, s.CanDash, s.JumpCount, s.EndedEarly,
	)
	return err
}

func jsonLine(l zerolog.Logger, s sim.Sample) {
	l.Log().
		Int("tick", s.Tick).
		Float64("t", s.Time).
		Float64("x", s.Position.X).
		Float64("y", s.Position.Y).
		Float64("vx", s.Velocity.X).
		Float64("vy", s.Velocity.Y).
		Bool("grounded", s.Grounded).
		Bool("dashing", s.Dashing).
		Bool("canDash", s.CanDash).
		Int("jumps", s.JumpCount).
		Bool("early", s.EndedEarly).
		Send()
}
