// Package playing provides the interactive scene that hosts one character controller.
package playing

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/younwookim/platformcore/internal/application/replay"
	"github.com/younwookim/platformcore/internal/application/scene"
	"github.com/younwookim/platformcore/internal/application/sim"
	"github.com/younwookim/platformcore/internal/application/state"
	"github.com/younwookim/platformcore/internal/application/system"
	"github.com/younwookim/platformcore/internal/domain/entity"
	"github.com/younwookim/platformcore/internal/infrastructure/config"
	"github.com/younwookim/platformcore/internal/infrastructure/telemetry"
)

// Colors for rendering
var (
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorAirborne  = color.RGBA{120, 170, 230, 255}
	colorDashing   = color.RGBA{255, 215, 0, 255}
	colorProbeHit  = color.RGBA{100, 230, 100, 160}
	colorProbeMiss = color.RGBA{230, 100, 100, 160}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
)

const characterName = "player"

// Options configures a Playing scene. Zero values disable the optional parts.
type Options struct {
	Logger  zerolog.Logger
	Keys    system.KeyBindings
	ScreenW int
	ScreenH int

	// RecordPath enables input recording. The file is written on F5 and on exit.
	RecordPath string

	// Replay feeds recorded input instead of the keyboard
	Replay *replay.ReplayData

	// Configs and ConfigErrors are drained between ticks, usually from a config.Watcher
	Configs      <-chan *config.ControllerConfig
	ConfigErrors <-chan error

	// Meter receives controller counters. nil uses the global meter.
	Meter metric.Meter
}

// Playing is the main scene: keyboard or replay input drives a simulated character
type Playing struct {
	cfg      *config.GameConfig
	sim      *sim.Sim
	input    *system.InputSystem
	logger   zerolog.Logger
	state    state.GameState
	resume   state.GameState
	screenW  int
	screenH  int
	tileSize int
	bg       color.Color
	last     sim.Sample

	recorder   *replay.Recorder
	recordPath string
	replayer   *replay.Replayer

	configs      <-chan *config.ControllerConfig
	configErrors <-chan error

	shake       screenShake
	rng         *rand.Rand
	unsubscribe []func()
}

// New creates a new Playing scene for the loaded controller config and stage
func New(cfg *config.GameConfig, stage *entity.Stage, opts Options) (*Playing, error) {
	if cfg == nil || cfg.Controller == nil || cfg.Stage == nil {
		return nil, fmt.Errorf("%w: controller and stage configs are required", system.ErrConfiguration)
	}

	s, err := sim.New(cfg.Controller, stage, opts.Logger)
	if err != nil {
		return nil, err
	}

	keys := opts.Keys
	if len(keys.Jump) == 0 {
		keys = system.DefaultKeyBindings()
	}

	screenW, screenH := opts.ScreenW, opts.ScreenH
	if screenW <= 0 || screenH <= 0 {
		screenW = stage.Width * stage.TileSize
		screenH = stage.Height * stage.TileSize
	}

	p := &Playing{
		cfg:          cfg,
		sim:          s,
		input:        system.NewInputSystem(keys),
		logger:       opts.Logger,
		state:        state.StatePlaying,
		resume:       state.StatePlaying,
		screenW:      screenW,
		screenH:      screenH,
		tileSize:     stage.TileSize,
		bg:           parseHexColor(cfg.Stage.Background.Color, colorBG),
		recordPath:   opts.RecordPath,
		configs:      opts.Configs,
		configErrors: opts.ConfigErrors,
		rng:          rand.New(rand.NewSource(1)),
	}
	p.last = s.Sample()

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.state = state.StateReplaying
		p.resume = state.StateReplaying
		if rate := p.replayer.TickRate(); rate != 0 && rate != cfg.Controller.Simulation.TickRate {
			p.logger.Warn().
				Int("replayTickRate", rate).
				Int("configTickRate", cfg.Controller.Simulation.TickRate).
				Msg("replay was recorded at a different tick rate")
		}
	} else if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(cfg.Stage.Name, cfg.Controller.Simulation.TickRate)
		p.logger.Info().Str("path", opts.RecordPath).Msg("recording enabled")
	}

	meter := opts.Meter
	if meter == nil {
		meter = telemetry.Meter()
	}
	counters, err := telemetry.NewRecorder(meter, characterName)
	if err != nil {
		return nil, fmt.Errorf("creating telemetry: %w", err)
	}

	ctrl := s.Controller()
	p.unsubscribe = append(p.unsubscribe,
		ctrl.Subscribe(counters),
		ctrl.Subscribe(system.ListenerFuncs{
			Dashed: func() {
				p.shake.kick(p.sim.Config().Feedback.ScreenShake)
			},
			Grounded: func(grounded bool) {
				p.logger.Debug().Bool("grounded", grounded).Int("tick", p.last.Tick).Msg("grounded changed")
			},
		}),
	)

	return p, nil
}

// Update advances one fixed tick (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.applyConfigs()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return nil, ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = p.state.TogglePause(p.resume)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.restart()
	}

	if !p.state.Ticking() {
		return nil, nil
	}

	in, ok := p.nextInput()
	if !ok {
		p.state = state.StateReplayDone
		p.logger.Info().Int("frames", p.replayer.TotalFrames()).Msg("replay finished")
		return nil, nil
	}
	p.tick(in)

	return nil, nil
}

func (p *Playing) nextInput() (system.InputState, bool) {
	if p.replayer != nil {
		return p.replayer.GetInput()
	}
	return p.input.GetInput(), true
}

// tick records and simulates one input frame
func (p *Playing) tick(in system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.last = p.sim.Step(in.Frame())
	p.shake.update(p.rng)
}

// applyConfigs swaps in every config that arrived since the last tick
func (p *Playing) applyConfigs() {
	for {
		select {
		case cfg, ok := <-p.configs:
			if !ok {
				p.configs = nil
				continue
			}
			if err := p.sim.SetConfig(cfg); err != nil {
				p.logger.Warn().Err(err).Msg("reloaded config rejected")
				continue
			}
			p.cfg.Controller = cfg
			p.logger.Info().Msg("controller config reloaded")
		case err, ok := <-p.configErrors:
			if !ok {
				p.configErrors = nil
				continue
			}
			p.logger.Warn().Err(err).Msg("config reload failed")
		default:
			return
		}
	}
}

func (p *Playing) restart() {
	if err := p.sim.Reset(); err != nil {
		p.logger.Error().Err(err).Msg("restart failed")
		return
	}
	p.last = p.sim.Sample()
	p.shake = screenShake{}

	if p.replayer != nil {
		p.replayer.Reset()
		p.state = state.StateReplaying
		return
	}
	p.state = state.StatePlaying

	if p.recorder != nil {
		p.recorder = replay.NewRecorder(p.cfg.Stage.Name, p.cfg.Controller.Simulation.TickRate)
		p.logger.Info().Msg("recording restarted")
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error().Err(err).Str("path", filename).Msg("failed to save recording")
		return
	}
	p.logger.Info().Str("path", filename).Int("frames", p.recorder.FrameCount()).Msg("recording saved")
}

// Draw renders the stage, the character and the HUD
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.bg)

	px, py := p.sim.World().ToScreen(p.last.Position)
	camX := int(px) - p.screenW/2
	camY := int(py) - p.screenH/2

	maxCamX := p.sim.Stage().Width*p.tileSize - p.screenW
	maxCamY := p.sim.Stage().Height*p.tileSize - p.screenH
	camX = clampInt(camX, 0, maxCamX)
	camY = clampInt(camY, 0, maxCamY)

	camX += int(p.shake.x)
	camY += int(p.shake.y)

	p.drawTiles(screen, camX, camY)
	p.drawCharacter(screen, px-float64(camX), py-float64(camY))
	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateReplayDone:
		p.drawOverlay(screen, "REPLAY FINISHED\n\nPress R to watch again")
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	stage := p.sim.Stage()
	startTileX := camX / p.tileSize
	startTileY := camY / p.tileSize
	endTileX := (camX+p.screenW)/p.tileSize + 1
	endTileY := (camY+p.screenH)/p.tileSize + 1

	for ty := startTileY; ty <= endTileY && ty < stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < stage.Width; tx++ {
			if tx < 0 || ty < 0 {
				continue
			}
			if !stage.GetTile(tx, ty).Solid {
				continue
			}

			x := float32(tx*p.tileSize - camX)
			y := float32(ty*p.tileSize - camY)
			vector.DrawFilledRect(screen, x, y, float32(p.tileSize), float32(p.tileSize), colorWall, false)
		}
	}
}

// drawCharacter draws the collision box centered on (x, y) in screen space.
// Tab shows the ground and ceiling probe sweeps.
func (p *Playing) drawCharacter(screen *ebiten.Image, x, y float64) {
	ch := p.sim.Config().Character
	w, h := float32(ch.Width), float32(ch.Height)

	c := colorPlayer
	switch {
	case p.last.Dashing:
		c = colorDashing
	case !p.last.Grounded:
		c = colorAirborne
	}
	vector.DrawFilledRect(screen, float32(x)-w/2, float32(y)-h/2, w, h, c, false)

	if !ebiten.IsKeyPressed(ebiten.KeyTab) {
		return
	}

	ground := p.sim.Controller().Snapshot().Ground
	reach := float32(max(0, ch.Height/2-p.sim.Config().Collision.GroundCheckOffset))
	vector.StrokeRect(screen, float32(x)-w/2, float32(y), w, reach+w/2, 1, probeColor(ground.OnFloor), false)
	vector.StrokeRect(screen, float32(x)-w/2, float32(y)-reach-w/2, w, reach+w/2, 1, probeColor(ground.OnCeiling), false)
}

func probeColor(hit bool) color.Color {
	if hit {
		return colorProbeHit
	}
	return colorProbeMiss
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	s := p.last
	mode := "live"
	if p.replayer != nil {
		mode = fmt.Sprintf("replay %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	} else if p.recorder != nil {
		mode = fmt.Sprintf("rec %d", p.recorder.FrameCount())
	}

	text := fmt.Sprintf(
		"%s  tick %d  t=%.2fs\nvel %6.1f %6.1f\ngrounded %v  jumps %d  early %v\ndash %v  armed %v",
		mode, s.Tick, s.Time,
		s.Velocity.X, s.Velocity.Y,
		s.Grounded, s.JumpCount, s.EndedEarly,
		s.Dashing, s.CanDash,
	)
	ebitenutil.DebugPrint(screen, text)

	help := "Arrows/WASD: Move | Space: Jump | Shift/K: Dash | Tab: Probes | R: Restart | F5: Save | ESC: Pause | Q: Quit"
	ebitenutil.DebugPrintAt(screen, help, 4, p.screenH-16)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Debug().
		Str("stage", p.cfg.Stage.Name).
		Str("state", p.state.String()).
		Msg("playing scene entered")
}

// OnExit saves the recording and detaches the scene's listeners
func (p *Playing) OnExit() {
	p.saveRecording()
	for _, unsub := range p.unsubscribe {
		unsub()
	}
	p.unsubscribe = nil
}

// Name implements scene.Scene
func (p *Playing) Name() string {
	return "playing"
}

// State returns the scene's run mode
func (p *Playing) State() state.GameState {
	return p.state
}

// Sample returns the character state after the last tick
func (p *Playing) Sample() sim.Sample {
	return p.last
}

// Layout returns the scene's screen dimensions
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// parseHexColor reads "#rrggbb". Anything else yields fallback.
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	var r, g, b uint8
	if len(s) != 7 {
		return fallback
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{r, g, b, 255}
}
