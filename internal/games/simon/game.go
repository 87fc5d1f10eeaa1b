package simon

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/registry"
)

// echoDuration is how long a pressed pad stays highlighted.
const echoDuration = 150 * time.Millisecond

// Game adapts a Controller to the platform's tick-driven game interface.
type Game struct {
	difficulty config.Difficulty
	env        registry.Env
	ctrl       *Controller
	tick       time.Duration

	// Screen dimensions from the last render, used for click hit-testing
	screenW int
	screenH int

	paused   bool
	echoPad  int // Pad highlighted after a press, -1 for none
	echoLeft time.Duration
}

func init() {
	for _, d := range config.Difficulties() {
		registry.Register(string(d), ModeTitle(d), d.Rank(), func(env registry.Env) registry.Game {
			return New(d, env)
		})
	}
}

// ModeTitle returns the menu title of a difficulty, e.g. "Easy (4 colors)".
func ModeTitle(d config.Difficulty) string {
	return fmt.Sprintf("%s (%d colors)", d.Title(), PaletteSize(d))
}

// NewEnv builds the environment for Simon modes, keeping the high score in
// kv under HighScoreKey. A nil kv keeps it in memory only.
func NewEnv(kv core.KV, cfg config.SimonConfig, logger *log.Logger) registry.Env {
	env := registry.Env{Config: cfg, Logger: logger}
	if kv != nil {
		env.HighScores = NewKeyedHighScores(kv)
	}
	return env
}

// New creates a Simon game at the given difficulty.
// A zero env.Config is replaced with the defaults.
func New(d config.Difficulty, env registry.Env) *Game {
	if env.Config == (config.SimonConfig{}) {
		env.Config = config.DefaultSimonConfig()
	}
	return &Game{
		difficulty: d,
		env:        env,
		echoPad:    -1,
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.difficulty)
}

// Title returns the display name.
func (g *Game) Title() string {
	return ModeTitle(g.difficulty)
}

// Reset starts a new session. The controller, and with it the loaded high
// score, survives resets.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	src := rand.New(rand.NewSource(cfg.Seed))
	if g.ctrl == nil {
		g.ctrl = NewController(g.env.Config, g.env.HighScores, src, WithLogger(g.env.Logger))
	} else {
		g.ctrl.SetSource(src)
	}

	g.tick = cfg.TickDuration()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.echoPad = -1
	g.echoLeft = 0

	g.ctrl.StartGame(g.difficulty)
}

// Step applies this tick's pad presses and clicks, then advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.ctrl.Started() {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, idx := range in.Presses {
		g.press(idx)
	}
	for _, p := range in.Clicks {
		if idx, ok := g.PadAt(p.X, p.Y); ok {
			g.press(idx)
		}
	}

	g.ctrl.Advance(g.tick)

	if g.echoLeft > 0 {
		g.echoLeft -= g.tick
		if g.echoLeft <= 0 {
			g.echoPad = -1
		}
	}

	return core.StepResult{State: g.State()}
}

// press submits the pad at index; presses beyond the palette do nothing.
func (g *Game) press(idx int) {
	palette := g.ctrl.Palette()
	if idx < 0 || idx >= len(palette) {
		return
	}
	if g.ctrl.SubmitInput(palette[idx]) != InputIgnored {
		g.echoPad = idx
		g.echoLeft = echoDuration
	}
}

// PadAt returns the pad under screen cell (x, y).
func (g *Game) PadAt(x, y int) (int, bool) {
	if g.ctrl == nil {
		return 0, false
	}
	for i, r := range padLayout(g.screenW, g.screenH, PaletteSize(g.ctrl.Difficulty())) {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Controller exposes the session controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.ctrl.Score(),
		Round:    g.ctrl.Round(),
		GameOver: g.ctrl.Phase() == PhaseLost,
		Paused:   g.paused,
	}
}
