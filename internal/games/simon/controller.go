package simon

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
)

// Messages shown to the player.
const (
	MessageCorrect  = "Correct!"
	MessageGameOver = "Game Over!"
)

// Phase is the single state of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseFlashing         // Replaying the sequence; input is ignored
	PhaseListening        // Collecting the player's reproduction
	PhaseLost             // A pad was wrong; waiting for a new game
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseFlashing:
		return "Flashing"
	case PhaseListening:
		return "Listening"
	case PhaseLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// InputResult describes what SubmitInput did with a pad press.
type InputResult int

const (
	InputIgnored       InputResult = iota // Not listening, unknown pad, or round already entered
	InputAccepted                         // Correct so far
	InputRoundComplete                    // Whole sequence reproduced
	InputMismatch                         // Wrong pad; the game is lost
)

// String returns a human-readable name for the result.
func (r InputResult) String() string {
	switch r {
	case InputIgnored:
		return "Ignored"
	case InputAccepted:
		return "Accepted"
	case InputRoundComplete:
		return "RoundComplete"
	case InputMismatch:
		return "Mismatch"
	default:
		return "Unknown"
	}
}

// Source picks random pad indices. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Snapshot is the observable state a presentation layer renders.
type Snapshot struct {
	Difficulty config.Difficulty
	Palette    []Color
	Lit        []Color
	Phase      Phase
	Started    bool
	Round      int
	InputLen   int
	Score      int
	HighScore  int
	Message    string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller runs Simon sessions. It is not safe for concurrent use; the
// presentation layer drives it from a single event loop.
type Controller struct {
	cfg    config.SimonConfig
	store  core.HighScoreStore
	src    Source
	logger *log.Logger

	timer    *Timer
	playback *Playback

	selected   config.Difficulty // Used by the next StartGame via Restart
	difficulty config.Difficulty // Difficulty of the current session
	palette    []Color
	sequence   []Color
	input      []Color
	score      int
	highScore  int
	message    string
	phase      Phase
}

// NewController creates a controller and loads the high score once from store.
// A nil store keeps the high score in memory only.
func NewController(cfg config.SimonConfig, store core.HighScoreStore, src Source, opts ...Option) *Controller {
	d := cfg.DefaultDifficulty.Canonical()

	timer := &Timer{}
	c := &Controller{
		cfg:        cfg,
		store:      store,
		src:        src,
		logger:     log.New(io.Discard),
		timer:      timer,
		playback:   NewPlayback(timer, cfg.Timing.FlashHold(), cfg.Timing.FlashGap()),
		selected:   d,
		difficulty: d,
		palette:    Palette(d),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.highScore = c.loadHighScore()
	return c
}

// loadHighScore reads the store, degrading every failure to 0.
func (c *Controller) loadHighScore() int {
	if c.store == nil {
		return 0
	}
	score, err := c.store.Load()
	if err != nil {
		c.logger.Warn("could not load high score, using 0", "error", err)
		return 0
	}
	if score < 0 {
		return 0
	}
	return score
}

// refreshHighScore raises the cached high score to the stored one.
// Load failures keep the cached value.
func (c *Controller) refreshHighScore() {
	if c.store == nil {
		return
	}
	stored, err := c.store.Load()
	if err != nil {
		c.logger.Debug("could not reload high score", "error", err)
		return
	}
	if stored > c.highScore {
		c.highScore = stored
	}
}

// SetSource replaces the random source used for new sequence elements.
func (c *Controller) SetSource(src Source) {
	c.src = src
}

// SelectDifficulty chooses the difficulty for the next Restart.
// Ignored while a session is in progress.
func (c *Controller) SelectDifficulty(d config.Difficulty) {
	if c.Started() {
		return
	}
	c.selected = d
	c.difficulty = d
	c.palette = Palette(d)
}

// Restart starts a new session with the selected difficulty.
func (c *Controller) Restart() {
	c.StartGame(c.selected)
}

// StartGame begins a new session, replacing any session in progress.
// Every continuation scheduled for the previous session is cancelled.
func (c *Controller) StartGame(d config.Difficulty) {
	c.playback.Stop()
	c.timer.Stop()

	c.selected = d
	c.difficulty = d
	c.palette = Palette(d)
	c.sequence = nil
	c.input = nil
	c.score = 0
	c.message = ""

	c.logger.Debug("session started", "difficulty", d, "pads", len(c.palette))
	c.extendSequence()
}

// extendSequence appends one random pad and replays the whole sequence.
func (c *Controller) extendSequence() {
	next := c.palette[c.src.Intn(len(c.palette))]
	c.sequence = append(c.sequence, next)
	c.phase = PhaseFlashing
	c.playback.Start(c.sequence, c.listen)
}

// listen ends playback and opens the round for input.
func (c *Controller) listen() {
	c.phase = PhaseListening
}

// nextRound clears the entered pads and starts the following round.
func (c *Controller) nextRound() {
	c.input = nil
	c.extendSequence()
}

// SubmitInput records a pad press. Presses outside the listening phase, for
// pads outside the palette, or after the round is fully entered are ignored.
func (c *Controller) SubmitInput(color Color) InputResult {
	if c.phase != PhaseListening {
		return InputIgnored
	}
	if indexOf(c.palette, color) < 0 {
		return InputIgnored
	}
	if len(c.input) >= len(c.sequence) {
		return InputIgnored
	}

	c.input = append(c.input, color)
	pos := len(c.input) - 1

	if c.input[pos] != c.sequence[pos] {
		c.lose()
		return InputMismatch
	}

	if len(c.input) < len(c.sequence) {
		return InputAccepted
	}

	c.message = MessageCorrect
	c.score += c.cfg.Scoring.PointsFor(c.difficulty)
	c.logger.Debug("round complete", "round", len(c.sequence), "score", c.score)
	c.timer.Schedule(c.cfg.Timing.RoundDelay(), c.nextRound)
	return InputRoundComplete
}

// lose ends the session and commits a new high score.
func (c *Controller) lose() {
	c.playback.Stop()
	c.timer.Stop()
	c.message = MessageGameOver
	c.phase = PhaseLost

	c.logger.Info("game over", "difficulty", c.difficulty, "round", len(c.sequence), "score", c.score)

	// Another session sharing the store may have raised the record since
	// it was loaded.
	c.refreshHighScore()
	if c.score <= c.highScore {
		return
	}
	c.highScore = c.score
	if c.store == nil {
		return
	}
	if err := c.store.Save(c.score); err != nil {
		c.logger.Warn("could not save high score", "score", c.score, "error", err)
		return
	}
	c.logger.Info("new high score", "score", c.score)
}

// Advance moves the session clock forward, firing due pulses and round
// transitions.
func (c *Controller) Advance(dt time.Duration) {
	c.timer.Advance(dt)
}

// Phase returns the session phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Started reports whether a session is in progress.
func (c *Controller) Started() bool {
	return c.phase == PhaseFlashing || c.phase == PhaseListening
}

// Difficulty returns the difficulty of the current (or last) session.
func (c *Controller) Difficulty() config.Difficulty {
	return c.difficulty
}

// Palette returns the active pads.
func (c *Controller) Palette() []Color {
	return append([]Color(nil), c.palette...)
}

// Sequence returns a copy of the target sequence.
func (c *Controller) Sequence() []Color {
	return append([]Color(nil), c.sequence...)
}

// Input returns a copy of the pads entered this round.
func (c *Controller) Input() []Color {
	return append([]Color(nil), c.input...)
}

// Lit returns the pads currently lit by playback.
func (c *Controller) Lit() []Color {
	return c.playback.Lit()
}

// Round returns the current round number (the sequence length).
func (c *Controller) Round() int {
	return len(c.sequence)
}

// Score returns the session score.
func (c *Controller) Score() int {
	return c.score
}

// HighScore returns the best score known to this controller.
func (c *Controller) HighScore() int {
	return c.highScore
}

// Message returns the last status message.
func (c *Controller) Message() string {
	return c.message
}

// AdvancingRound reports whether the delay before the next round is running.
func (c *Controller) AdvancingRound() bool {
	return c.phase == PhaseListening && len(c.sequence) > 0 &&
		len(c.input) == len(c.sequence) && c.timer.Pending()
}

// Snapshot returns the observable state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Difficulty: c.difficulty,
		Palette:    c.Palette(),
		Lit:        c.Lit(),
		Phase:      c.phase,
		Started:    c.Started(),
		Round:      c.Round(),
		InputLen:   len(c.input),
		Score:      c.score,
		HighScore:  c.highScore,
		Message:    c.message,
	}
}
