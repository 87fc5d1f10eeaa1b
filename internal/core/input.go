package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionPad1           // 1 - first pad
	ActionPad2           // 2
	ActionPad3           // 3
	ActionPad4           // 4
	ActionPad5           // 5
	ActionPad6           // 6 - last pad (hard palette)
)

// MaxPads is the number of pad actions available.
const MaxPads = 6

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	}
	if idx, ok := a.PadIndex(); ok {
		return "Pad" + string(rune('1'+idx))
	}
	return "Unknown"
}

// PadAction returns the action that presses the pad at index (0-based).
// Returns ActionNone for indices outside [0, MaxPads).
func PadAction(index int) Action {
	if index < 0 || index >= MaxPads {
		return ActionNone
	}
	return ActionPad1 + Action(index)
}

// PadIndex returns the 0-based pad index for a pad action.
func (a Action) PadIndex() (int, bool) {
	if a < ActionPad1 || a > ActionPad6 {
		return 0, false
	}
	return int(a - ActionPad1), true
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Presses holds pad indices in arrival order; a pad may repeat.
	Presses []int

	// Clicks holds pointer presses in screen cells, in arrival order.
	Clicks []Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if idx, ok := a.PadIndex(); ok {
		f.Presses = append(f.Presses, idx)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer press at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Presses = f.Presses[:0]
	f.Clicks = f.Clicks[:0]
}
