package simon

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-simon/internal/core"
)

// Layout constants
const (
	padTop     = 3 // Title, stats, blank line
	padFooter  = 6 // Labels, blank, hint, message, blank, controls
	padGap     = 2
	maxPadW    = 14
	maxPadH    = 7
	minPadW    = 5
	minPadH    = 3
	unlitPad   = '░'
	litPad     = '█'
	titleText  = "S I M O N"
	controlBar = "1-6/Click: Pads  |  P: Pause  |  R: Restart  |  B: Menu  |  Q: Quit"
)

// padLayout places n pads in a centered row.
// Returns nil when the screen is too small to draw them.
func padLayout(w, h, n int) []core.Rect {
	if n <= 0 {
		return nil
	}

	padW := core.Min(maxPadW, (w-2-(n-1)*padGap)/n)
	padH := core.Min(maxPadH, h-padTop-padFooter)
	if padW < minPadW || padH < minPadH {
		return nil
	}

	total := n*padW + (n-1)*padGap
	x0 := (w - total) / 2

	rects := make([]core.Rect, n)
	for i := range rects {
		rects[i] = core.NewRect(x0+i*(padW+padGap), padTop, padW, padH)
	}
	return rects
}

// Render draws pads, HUD and status lines.
func (g *Game) Render(dst *core.Screen) {
	g.screenW = dst.Width()
	g.screenH = dst.Height()

	if g.ctrl == nil {
		return
	}
	snap := g.ctrl.Snapshot()

	dst.DrawTextCenteredColored(0, titleText, core.ColorBrightWhite)
	stats := fmt.Sprintf("Score: %d   High Score: %d   Round: %d   %s",
		snap.Score, snap.HighScore, snap.Round, snap.Difficulty.Title())
	dst.DrawTextCenteredColored(1, stats, core.ColorDim)

	pads := padLayout(dst.Width(), dst.Height(), len(snap.Palette))
	if pads == nil {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	for i, c := range snap.Palette {
		g.renderPad(dst, pads[i], i, c, indexOf(snap.Lit, c) >= 0)
	}

	y := pads[0].Bottom() + 2
	dst.DrawTextCentered(y, g.hint(snap))

	switch snap.Message {
	case MessageCorrect:
		dst.DrawTextCenteredColored(y+1, snap.Message, core.ColorBrightGreen)
	case MessageGameOver:
		dst.DrawTextCenteredColored(y+1, fmt.Sprintf("%s  Final score: %d", snap.Message, snap.Score), core.ColorBrightRed)
	default:
		dst.DrawTextCentered(y+1, snap.Message)
	}

	dst.DrawTextCenteredColored(dst.Height()-1, controlBar, core.ColorGray)
}

// renderPad draws one pad with its key label underneath.
func (g *Game) renderPad(dst *core.Screen, r core.Rect, idx int, c Color, lit bool) {
	tone := c.Tone()
	fill := unlitPad
	if lit || idx == g.echoPad {
		fill = litPad
	}

	dst.DrawBox(r, tone)
	dst.DrawRect(r.Inset(1), fill, tone)

	label := fmt.Sprintf("%d %s", idx+1, c)
	if len(label) > r.W {
		label = strconv.Itoa(idx + 1)
	}
	cx, _ := r.Center()
	dst.DrawTextColored(cx-len(label)/2, r.Bottom(), label, tone)
}

// hint describes what the player should do now.
func (g *Game) hint(snap Snapshot) string {
	if g.paused {
		return "PAUSED - press P to resume"
	}
	switch snap.Phase {
	case PhaseFlashing:
		return "Watch..."
	case PhaseListening:
		if g.ctrl.AdvancingRound() {
			return "Get ready..."
		}
		return fmt.Sprintf("Your turn: %d/%d", snap.InputLen, snap.Round)
	case PhaseLost:
		return "Press R to play again or B for the menu"
	default:
		return "Press R to start"
	}
}
