package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/games/simon"
	"github.com/vovakirdan/tui-simon/internal/registry"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (Model, *simon.Game) {
	t.Helper()
	env := simon.NewEnv(storage.NewMemory(), config.DefaultSimonConfig(), nil)
	game, err := registry.Create("easy", env)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 11}, nil)
	m.Init()
	return m, game.(*simon.Game)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm
}

// tickUntil sends ticks until cond holds.
func tickUntil(t *testing.T, m Model, cond func() bool) Model {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if cond() {
			return m
		}
		m = update(t, m, TickMsg{})
	}
	t.Fatal("condition not reached after 1000 ticks")
	return m
}

// padKey returns the key for the pad showing color c.
func padKey(g *simon.Game, c simon.Color) tea.KeyMsg {
	for i, p := range g.Controller().Palette() {
		if p == c {
			return runeKey(rune('1' + i))
		}
	}
	return runeKey('0')
}

func otherColor(g *simon.Game, c simon.Color) simon.Color {
	for _, p := range g.Controller().Palette() {
		if p != c {
			return p
		}
	}
	return c
}

func TestModelPlaysAndRecordsGame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "simon.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, g := newTestModel(t, store)
	ctrl := g.Controller()

	m = tickUntil(t, m, func() bool { return ctrl.Phase() == simon.PhaseListening })
	m = update(t, m, padKey(g, ctrl.Sequence()[0]))
	m = update(t, m, TickMsg{})
	if ctrl.Score() != 10 {
		t.Fatalf("score = %d after the first round, expected 10", ctrl.Score())
	}

	m = tickUntil(t, m, func() bool {
		return ctrl.Round() == 2 && ctrl.Phase() == simon.PhaseListening
	})
	m = update(t, m, padKey(g, otherColor(g, ctrl.Sequence()[0])))
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if ctrl.Phase() != simon.PhaseLost {
		t.Fatalf("expected a lost game, got %v", ctrl.Phase())
	}

	games, err := store.TopGames("easy", 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected the game to be recorded once, got %d", len(games))
	}
	if games[0].Score != 10 || games[0].Rounds != 2 {
		t.Errorf("recorded %+v, expected score 10 in round 2", games[0])
	}

	if !strings.Contains(m.View(), "Game Over!") {
		t.Error("view should show the game over message")
	}

	// Restart starts a fresh session with the same controller.
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if ctrl.Phase() != simon.PhaseFlashing || ctrl.Score() != 0 {
		t.Errorf("restart: phase %v score %d", ctrl.Phase(), ctrl.Score())
	}
	if ctrl.HighScore() != 10 {
		t.Errorf("high score lost on restart: %d", ctrl.HighScore())
	}
}

func TestModelClickPressesPad(t *testing.T) {
	m, g := newTestModel(t, nil)
	ctrl := g.Controller()
	m.View() // Lays out the pads

	m = tickUntil(t, m, func() bool { return ctrl.Phase() == simon.PhaseListening })

	target := ctrl.Sequence()[0]
	var x, y int
	found := false
	for yy := 0; yy < 24 && !found; yy++ {
		for xx := 0; xx < 80; xx++ {
			if idx, ok := g.PadAt(xx, yy); ok && ctrl.Palette()[idx] == target {
				x, y, found = xx, yy, true
				break
			}
		}
	}
	if !found {
		t.Fatal("target pad not on screen")
	}

	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{})
	if ctrl.Score() != 10 {
		t.Errorf("click on the target pad should score, got %d", ctrl.Score())
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, g := newTestModel(t, nil)
	ctrl := g.Controller()
	m = tickUntil(t, m, func() bool { return ctrl.Phase() == simon.PhaseListening })
	seq := ctrl.Sequence()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if ctrl.Phase() != simon.PhaseListening || len(ctrl.Sequence()) != len(seq) {
		t.Error("resize restarted the session")
	}
	if m.Config().ScreenW != 100 || m.Config().ScreenH != 30 {
		t.Errorf("Config() = %+v after resize", m.Config())
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m, _ := newTestModel(t, nil)

	back := update(t, m, runeKey('b'))
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("b should return to the menu")
	}

	quit := update(t, m, runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMenuModelSelect(t *testing.T) {
	env := simon.NewEnv(storage.NewMemory(), config.DefaultSimonConfig(), nil)
	env.HighScores.Save(40)

	menu := NewMenuModel(env, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := menu.View()
	for _, want := range []string{"High Score: 40", "Easy (4 colors)", "Hard (6 colors)"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}

	next, _ := menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	selected := next.(MenuModel).Selected()
	if selected == nil || selected.GameID != "medium" {
		t.Errorf("Selected() = %+v, expected medium", selected)
	}

	next, _ = menu.Update(runeKey('3'))
	if s := next.(MenuModel).Selected(); s == nil || s.GameID != "hard" {
		t.Errorf("key 3 selected %+v, expected hard", s)
	}
}

func TestSessionModelFlow(t *testing.T) {
	env := simon.NewEnv(storage.NewMemory(), config.DefaultSimonConfig(), nil)
	s := NewSessionModel(env, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}
	if !strings.Contains(s.View(), "S I M O N") {
		t.Error("session should render the game")
	}

	next, _ = s.Update(runeKey('b'))
	s = next.(SessionModel)
	if s.gameModel != nil {
		t.Fatal("b should return to the menu")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "GAME HISTORY") {
		t.Error("scoreboard view missing title")
	}

	next, _ = s.Update(runeKey('q'))
	if !next.(SessionModel).quitting {
		t.Error("q should end the session")
	}
}
