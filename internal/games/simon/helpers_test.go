package simon

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-simon/internal/config"
)

// fixedSource returns picks in order, cycling, reduced modulo n.
type fixedSource struct {
	picks []int
	i     int
}

func (s *fixedSource) Intn(n int) int {
	v := s.picks[s.i%len(s.picks)] % n
	s.i++
	return v
}

// memoryStore is an in-memory HighScoreStore that records saves.
type memoryStore struct {
	score   int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memoryStore) Load() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.score, nil
}

func (m *memoryStore) Save(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.score = score
	return nil
}

// mapKV is an in-memory core.KV.
type mapKV struct {
	values map[string]string
	err    error
}

func (kv *mapKV) Get(key string) (string, bool, error) {
	if kv.err != nil {
		return "", false, kv.err
	}
	v, ok := kv.values[key]
	return v, ok, nil
}

func (kv *mapKV) Set(key, value string) error {
	if kv.err != nil {
		return kv.err
	}
	if kv.values == nil {
		kv.values = make(map[string]string)
	}
	kv.values[key] = value
	return nil
}

var errBroken = errors.New("broken store")

func newTestController(t *testing.T, store *memoryStore, picks ...int) *Controller {
	t.Helper()
	if len(picks) == 0 {
		picks = []int{0}
	}
	if store == nil {
		store = &memoryStore{}
	}
	return NewController(config.DefaultSimonConfig(), store, &fixedSource{picks: picks})
}

// finishPlayback advances exactly to the end of the current replay.
func finishPlayback(t *testing.T, c *Controller) {
	t.Helper()
	if c.Phase() != PhaseFlashing {
		t.Fatalf("expected Flashing before finishing playback, got %v", c.Phase())
	}
	c.Advance(c.playback.Duration(c.Round()))
	if c.Phase() != PhaseListening {
		t.Fatalf("expected Listening after playback, got %v", c.Phase())
	}
}

// playRound reproduces the current sequence and waits for the next round.
func playRound(t *testing.T, c *Controller) {
	t.Helper()
	finishPlayback(t, c)
	seq := c.Sequence()
	for i, color := range seq {
		res := c.SubmitInput(color)
		want := InputAccepted
		if i == len(seq)-1 {
			want = InputRoundComplete
		}
		if res != want {
			t.Fatalf("SubmitInput(%s) at %d = %v, expected %v", color, i, res, want)
		}
	}
	c.Advance(config.DefaultSimonConfig().Timing.RoundDelay())
}

// wrongColor returns a palette color different from c.
func wrongColor(palette []Color, c Color) Color {
	for _, p := range palette {
		if p != c {
			return p
		}
	}
	return c
}
