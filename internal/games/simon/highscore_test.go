package simon

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

func TestParseHighScore(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"120", 120, false},
		{" 45\n", 45, false},
		{"abc", 0, true},
		{"", 0, true},
		{"-5", 0, true},
		{"12abc", 0, true},
		{"1.5", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseHighScore(tc.raw)
		if got != tc.want {
			t.Errorf("ParseHighScore(%q) = %d, expected %d", tc.raw, got, tc.want)
		}
		if tc.wantErr != (err != nil) {
			t.Errorf("ParseHighScore(%q) error = %v, wantErr %v", tc.raw, err, tc.wantErr)
		}
		if err != nil && !errors.Is(err, ErrMalformedHighScore) {
			t.Errorf("ParseHighScore(%q) error should wrap ErrMalformedHighScore", tc.raw)
		}
	}
}

func TestKeyedHighScoresLoadSave(t *testing.T) {
	kv := &mapKV{}
	h := NewKeyedHighScores(kv)

	score, err := h.Load()
	if score != 0 || err != nil {
		t.Errorf("absent key should load 0 without error, got %d, %v", score, err)
	}

	if err := h.Save(30); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if kv.values[HighScoreKey] != "30" {
		t.Errorf("stored value = %q, expected decimal \"30\"", kv.values[HighScoreKey])
	}

	score, err = h.Load()
	if score != 30 || err != nil {
		t.Errorf("Load() = %d, %v, expected 30", score, err)
	}
}

func TestKeyedHighScoresMalformed(t *testing.T) {
	kv := &mapKV{values: map[string]string{HighScoreKey: "abc"}}
	score, err := NewKeyedHighScores(kv).Load()
	if score != 0 {
		t.Errorf("\"abc\" should load as 0, got %d", score)
	}
	if !errors.Is(err, ErrMalformedHighScore) {
		t.Errorf("expected ErrMalformedHighScore, got %v", err)
	}
}

func TestKeyedHighScoresStoreErrors(t *testing.T) {
	kv := &mapKV{err: errBroken}
	h := NewKeyedHighScores(kv)

	if score, err := h.Load(); score != 0 || !errors.Is(err, errBroken) {
		t.Errorf("Load() = %d, %v, expected 0 and wrapped store error", score, err)
	}
	if err := h.Save(10); !errors.Is(err, errBroken) {
		t.Errorf("Save() error = %v, expected wrapped store error", err)
	}
}

func TestControllerLoadsMalformedStoredScoreAsZero(t *testing.T) {
	kv := &mapKV{values: map[string]string{HighScoreKey: "abc"}}
	c := NewController(config.DefaultSimonConfig(), NewKeyedHighScores(kv), &fixedSource{picks: []int{0}})
	if c.HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0", c.HighScore())
	}
}

func TestKeyedHighScoresNeverLowers(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		save   int
		want   string
	}{
		{"higher replaces", "30", 40, "40"},
		{"lower kept out", "60", 30, "60"},
		{"equal is a no-op", "60", 60, "60"},
		{"malformed is replaced", "abc", 10, "10"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv := &mapKV{values: map[string]string{HighScoreKey: tc.stored}}
			if err := NewKeyedHighScores(kv).Save(tc.save); err != nil {
				t.Fatalf("Save(%d) failed: %v", tc.save, err)
			}
			if got := kv.values[HighScoreKey]; got != tc.want {
				t.Errorf("stored value = %q, expected %q", got, tc.want)
			}
		})
	}
}

// loseAfter plays rounds complete rounds of easy and then presses a wrong pad.
func loseAfter(t *testing.T, c *Controller, rounds int) {
	t.Helper()
	c.StartGame(config.DifficultyEasy)
	for i := 0; i < rounds; i++ {
		playRound(t, c)
	}
	finishPlayback(t, c)
	if res := c.SubmitInput(wrongColor(c.Palette(), c.Sequence()[0])); res != InputMismatch {
		t.Fatalf("wrong pad = %v, expected Mismatch", res)
	}
}

func TestSharedStoreHighScoreNeverRegresses(t *testing.T) {
	kv := storage.NewMemory()
	env := NewEnv(kv, config.DefaultSimonConfig(), nil)

	// Both sessions load the empty store before either finishes.
	a := NewController(env.Config, env.HighScores, &fixedSource{picks: []int{0}})
	b := NewController(env.Config, env.HighScores, &fixedSource{picks: []int{0}})

	loseAfter(t, a, 6)
	loseAfter(t, b, 3)

	if a.Score() != 60 || b.Score() != 30 {
		t.Fatalf("scores a=%d b=%d, expected 60 and 30", a.Score(), b.Score())
	}
	raw, _, _ := kv.Get(HighScoreKey)
	if raw != "60" {
		t.Errorf("stored high score = %q, expected \"60\"", raw)
	}
	if b.HighScore() != 60 {
		t.Errorf("second session HighScore() = %d, expected the shared 60", b.HighScore())
	}
}
