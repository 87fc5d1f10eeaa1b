package simon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-simon/internal/core"
)

// HighScoreKey is the fixed key the high score is stored under.
const HighScoreKey = "highScore"

// ErrMalformedHighScore is returned when the stored value is not a
// non-negative decimal integer. The score still loads as 0.
var ErrMalformedHighScore = errors.New("simon: malformed stored high score")

// KeyedHighScores stores the high score as a decimal string in a KV store.
// It is safe for concurrent use; sessions sharing one instance never lower
// the stored value.
type KeyedHighScores struct {
	mu  sync.Mutex
	kv  core.KV
	key string
}

// NewKeyedHighScores wraps kv using HighScoreKey.
func NewKeyedHighScores(kv core.KV) *KeyedHighScores {
	return &KeyedHighScores{kv: kv, key: HighScoreKey}
}

// Load reads the stored high score. Missing keys load as 0 without error.
func (h *KeyedHighScores) Load() (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

func (h *KeyedHighScores) load() (int, error) {
	raw, ok, err := h.kv.Get(h.key)
	if err != nil {
		return 0, fmt.Errorf("simon: load high score: %w", err)
	}
	if !ok {
		return 0, nil
	}
	return ParseHighScore(raw)
}

// Save writes score in decimal form unless the stored score is already
// at least as high. A malformed stored value counts as 0.
func (h *KeyedHighScores) Save(score int) error {
	if score < 0 {
		score = 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	current, err := h.load()
	if err != nil && !errors.Is(err, ErrMalformedHighScore) {
		return err
	}
	if current >= score && err == nil {
		return nil
	}
	if err := h.kv.Set(h.key, strconv.Itoa(score)); err != nil {
		return fmt.Errorf("simon: save high score: %w", err)
	}
	return nil
}

// ParseHighScore converts a stored value to a score.
// Anything other than a non-negative decimal integer yields 0 and
// ErrMalformedHighScore.
func ParseHighScore(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHighScore, raw)
	}
	return n, nil
}

var _ core.HighScoreStore = (*KeyedHighScores)(nil)
