package core

// KV is a string key-value capability, the shape of a browser's local storage.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// HighScoreStore persists the single best score across sessions.
type HighScoreStore interface {
	// Load returns the persisted high score. Implementations return 0 when
	// nothing usable is stored; a non-nil error is informational only.
	Load() (int, error)

	// Save persists a new high score.
	Save(score int) error
}
