package storage

import "errors"

// Persisted keys. Sessions are stored as a JSON array, the theme as a
// plain "dark"/"light" string.
const (
	KeyTheme    = "theme"
	KeySessions = "sessions"
)

// ErrNotFound reports that a key has no stored value. Callers use it to
// tell "never saved" apart from a broken store.
var ErrNotFound = errors.New("storage: key not found")

// Store is a synchronous string key-value store. Any call may fail; the
// application keeps working on its in-memory state when one does.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
