package tracker

import (
	"encoding/json"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/Saint-creator/myquicknote-timer/internal/models"
	"github.com/Saint-creator/myquicknote-timer/internal/storage"
)

// SessionStore holds the saved sessions, newest first, and mirrors every
// change into the backing store. Store failures are logged and otherwise
// ignored; the in-memory list is the source of truth for the running app.
type SessionStore struct {
	store    storage.Store
	clock    clockwork.Clock
	log      *logrus.Logger
	sessions []models.Session
}

func NewSessionStore(store storage.Store, clock clockwork.Clock, log *logrus.Logger) *SessionStore {
	s := &SessionStore{
		store: store,
		clock: clock,
		log:   log,
	}
	s.load()
	return s
}

func (s *SessionStore) load() {
	raw, err := s.store.Get(storage.KeySessions)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		s.log.WithError(err).Warn("reading saved sessions failed, starting empty")
		return
	}

	var sessions []models.Session
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		s.log.WithError(err).Warn("saved sessions are unreadable, starting empty")
		return
	}
	s.sessions = sessions
}

// Save creates a session from the note and duration and prepends it to the
// list. A zero duration is silently ignored. Returns whether a session was
// created.
func (s *SessionStore) Save(note string, durationSeconds int) bool {
	if durationSeconds < 1 {
		return false
	}

	session := models.NewSession(note, durationSeconds, s.clock.Now())
	s.sessions = append([]models.Session{session}, s.sessions...)
	s.persist()
	return true
}

// Delete removes the session with the given id. Unknown ids are ignored.
func (s *SessionStore) Delete(id string) {
	for i, session := range s.sessions {
		if session.ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			s.persist()
			return
		}
	}
}

// ClearAll empties the list and removes the stored entry outright, so a
// reload after ClearAll looks exactly like a first run.
func (s *SessionStore) ClearAll() {
	s.sessions = nil
	if err := s.store.Remove(storage.KeySessions); err != nil {
		s.log.WithError(err).Warn("removing saved sessions failed")
	}
}

// Sessions returns a copy of the list, newest first.
func (s *SessionStore) Sessions() []models.Session {
	out := make([]models.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

func (s *SessionStore) Count() int {
	return len(s.sessions)
}

func (s *SessionStore) persist() {
	data, err := json.Marshal(s.sessions)
	if err != nil {
		s.log.WithError(err).Warn("encoding sessions failed")
		return
	}
	if err := s.store.Set(storage.KeySessions, string(data)); err != nil {
		s.log.WithError(err).Warn("persisting sessions failed, keeping in-memory state")
	}
}
