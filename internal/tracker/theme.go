package tracker

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Saint-creator/myquicknote-timer/internal/models"
	"github.com/Saint-creator/myquicknote-timer/internal/storage"
)

// ThemePrefs owns the dark/light display preference. Anything but a valid
// stored value resolves to dark, and the resolved value is written back so
// the store always ends up holding a known-good entry.
type ThemePrefs struct {
	store   storage.Store
	log     *logrus.Logger
	current models.Theme
}

func NewThemePrefs(store storage.Store, log *logrus.Logger) *ThemePrefs {
	t := &ThemePrefs{
		store:   store,
		log:     log,
		current: models.ThemeDark,
	}

	raw, err := store.Get(storage.KeyTheme)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		log.WithError(err).Warn("reading theme preference failed, using dark")
	default:
		if theme := models.Theme(raw); theme.Valid() {
			t.current = theme
		}
	}

	t.persist()
	return t
}

func (t *ThemePrefs) Current() models.Theme {
	return t.current
}

// Toggle flips the preference and persists it. The in-memory value changes
// even when the write fails.
func (t *ThemePrefs) Toggle() models.Theme {
	t.current = t.current.Other()
	t.persist()
	return t.current
}

func (t *ThemePrefs) persist() {
	if err := t.store.Set(storage.KeyTheme, string(t.current)); err != nil {
		t.log.WithError(err).Warn("persisting theme preference failed")
	}
}
