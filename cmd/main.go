package main

import (
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/Saint-creator/myquicknote-timer/internal/config"
	"github.com/Saint-creator/myquicknote-timer/internal/storage"
	"github.com/Saint-creator/myquicknote-timer/internal/tracker"
	"github.com/Saint-creator/myquicknote-timer/internal/ui"
)

func main() {
	// Optional .env for QUICKNOTE_* overrides.
	_ = godotenv.Load()

	configManager, err := config.NewManager()
	if err != nil {
		logrus.WithError(err).Fatal("could not set up configuration")
	}
	cfg := configManager.GetConfig()

	logger := config.NewLogger(cfg.Log.Level)

	// A broken database still leaves a working, in-memory-only app.
	var store storage.Store
	sqliteStore, err := storage.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		logger.WithError(err).Warn("opening database failed, running without persistence")
		store = storage.NewMemoryStore()
	} else {
		defer sqliteStore.Close()
		store = sqliteStore
	}

	trackerApp := tracker.NewApp(store, clockwork.NewRealClock(), logger)

	fyneApp := app.New()
	chime := ui.NewChime(cfg.Sound.ChimePath, cfg.Sound.SaveChime, logger)

	mainWindow := ui.NewMainWindow(fyneApp, cfg, trackerApp, chime)
	mainWindow.SetSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))
	mainWindow.Show()
}
