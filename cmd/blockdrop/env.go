package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockdrop/internal/audio"
	"github.com/vovakirdan/blockdrop/internal/config"
	"github.com/vovakirdan/blockdrop/internal/replay"
	"github.com/vovakirdan/blockdrop/internal/session"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

// newLogger builds the stderr logger at the level given by --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the configuration named by --config, or the usual search path.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// openJournal opens the replay journal. A journal that cannot be opened is
// reported and play continues without journaling; the returned closer is
// always safe to call.
func openJournal(logger *log.Logger) (replay.Journal, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay journal, sessions will not be saved", "path", flagDBPath, "error", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}

// newCues starts the audio device when audio is enabled.
// Without a device the game stays silent.
func newCues(cfg config.AudioConfig, logger *log.Logger) (session.Cues, func()) {
	if !cfg.Enabled {
		return session.Silent{}, func() {}
	}
	m := audio.NewManager(cfg.Volume)
	if err := m.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return session.Silent{}, func() {}
	}
	return m, m.Close
}
