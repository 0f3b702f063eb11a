package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ronesse/volley-score-v2/internal/config"
	"github.com/ronesse/volley-score-v2/internal/feed"
	"github.com/ronesse/volley-score-v2/internal/prefs"
	"github.com/ronesse/volley-score-v2/internal/roster"
	"github.com/ronesse/volley-score-v2/internal/state"
	"github.com/ronesse/volley-score-v2/internal/ui"
	"github.com/ronesse/volley-score-v2/internal/wakelock"
)

// Options configure the scoreboard application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/volley/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the scoreboard TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := redirectLog(cfg.SessionLogPath())
	if err != nil {
		// The session log is a debugging aid; stderr is good enough.
		log.Printf("session log unavailable: %v", err)
	} else {
		defer closeLog()
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	feedClient, err := feed.NewClient(cfg.FeedURL)
	if err != nil {
		return fmt.Errorf("init feed client: %w", err)
	}
	rosterClient, err := roster.NewClient(cfg.RosterURL)
	if err != nil {
		return fmt.Errorf("init roster client: %w", err)
	}

	store := state.NewStore(cfg.FederationCountry)

	locks := wakelock.NewManager(wakelock.NewSystemd("volley", "watching a live match"))
	defer locks.Shutdown()

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}
	rosterInterval := time.Duration(cfg.RosterPollMinutes) * time.Minute

	StartLivePoller(ctx, store, feedClient, interval)
	StartRosterPoller(ctx, store, rosterClient, rosterInterval)

	uiOpts := ui.Options{
		Context:    ctx,
		Store:      store,
		Locks:      locks,
		Config:     &cfg,
		ThemeName:  userPrefs.Theme,
		FilterName: userPrefs.Filter,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// redirectLog points the standard logger at the session log file. The TUI
// owns the terminal, so anything written to stderr would corrupt the screen.
func redirectLog(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)
	return func() { _ = file.Close() }, nil
}
