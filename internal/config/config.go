package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything the scoreboard needs to reach its feeds.
type Config struct {
	FeedURL           string
	RosterURL         string
	FederationCountry string
	PollSeconds       int
	RosterPollMinutes int
	LogDir            string
}

const (
	defaultConfigPath    = "~/.config/volley/config.toml"
	defaultLogDir        = "~/.local/share/volley/logs"
	defaultFeedURL       = "https://live.volleyfeed.example/feed"
	defaultRosterURL     = "https://api.volleyball.example/directory"
	defaultCountry       = "Norge"
	defaultPollSeconds   = 10
	defaultRosterMinutes = 10
)

// Load locates and parses the config, falling back to defaults when the file
// is missing. A present but unparsable file is an error: silently ignoring a
// typo there would point the session at the wrong feed.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.LogDir = mustExpand(cfg.LogDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		FeedURL           string `toml:"feed_url"`
		RosterURL         string `toml:"roster_url"`
		FederationCountry string `toml:"federation_country"`
		PollSeconds       int    `toml:"poll_seconds"`
		RosterPollMinutes int    `toml:"roster_poll_minutes"`
		LogDir            string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.FeedURL); v != "" {
		cfg.FeedURL = v
	}
	if v := strings.TrimSpace(raw.RosterURL); v != "" {
		cfg.RosterURL = v
	}
	if v := strings.TrimSpace(raw.FederationCountry); v != "" {
		cfg.FederationCountry = v
	}
	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}
	if raw.RosterPollMinutes > 0 {
		cfg.RosterPollMinutes = raw.RosterPollMinutes
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = v
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	return cfg, nil
}

func defaults() Config {
	return Config{
		FeedURL:           defaultFeedURL,
		RosterURL:         defaultRosterURL,
		FederationCountry: defaultCountry,
		PollSeconds:       defaultPollSeconds,
		RosterPollMinutes: defaultRosterMinutes,
		LogDir:            defaultLogDir,
	}
}

// SessionLogPath returns the path of the session debug log.
func (c Config) SessionLogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/volley.log")
	}
	return filepath.Join(c.LogDir, "volley.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
