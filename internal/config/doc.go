// Package config loads the scoreboard configuration.
//
// Configuration lives in a TOML file, by default at
// ~/.config/volley/config.toml:
//
//	feed_url = "https://live.volleyfeed.example/feed"
//	roster_url = "https://api.volleyball.example/directory"
//	federation_country = "Norge"
//	poll_seconds = 10
//	roster_poll_minutes = 10
//	log_dir = "~/.local/share/volley/logs"
//
// A missing file yields the defaults; a present but unparsable file is an
// error. Every field is optional and falls back individually, so a one-line
// config overriding just feed_url is valid. Paths starting with ~ are
// expanded against the user's home directory.
package config
