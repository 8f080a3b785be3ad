package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// config holds the optional CLI defaults read from
// ~/.config/cryptarch/config.toml.
type config struct {
	LogLevel string `toml:"log_level"`
	Out      string `toml:"out"`
}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cryptarch", "config.toml")
}

// loadConfig applies the config file if one exists. A missing file is
// fine; a malformed one is only a warning since every setting has a
// usable default. It runs via cobra.OnInitialize, after flag parsing, so
// an explicit --out always wins over the configured default.
func loadConfig() {
	path := configPath()
	if path == "" {
		return
	}
	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warn("ignoring malformed config file")
		}
		return
	}
	if cfg.LogLevel != "" {
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			log.SetLevel(level)
		}
	}
	if cfg.Out != "" && outPath == "" {
		outPath = cfg.Out
	}
}
