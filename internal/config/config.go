package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the CLI settings read from the pxshot config file. The API
// key may instead come from the PXSHOT_API_KEY environment variable or the
// -key flag, which take precedence.
type Config struct {
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
	UserAgent      string
	HistoryDB      string
}

const (
	defaultConfigPath = "~/.config/pxshot/config.toml"
	defaultHistoryDB  = "~/.local/share/pxshot/history.db"
)

// Load locates and parses the config file, falling back to defaults when it
// does not exist.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{HistoryDB: mustExpand(defaultHistoryDB)}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	var raw struct {
		APIKey         string `toml:"api_key"`
		BaseURL        string `toml:"base_url"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		UserAgent      string `toml:"user_agent"`
		HistoryDB      string `toml:"history_db"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(raw.APIKey)
	cfg.BaseURL = strings.TrimSpace(raw.BaseURL)
	cfg.TimeoutSeconds = raw.TimeoutSeconds
	cfg.UserAgent = strings.TrimSpace(raw.UserAgent)

	if db := strings.TrimSpace(raw.HistoryDB); db != "" {
		cfg.HistoryDB = mustExpand(db)
	}

	return cfg, nil
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
