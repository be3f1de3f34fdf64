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

// Config captures which archive repository ojview browses and how.
type Config struct {
	Provider string
	Owner    string
	Repo     string
	Token    string
	CacheDir string
}

const (
	defaultConfigPath = "~/.config/ojview/config.toml"
	defaultProvider   = "github"
	defaultOwner      = "enkerewpo"
	defaultRepo       = "OI-Public-Library"
)

// Load locates and parses the ojview config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Provider: defaultProvider, Owner: defaultOwner, Repo: defaultRepo}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
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
		Provider string `toml:"provider"`
		Owner    string `toml:"owner"`
		Repo     string `toml:"repo"`
		Token    string `toml:"token"`
		CacheDir string `toml:"cache_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if provider := strings.TrimSpace(raw.Provider); provider != "" {
		cfg.Provider = strings.ToLower(provider)
	}
	if owner := strings.TrimSpace(raw.Owner); owner != "" {
		cfg.Owner = owner
	}
	if repo := strings.TrimSpace(raw.Repo); repo != "" {
		cfg.Repo = repo
	}
	cfg.Token = strings.TrimSpace(raw.Token)
	cfg.CacheDir = strings.TrimSpace(raw.CacheDir)

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
