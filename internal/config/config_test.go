package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != "github" {
		t.Fatalf("provider = %q, want github", cfg.Provider)
	}
	if cfg.Owner != "enkerewpo" || cfg.Repo != "OI-Public-Library" {
		t.Fatalf("repo = %s/%s, want default archive", cfg.Owner, cfg.Repo)
	}
	if cfg.Token != "" || cfg.CacheDir != "" {
		t.Fatalf("cfg = %+v, want empty token and cache dir", cfg)
	}
}

func TestLoad_ParsesAndNormalizes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "provider = \" Gitee \"\nowner = \"acme\"\nrepo = \"archive\"\ntoken = \"tok\"\ncache_dir = \"/tmp/oj\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != "gitee" {
		t.Fatalf("provider = %q, want gitee", cfg.Provider)
	}
	if cfg.Owner != "acme" || cfg.Repo != "archive" {
		t.Fatalf("repo = %s/%s, want acme/archive", cfg.Owner, cfg.Repo)
	}
	if cfg.Token != "tok" || cfg.CacheDir != "/tmp/oj" {
		t.Fatalf("cfg = %+v, want token and cache dir set", cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("owner = \"acme\"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Owner != "acme" {
		t.Fatalf("owner = %q, want acme", cfg.Owner)
	}
	if cfg.Provider != "github" || cfg.Repo != "OI-Public-Library" {
		t.Fatalf("cfg = %+v, want defaults for unset fields", cfg)
	}
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("provider = [broken"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted malformed config")
	}
}
