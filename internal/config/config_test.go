package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, DefaultAPIURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Server.Listen != DefaultListen {
		t.Errorf("Server.Listen = %q, want %q", cfg.Server.Listen, DefaultListen)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
api_url = "https://api.example.com/api/v1"
web_url = "https://example.com"
token = "secret"
open_command = "firefox --new-tab"
timeout = "5s"

[server]
listen = ":9000"
catalog = "presets.yaml"
author = "ives"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIURL != "https://api.example.com/api/v1" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Token != "secret" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.OpenCommand != "firefox --new-tab" {
		t.Errorf("OpenCommand = %q", cfg.OpenCommand)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.Server.Author != "ives" || cfg.Server.Listen != ":9000" || cfg.Server.Catalog != "presets.yaml" {
		t.Errorf("Server = %+v", cfg.Server)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad toml", "api_url = ", "failed to parse"},
		{"bad timeout", `timeout = "soon"`, "invalid timeout"},
		{"bad scheme", `api_url = "ftp://example.com"`, "http or https"},
		{"no host", `api_url = "http://"`, "host"},
		{"negative timeout", `timeout = "-1s"`, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.OpenCommand = "xdg-open"
	cfg.Timeout = 2 * time.Minute

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.OpenCommand != "xdg-open" || loaded.Timeout != 2*time.Minute {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	paths := DefaultPaths()
	if paths.ConfigFile != filepath.Join("/tmp/xdg-config", "sandbox-ctl", "config.toml") {
		t.Errorf("ConfigFile = %q", paths.ConfigFile)
	}
	if paths.LogFile != filepath.Join("/tmp/xdg-data", "sandbox-ctl", "wizard.log") {
		t.Errorf("LogFile = %q", paths.LogFile)
	}
}
