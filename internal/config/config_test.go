package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PORT", "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.Listen != defaultListen {
		t.Fatalf("Listen = %q, want %q", cfg.Listen, defaultListen)
	}

	wantDir, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.Storage.Path != wantDir {
		t.Fatalf("Storage.Path = %q, want %q", cfg.Storage.Path, wantDir)
	}
	if cfg.Storage.Backend != "file" {
		t.Fatalf("Storage.Backend = %q, want file", cfg.Storage.Backend)
	}
	if cfg.DataFile != filepath.Join(wantDir, "diet_data.json") {
		t.Fatalf("DataFile = %q, want %q", cfg.DataFile, filepath.Join(wantDir, "diet_data.json"))
	}
	if cfg.StaticDir != "" {
		t.Fatalf("StaticDir = %q, want empty", cfg.StaticDir)
	}
	if cfg.LogPath() != filepath.Join(wantDir, logFileName) {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath(), filepath.Join(wantDir, logFileName))
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PORT", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "  https://diet.example.com  "
listen = " 0.0.0.0:8080 "
data_file = "~/plans/week.yaml"
static_dir = "~/site"

[storage]
backend = " SQLite "
path = "~/state"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://diet.example.com" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Listen != "0.0.0.0:8080" {
		t.Fatalf("Listen = %q", cfg.Listen)
	}
	if cfg.DataFile != filepath.Join(home, "plans", "week.yaml") {
		t.Fatalf("DataFile = %q", cfg.DataFile)
	}
	if cfg.StaticDir != filepath.Join(home, "site") {
		t.Fatalf("StaticDir = %q", cfg.StaticDir)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Fatalf("Storage.Backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if !strings.HasPrefix(cfg.Storage.Path, home) {
		t.Fatalf("Storage.Path = %q, want it under HOME %q", cfg.Storage.Path, home)
	}
}

func TestLoad_PortEnvOverridesListen(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PORT", "4100")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`listen = "0.0.0.0:8080"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Listen != "0.0.0.0:4100" {
		t.Fatalf("Listen = %q, want 0.0.0.0:4100", cfg.Listen)
	}

	if got := withPort("localhost", "9"); got != "localhost:9" {
		t.Fatalf("withPort without port = %q, want localhost:9", got)
	}
}

func TestLoad_UnknownBackendFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[storage]\nbackend = \"redis\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "redis") {
		t.Fatalf("Load err = %v, want unknown backend error", err)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLogPath_DefaultsWhenStorageEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.LogPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/handydiet.log")) {
		t.Fatalf("LogPath = %q, want it to end with /handydiet.log", got)
	}
}
