package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the handydiet settings shared by the viewer and the server.
type Config struct {
	APIURL    string
	Listen    string
	DataFile  string
	StaticDir string
	Storage   Storage
}

// Storage selects where override state is persisted.
type Storage struct {
	Backend string
	Path    string
}

const (
	defaultConfigPath = "~/.config/handydiet/config.toml"
	defaultAPIURL     = "http://127.0.0.1:3000"
	defaultListen     = "127.0.0.1:3000"
	defaultDataDir    = "~/.local/share/handydiet"
	defaultDataFile   = defaultDataDir + "/diet_data.json"
	defaultBackend    = "file"
	logFileName       = "handydiet.log"
	portEnv           = "PORT"
)

var backends = map[string]bool{"file": true, "sqlite": true, "memory": true}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
// The PORT environment variable overrides the port of Listen.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw struct {
		APIURL    string `toml:"api_url"`
		Listen    string `toml:"listen"`
		DataFile  string `toml:"data_file"`
		StaticDir string `toml:"static_dir"`
		Storage   struct {
			Backend string `toml:"backend"`
			Path    string `toml:"path"`
		} `toml:"storage"`
	}

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	cfg := Config{
		APIURL:    orDefault(raw.APIURL, defaultAPIURL),
		Listen:    orDefault(raw.Listen, defaultListen),
		DataFile:  mustExpand(orDefault(raw.DataFile, defaultDataFile)),
		StaticDir: strings.TrimSpace(raw.StaticDir),
		Storage: Storage{
			Backend: strings.ToLower(orDefault(raw.Storage.Backend, defaultBackend)),
			Path:    mustExpand(orDefault(raw.Storage.Path, defaultDataDir)),
		},
	}
	if cfg.StaticDir != "" {
		cfg.StaticDir = mustExpand(cfg.StaticDir)
	}
	if !backends[cfg.Storage.Backend] {
		return Config{}, fmt.Errorf("parse config: unknown storage backend %q", cfg.Storage.Backend)
	}

	if port := strings.TrimSpace(os.Getenv(portEnv)); port != "" {
		cfg.Listen = withPort(cfg.Listen, port)
	}
	return cfg, nil
}

// LogPath returns the file the viewer logs to.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.Storage.Path) == "" {
		return mustExpand(defaultDataDir + "/" + logFileName)
	}
	return filepath.Join(c.Storage.Path, logFileName)
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func withPort(listen, port string) string {
	host, _, err := net.SplitHostPort(listen)
	if err != nil {
		host = listen
	}
	return net.JoinHostPort(host, port)
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
