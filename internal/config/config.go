package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields napt reads from its config file, with derived
// paths resolved.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	DataDir   string
	LogLevel  string
	LogFormat string
}

const (
	defaultConfigPath     = "~/.config/napt/config.toml"
	defaultBaseURL        = "https://app.napkin.one"
	defaultDataDir        = "~/.local/share/napt"
	defaultTimeoutSeconds = 30
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
)

// Load locates and parses the napt config, falling back to defaults when
// missing. A .env file next to the config is loaded into the environment
// before returning, so NAPKIN_EMAIL/NAPKIN_TOKEN overrides can live there.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:   defaultBaseURL,
		Timeout:   defaultTimeoutSeconds * time.Second,
		DataDir:   defaultDataDir,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}

	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load(filepath.Join(filepath.Dir(resolved), ".env"))

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.DataDir = mustExpand(defaultDataDir)
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
		BaseURL        string `toml:"base_url"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		DataDir        string `toml:"data_dir"`
		LogLevel       string `toml:"log_level"`
		LogFormat      string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(raw.LogFormat); v != "" {
		cfg.LogFormat = v
	}
	cfg.DataDir = mustExpand(cfg.DataDir)

	return cfg, nil
}

// CredentialsPath returns the path of the sealed credential file.
func (c Config) CredentialsPath() string {
	return filepath.Join(c.dataDir(), "credentials")
}

// CredentialKeyPath returns the path of the credential encryption key.
func (c Config) CredentialKeyPath() string {
	return filepath.Join(c.dataDir(), "credentials.key")
}

// HistoryPath returns the path of the sent-thought database.
func (c Config) HistoryPath() string {
	return filepath.Join(c.dataDir(), "history.db")
}

// LogPath returns the path of the application log file.
func (c Config) LogPath() string {
	return filepath.Join(c.dataDir(), "napt.log")
}

func (c Config) dataDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir)
	}
	return c.DataDir
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
