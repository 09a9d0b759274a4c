package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	appName        = "sandbox-ctl"
	configFileName = "config.toml"
	DefaultAPIURL  = "http://localhost:8080/api/v1"
	DefaultWebURL  = "http://localhost:8080"
	DefaultTimeout = 30 * time.Second
	DefaultLogFile = "wizard.log"
	DefaultListen  = ":8080"
)

// Config is the user configuration read from config.toml.
type Config struct {
	APIURL      string        `toml:"api_url"`
	WebURL      string        `toml:"web_url"`
	Token       string        `toml:"token"`
	OpenCommand string        `toml:"open_command"`
	Timeout     time.Duration `toml:"-"`
	TimeoutStr  string        `toml:"timeout"`

	Server ServerConfig `toml:"server"`
}

// ServerConfig configures the development API server.
type ServerConfig struct {
	Listen  string `toml:"listen"`
	Catalog string `toml:"catalog"`
	Author  string `toml:"author"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		APIURL:     DefaultAPIURL,
		WebURL:     DefaultWebURL,
		Timeout:    DefaultTimeout,
		TimeoutStr: DefaultTimeout.String(),
		Server: ServerConfig{
			Listen: DefaultListen,
		},
	}
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.TimeoutStr != "" {
		d, err := time.ParseDuration(cfg.TimeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", cfg.TimeoutStr, err)
		}
		cfg.Timeout = d
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as TOML, creating the parent directory.
func Save(cfg *Config, path string) error {
	cfg.TimeoutStr = cfg.Timeout.String()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if err := validateURL("api_url", c.APIURL); err != nil {
		return err
	}
	if c.WebURL != "" {
		if err := validateURL("web_url", c.WebURL); err != nil {
			return err
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative (got %s)", c.Timeout)
	}
	return nil
}

func validateURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https (got %q)", field, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host (got %q)", field, raw)
	}
	return nil
}

// Paths holds the configured paths
type Paths struct {
	ConfigDir  string
	ConfigFile string
	DataDir    string
	LogFile    string
}

// DefaultPaths returns the platform-specific paths.
// Unix: $XDG_CONFIG_HOME/sandbox-ctl and $XDG_DATA_HOME/sandbox-ctl
// Windows: %APPDATA%\sandbox-ctl and %LOCALAPPDATA%\sandbox-ctl
func DefaultPaths() *Paths {
	configDir := filepath.Join(baseDir("APPDATA", "XDG_CONFIG_HOME", ".config"), appName)
	dataDir := filepath.Join(baseDir("LOCALAPPDATA", "XDG_DATA_HOME", filepath.Join(".local", "share")), appName)
	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, configFileName),
		DataDir:    dataDir,
		LogFile:    filepath.Join(dataDir, DefaultLogFile),
	}
}

func baseDir(windowsEnv, xdgEnv, homeRel string) string {
	if runtime.GOOS == "windows" {
		if base := os.Getenv(windowsEnv); base != "" {
			return base
		}
	}
	if base := os.Getenv(xdgEnv); base != "" {
		return base
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, homeRel)
}
