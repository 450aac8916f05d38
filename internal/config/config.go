// Package config handles configuration loading and validation for the
// keylayout tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Version is the current configuration schema version.
const Version = 1

// Config holds the complete tool configuration.
type Config struct {
	// Version is the configuration schema version.
	Version int `toml:"version" json:"version"`

	// Dump controls layout dump output.
	Dump DumpConfig `toml:"dump" json:"dump"`

	// Simulate controls the simulated backend.
	Simulate SimulateConfig `toml:"simulate" json:"simulate"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// DumpConfig holds layout dump output configuration.
type DumpConfig struct {
	// Format is the dump format: "json" or "text".
	Format string `toml:"format" json:"format"`

	// Output is the dump destination: "stdout" or a file path.
	Output string `toml:"output" json:"output"`

	// Pretty enables indented JSON output.
	Pretty bool `toml:"pretty" json:"pretty"`

	// Combinations restricts the dump to these modifier combinations
	// (0-15). Empty means all sixteen.
	Combinations []int `toml:"combinations" json:"combinations"`
}

// SimulateConfig holds simulated backend configuration.
type SimulateConfig struct {
	// Enabled switches the tools from the running platform to the
	// built-in simulated layout.
	Enabled bool `toml:"enabled" json:"enabled"`

	// NumLock sets the simulated NumLock toggle state.
	NumLock bool `toml:"numlock" json:"numlock"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level"`

	// Format is the log format: "text" or "json".
	Format string `toml:"format" json:"format"`

	// Output is the log output: "stdout", "stderr", "file", or "both".
	Output string `toml:"output" json:"output"`

	// FilePath is the path to the log file (when Output includes "file").
	FilePath string `toml:"file_path" json:"file_path"`

	// MaxSizeMB is the maximum log file size before rotation.
	MaxSizeMB int `toml:"max_size_mb" json:"max_size_mb"`

	// MaxBackups is the number of rotated log files to keep.
	MaxBackups int `toml:"max_backups" json:"max_backups"`

	// Compress determines whether to compress rotated logs.
	Compress bool `toml:"compress" json:"compress"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: Version,
		Dump: DumpConfig{
			Format: "json",
			Output: "stdout",
			Pretty: true,
		},
		Simulate: SimulateConfig{
			Enabled: runtime.GOOS != "windows",
			NumLock: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			FilePath:   filepath.Join(DataDir(), "keylayout.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   true,
		},
	}
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.toml")
}

// DataDir returns the base keylayout directory, honoring the
// KEYLAYOUT_DATA_DIR environment override.
func DataDir() string {
	if envDir := os.Getenv("KEYLAYOUT_DATA_DIR"); envDir != "" {
		return envDir
	}
	switch runtime.GOOS {
	case "darwin":
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "Library", "Application Support", "keylayout")
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		return filepath.Join(appData, "keylayout")
	default:
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, "keylayout")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".local", "share", "keylayout")
	}
}

// Load reads configuration from the specified path. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}

	cfg.ApplyEnvOverrides()

	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides. Variables
// are prefixed with KEYLAYOUT_ and use underscores.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("KEYLAYOUT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("KEYLAYOUT_LOG_PATH"); v != "" {
		c.Logging.FilePath = v
	}
	if v := os.Getenv("KEYLAYOUT_DUMP_OUTPUT"); v != "" {
		c.Dump.Output = v
	}
}
