package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/fsgraph/internal/util"
	"gopkg.in/yaml.v3"
)

// Verbosity levels accepted by [ConfigOverride.LogLvl]
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultOrigin is the directory the graph is rooted at
	DefaultOrigin = "."

	// DefaultScanBatchSize is the number of directory entries read per syscall
	// while a scan is being pulled
	DefaultScanBatchSize = 64

	DefaultLogLvl = util.InfoLevel
)

// DefaultExcludedDirs are subdirectory names treated as non-existent by
// subdirectory scans
var DefaultExcludedDirs = []string{".git", ".vscode", "target"}

// Config contains runtime configuration values for the filesystem graph adapter.
// It is read once at adapter construction and never mutated afterwards.
type Config struct {
	Origin        string   // Root directory of the graph on the real filesystem (Default ".")
	ExcludedDirs  []string // Subdirectory names never yielded by subdirectory scans (Default .git, .vscode, target)
	ScanBatchSize int      // Directory entries read per batch while scanning (Default 64)
	LogLvl        util.LogLevel
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	Origin        *string   `yaml:"origin,omitempty" json:"origin,omitempty"`
	ExcludedDirs  *[]string `yaml:"excluded_dirs,omitempty" json:"excluded_dirs,omitempty"`
	ScanBatchSize *int      `yaml:"scan_batch_size,omitempty" json:"scan_batch_size,omitempty"`
	// LogLvl is a verbosity between 1 (error) and 5 (trace)
	LogLvl *int `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		Origin:        DefaultOrigin,
		ExcludedDirs:  append([]string(nil), DefaultExcludedDirs...),
		ScanBatchSize: DefaultScanBatchSize,
		LogLvl:        DefaultLogLvl,
	}
}

// NewConfig creates a Config from defaults with override applied.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.Origin != nil {
		c.Origin = *override.Origin
	}
	if override.ExcludedDirs != nil {
		c.ExcludedDirs = append([]string(nil), (*override.ExcludedDirs)...)
	}
	if override.ScanBatchSize != nil {
		c.ScanBatchSize = *override.ScanBatchSize
	}
	if override.LogLvl != nil {
		c.LogLvl = util.LevelFromVerbosity(*override.LogLvl)
	}
}

// Validate checks values that would otherwise only fail once a scan runs
func (c *Config) Validate() error {
	if c.Origin == "" {
		return fmt.Errorf("origin must not be empty")
	}
	if c.ScanBatchSize < 1 {
		return fmt.Errorf("scan batch size must be positive, got %d", c.ScanBatchSize)
	}
	for _, name := range c.ExcludedDirs {
		if strings.ContainsRune(name, '/') {
			return fmt.Errorf("excluded dir %q must be a single name, not a path", name)
		}
	}
	return nil
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
