package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brettbedarf/webshell/internal/util"
	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.InfoLevel

	DefaultBanner = "webshell virtual console. Type ls, pwd, touch, mkdir, cd, rm or clear."
	DefaultPrompt = "$ "

	// DefaultAllowDuplicateNames rejects a second sibling with the same name
	DefaultAllowDuplicateNames = false
	// DefaultAllowFileTraversal lets cd make a file the current node
	DefaultAllowFileTraversal = true
	// DefaultCollapseSpaces keeps empty tokens produced by repeated spaces
	DefaultCollapseSpaces = false

	DefaultAddr           = ":8080"
	DefaultRateLimitRPS   = 10.0
	DefaultRateLimitBurst = 20
	DefaultSessionIdleTTL = 30 * time.Minute
	DefaultSweepInterval  = 1 * time.Minute

	// DefaultConfigPath is read by the CLI when no -config flag is given and it exists
	DefaultConfigPath = "~/.webshell.yaml"
)

// DefaultAllowOrigins are the CORS origins allowed unless overridden
var DefaultAllowOrigins = []string{"*"}

// Config contains runtime configuration values for an interpreter and its hosts.
type Config struct {
	LogLvl util.LogLevel // Internal log level (Default info)
	Banner string        // Text the display resets to on clear
	Prompt string        // REPL prompt suffix shown after the cwd

	AllowDuplicateNames bool // Permit siblings with equal names (Default false)
	AllowFileTraversal  bool // Permit cd into a file node (Default true)
	CollapseSpaces      bool // Drop empty tokens from repeated spaces (Default false)

	Server ServerOptions
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
//
// LogLvl is a CLI-style verbosity between 1 (error) and 5 (trace).
type ConfigOverride struct {
	LogLvl *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Banner *string `yaml:"banner,omitempty" json:"banner,omitempty"`
	Prompt *string `yaml:"prompt,omitempty" json:"prompt,omitempty"`

	AllowDuplicateNames *bool `yaml:"allow_duplicate_names,omitempty" json:"allow_duplicate_names,omitempty"`
	AllowFileTraversal  *bool `yaml:"allow_file_traversal,omitempty" json:"allow_file_traversal,omitempty"`
	CollapseSpaces      *bool `yaml:"collapse_spaces,omitempty" json:"collapse_spaces,omitempty"`

	Addr           *string        `yaml:"addr,omitempty" json:"addr,omitempty"`
	AllowOrigins   []string       `yaml:"allow_origins,omitempty" json:"allow_origins,omitempty"`
	RateLimitRPS   *float64       `yaml:"rate_limit_rps,omitempty" json:"rate_limit_rps,omitempty"`
	RateLimitBurst *int           `yaml:"rate_limit_burst,omitempty" json:"rate_limit_burst,omitempty"`
	SessionIdleTTL *time.Duration `yaml:"session_idle_ttl,omitempty" json:"session_idle_ttl,omitempty"`
	SweepInterval  *time.Duration `yaml:"sweep_interval,omitempty" json:"sweep_interval,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:              DefaultLogLvl,
		Banner:              DefaultBanner,
		Prompt:              DefaultPrompt,
		AllowDuplicateNames: DefaultAllowDuplicateNames,
		AllowFileTraversal:  DefaultAllowFileTraversal,
		CollapseSpaces:      DefaultCollapseSpaces,
		Server: ServerOptions{
			Addr:           DefaultAddr,
			AllowOrigins:   append([]string(nil), DefaultAllowOrigins...),
			RateLimitRPS:   DefaultRateLimitRPS,
			RateLimitBurst: DefaultRateLimitBurst,
			SessionIdleTTL: DefaultSessionIdleTTL,
			SweepInterval:  DefaultSweepInterval,
		},
	}
}

// NewConfig returns the defaults with override applied; a nil override yields the defaults
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
	if override.LogLvl != nil {
		c.LogLvl = LogLevelFromVerbose(*override.LogLvl)
	}
	if override.Banner != nil {
		c.Banner = *override.Banner
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.AllowDuplicateNames != nil {
		c.AllowDuplicateNames = *override.AllowDuplicateNames
	}
	if override.AllowFileTraversal != nil {
		c.AllowFileTraversal = *override.AllowFileTraversal
	}
	if override.CollapseSpaces != nil {
		c.CollapseSpaces = *override.CollapseSpaces
	}
	if override.Addr != nil {
		c.Server.Addr = *override.Addr
	}
	if override.AllowOrigins != nil {
		c.Server.AllowOrigins = append([]string(nil), override.AllowOrigins...)
	}
	if override.RateLimitRPS != nil {
		c.Server.RateLimitRPS = *override.RateLimitRPS
	}
	if override.RateLimitBurst != nil {
		c.Server.RateLimitBurst = *override.RateLimitBurst
	}
	if override.SessionIdleTTL != nil {
		c.Server.SessionIdleTTL = *override.SessionIdleTTL
	}
	if override.SweepInterval != nil {
		c.Server.SweepInterval = *override.SweepInterval
	}
}

// ResolvePath expands a leading ~ to the user's home directory
func ResolvePath(path string) (string, error) {
	return homedir.Expand(path)
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	path, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}
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
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}

// LoadDefaultConfigFile reads [DefaultConfigPath] when it exists.
// A missing file is not an error and yields a nil override.
func LoadDefaultConfigFile() (*ConfigOverride, error) {
	override, err := LoadConfigOverrideFile(DefaultConfigPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return override, err
}
