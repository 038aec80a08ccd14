package config

import (
	"os"
	"strconv"
	"time"

	"task-manager/internal/logging"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config  *Config
	useFile bool
}

// NewLoader creates a new configuration loader that reads config.toml
func NewLoader() *Loader {
	return &Loader{
		config:  NewConfig(),
		useFile: true,
	}
}

// NewEnvironmentLoader creates a loader that skips the config file
func NewEnvironmentLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with config.toml from the data directory
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithOverrides(nil)
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config := l.config

	// The data directory decides where the file lives, so resolve it first.
	if dir := os.Getenv("TM_DATA_DIR"); dir != "" {
		config.Storage.Dir = dir
	}
	if overrides != nil && overrides.DataDir != nil {
		config.Storage.Dir = *overrides.DataDir
	}

	if l.useFile {
		if err := config.LoadFromFile(config.GetConfigFilePath()); err != nil {
			return nil, err
		}
	}

	if err := config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	logging.Debugf("config loaded: db=%s timeout=%s\n", config.GetDatabasePath(), config.Application.Timeout)
	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	DataDir        *string
	DBFilename     *string
	DBQueryTimeout *time.Duration

	// Display overrides
	DateFormat *string
	Dark       *bool
	Plain      *bool

	// Application overrides
	Timeout *time.Duration
	Verbose *bool

	// Commands overrides
	DefaultSort   *string
	DefaultStatus *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Storage overrides
	if overrides.DataDir != nil {
		config.Storage.Dir = *overrides.DataDir
	}
	if overrides.DBFilename != nil {
		config.Storage.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		config.Storage.QueryTimeout = *overrides.DBQueryTimeout
	}

	// Display overrides
	if overrides.DateFormat != nil {
		config.Display.DateFormat = *overrides.DateFormat
	}
	if overrides.Dark != nil {
		config.Display.Dark = *overrides.Dark
	}
	if overrides.Plain != nil {
		config.Display.Plain = *overrides.Plain
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}

	// Commands overrides
	if overrides.DefaultSort != nil {
		config.Commands.DefaultSort = *overrides.DefaultSort
	}
	if overrides.DefaultStatus != nil {
		config.Commands.DefaultStatus = *overrides.DefaultStatus
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
