package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/repository/sqlite"
)

// Config holds all configuration options for the task manager
type Config struct {
	Storage     StorageConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Application ApplicationConfig
	Commands    CommandsConfig
	Keys        KeysConfig
}

// StorageConfig holds database and key/value layout configuration
type StorageConfig struct {
	Dir            string        `env:"TM_DATA_DIR"`
	Filename       string        `env:"TM_DB_FILENAME"`
	UsersKey       string        `env:"TM_USERS_KEY"`
	SessionKey     string        `env:"TM_SESSION_KEY"`
	QueryTimeout   time.Duration `env:"TM_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"TM_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	PasswordMinLength int `env:"TM_VALIDATION_PASSWORD_MIN"`
	TitleMaxLength    int `env:"TM_VALIDATION_TITLE_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `env:"TM_DISPLAY_DATE_FORMAT"`
	Dark       bool   `env:"TM_DISPLAY_DARK"`
	Plain      bool   `env:"TM_DISPLAY_PLAIN"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TM_APP_TIMEOUT"`
	Verbose bool          `env:"TM_APP_VERBOSE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	DefaultSort   string `env:"TM_LIST_DEFAULT_SORT"`
	DefaultStatus string `env:"TM_LIST_DEFAULT_STATUS"`
}

// KeysConfig maps task screen actions to keys in the terminal UI
type KeysConfig struct {
	Quit          string
	Add           string
	Toggle        string
	Edit          string
	Delete        string
	Search        string
	CycleSort     string
	CycleStatus   string
	CyclePriority string
	Dark          string
	Logout        string
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDataDir := filepath.Join(homeDir, ".tm")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultDataDir,
			Filename:       "tm.db",
			UsersKey:       sqlite.DefaultUsersKey,
			SessionKey:     sqlite.DefaultSessionKey,
			QueryTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			PasswordMinLength: 6,
			TitleMaxLength:    500,
		},
		Display: DisplayConfig{
			DateFormat: "2006-01-02",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
		Commands: CommandsConfig{
			DefaultSort:   string(domain.SortCreatedDesc),
			DefaultStatus: string(domain.StatusAll),
		},
		Keys: DefaultKeys(),
	}
}

// DefaultKeys returns the stock terminal UI key bindings.
func DefaultKeys() KeysConfig {
	return KeysConfig{
		Quit:          "ctrl+c",
		Add:           "a",
		Toggle:        " ",
		Edit:          "e",
		Delete:        "d",
		Search:        "/",
		CycleSort:     "s",
		CycleStatus:   "f",
		CyclePriority: "p",
		Dark:          "t",
		Logout:        "L",
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetConfigFilePath returns the path of the TOML config file in the data directory
func (c *Config) GetConfigFilePath() string {
	return filepath.Join(c.Storage.Dir, ConfigFileName)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Storage.QueryTimeout
}

// StorageOptions converts the storage section to repository options
func (c *Config) StorageOptions() sqlite.Options {
	return sqlite.Options{
		UsersKey:       c.Storage.UsersKey,
		SessionKey:     c.Storage.SessionKey,
		QueryTimeout:   c.Storage.QueryTimeout,
		DirPermissions: os.FileMode(c.Storage.DirPermissions),
	}
}

// ViewDefaults returns the list view options configured for commands
func (c *Config) ViewDefaults() domain.ViewOptions {
	opts := domain.DefaultViewOptions()
	if sort, err := domain.ParseSortKey(c.Commands.DefaultSort); err == nil {
		opts.Sort = sort
	}
	if status, err := domain.ParseStatusFilter(c.Commands.DefaultStatus); err == nil {
		opts.Status = status
	}
	return opts
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("TM_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TM_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if key := os.Getenv("TM_USERS_KEY"); key != "" {
		c.Storage.UsersKey = key
	}
	if key := os.Getenv("TM_SESSION_KEY"); key != "" {
		c.Storage.SessionKey = key
	}
	if timeout := os.Getenv("TM_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Storage.QueryTimeout = ParseDurationWithFallback(timeout, c.Storage.QueryTimeout)
	}
	if perms := os.Getenv("TM_DB_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Validation configuration
	if minLen := os.Getenv("TM_VALIDATION_PASSWORD_MIN"); minLen != "" {
		c.Validation.PasswordMinLength = ParseIntWithFallback(minLen, c.Validation.PasswordMinLength)
	}
	if maxLen := os.Getenv("TM_VALIDATION_TITLE_MAX"); maxLen != "" {
		c.Validation.TitleMaxLength = ParseIntWithFallback(maxLen, c.Validation.TitleMaxLength)
	}

	// Display configuration
	if format := os.Getenv("TM_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if dark := os.Getenv("TM_DISPLAY_DARK"); dark != "" {
		c.Display.Dark = ParseBoolWithFallback(dark, c.Display.Dark)
	}
	if plain := os.Getenv("TM_DISPLAY_PLAIN"); plain != "" {
		c.Display.Plain = ParseBoolWithFallback(plain, c.Display.Plain)
	}

	// Application configuration
	if timeout := os.Getenv("TM_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TM_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	// Commands configuration
	if sort := os.Getenv("TM_LIST_DEFAULT_SORT"); sort != "" {
		c.Commands.DefaultSort = sort
	}
	if status := os.Getenv("TM_LIST_DEFAULT_STATUS"); status != "" {
		c.Commands.DefaultStatus = status
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.UsersKey == "" || c.Storage.SessionKey == "" {
		return &ConfigError{Field: "storage.keys", Message: "users and session keys cannot be empty"}
	}
	if c.Storage.UsersKey == c.Storage.SessionKey {
		return &ConfigError{Field: "storage.keys", Message: "users and session keys must differ"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.PasswordMinLength < 1 {
		return &ConfigError{Field: "validation.password_min_length", Message: "password minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	// Validate command defaults
	if _, err := domain.ParseSortKey(c.Commands.DefaultSort); err != nil {
		return &ConfigError{Field: "commands.default_sort", Message: "unknown sort " + c.Commands.DefaultSort}
	}
	if _, err := domain.ParseStatusFilter(c.Commands.DefaultStatus); err != nil {
		return &ConfigError{Field: "commands.default_status", Message: "unknown status " + c.Commands.DefaultStatus}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
